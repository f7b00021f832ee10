package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload to decode
var ErrNilPayload = errors.New(ErrMsgNilPayload)

// DecodePayload returns the payload as T. Payloads published on the in-process
// bus are already T or *T; anything else, such as a map decoded from JSON, is
// re-encoded into T.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T
	if payload == nil {
		return out, ErrNilPayload
	}
	if v, ok := payload.(T); ok {
		return v, nil
	}
	if p, ok := payload.(*T); ok {
		if p == nil {
			return out, ErrNilPayload
		}
		return *p, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	return out, nil
}
