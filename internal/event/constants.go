package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

const (
	// LogMsgHandlerErrorFormat formats the aggregated handler error returned by Publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	ErrMsgNilPayload    = "event payload is nil"
	ErrMsgDecodePayload = "failed to decode event payload"
)
