package domain

import "time"

// Hero roles
const (
	RoleTank    = "tank"
	RoleDamage  = "damage"
	RoleSupport = "support"
)

// Hero is a playable character whose badges are tracked
type Hero struct {
	Key         string    `json:"key"`          // "reinhardt"
	DisplayName string    `json:"display_name"` // "Reinhardt"
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsValidRole reports whether role is empty or one of the known roles
func IsValidRole(role string) bool {
	switch role {
	case "", RoleTank, RoleDamage, RoleSupport:
		return true
	}
	return false
}

// Goal is a target level for one hero or, with GlobalScope, for the sum over all heroes
type Goal struct {
	Scope       string    `json:"scope"`
	TargetLevel int       `json:"target_level"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsGlobal reports whether the goal covers every hero
func (g Goal) IsGlobal() bool {
	return g.Scope == GlobalScope
}
