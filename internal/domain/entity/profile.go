package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile binds an identity to a role. There is exactly one profile per identity
// and its ID equals the identity ID.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdministrator reports whether the profile has unrestricted access.
func (p *Profile) IsAdministrator() bool {
	return p != nil && p.Role == RoleAdministrator
}
