package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. ID references identities.id.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(32);not null;check:chk_profiles_role,role IN ('administrator','standard_user')"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Identity *IdentityModel `gorm:"foreignKey:ID;constraint:OnDelete:CASCADE"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
