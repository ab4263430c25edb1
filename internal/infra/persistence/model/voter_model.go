package model

import (
	"time"

	"github.com/google/uuid"
)

// VoterModel mirrors the 'voters' table. ID, Sequence and CreatedAt are
// generated by PostgreSQL and read back through RETURNING.
type VoterModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Sequence       int64     `gorm:"type:bigserial;autoIncrement;not null;index:idx_voters_recency,priority:2"`
	FullName       string    `gorm:"type:varchar(200);not null"`
	Category       string    `gorm:"type:varchar(32);not null;check:chk_voters_category,category IN ('Candidate','Voter','PollingStationOfficer','CommuneOfficer')"`
	Gender         string    `gorm:"type:varchar(8);not null;check:chk_voters_gender,gender IN ('Male','Female')"`
	Commune        string    `gorm:"type:varchar(120);not null;index"`
	Address        string    `gorm:"type:varchar(300);not null"`
	Phone1         string    `gorm:"column:phone1;type:varchar(40);not null"`
	Phone2         *string   `gorm:"column:phone2;type:varchar(40)"`
	Profession     string    `gorm:"type:varchar(120);not null"`
	PollingStation string    `gorm:"type:varchar(120);not null"`
	Leader         string    `gorm:"type:varchar(120);not null"`
	HasVoted       string    `gorm:"type:varchar(3);not null;check:chk_voters_has_voted,has_voted IN ('Yes','No')"`
	Notes          *string   `gorm:"type:text"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index;<-:create"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;not null;default:now();<-:false;index:idx_voters_recency,priority:1"`
	UpdatedAt      time.Time `gorm:"not null"`

	Owner *IdentityModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
}

func (VoterModel) TableName() string {
	return "voters"
}
