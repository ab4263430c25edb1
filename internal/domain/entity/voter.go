package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the function a registered person holds in the election.
type Category string

const (
	CategoryCandidate             Category = "Candidate"
	CategoryVoter                 Category = "Voter"
	CategoryPollingStationOfficer Category = "PollingStationOfficer"
	CategoryCommuneOfficer        Category = "CommuneOfficer"
)

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCandidate, CategoryVoter, CategoryPollingStationOfficer, CategoryCommuneOfficer:
		return true
	default:
		return false
	}
}

// Label returns the French display label.
func (c Category) Label() string {
	switch c {
	case CategoryCandidate:
		return "Candidat"
	case CategoryVoter:
		return "Électeur"
	case CategoryPollingStationOfficer:
		return "Agent bureau de vote"
	case CategoryCommuneOfficer:
		return "Agent communal"
	default:
		return string(c)
	}
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Homme"
	case GenderFemale:
		return "Femme"
	default:
		return string(g)
	}
}

// VotingStatus records whether the person has already voted.
type VotingStatus string

const (
	VotedYes VotingStatus = "Yes"
	VotedNo  VotingStatus = "No"
)

func (s VotingStatus) IsValid() bool {
	return s == VotedYes || s == VotedNo
}

func (s VotingStatus) Label() string {
	switch s {
	case VotedYes:
		return "Oui"
	case VotedNo:
		return "Non"
	default:
		return string(s)
	}
}

// VoterRecord represents one registered voter.
type VoterRecord struct {
	ID             uuid.UUID    `json:"id"`              // Assigned by the store at creation.
	FullName       string       `json:"full_name"`       // Family and given names.
	Category       Category     `json:"category"`        // Candidate, voter or officer.
	Gender         Gender       `json:"gender"`          // Male or Female.
	Commune        string       `json:"commune"`         // Administrative commune of residence.
	Address        string       `json:"address"`         // Street address.
	Phone1         string       `json:"phone1"`          // Primary phone, mandatory.
	Phone2         string       `json:"phone2"`          // Secondary phone, empty when absent.
	Profession     string       `json:"profession"`      // Declared occupation.
	PollingStation string       `json:"polling_station"` // Assigned polling station.
	Leader         string       `json:"leader"`          // Local leader the voter reports to.
	HasVoted       VotingStatus `json:"has_voted"`       // Yes or No.
	Notes          string       `json:"notes"`           // Free-form observations, empty when absent.
	OwnerID        uuid.UUID    `json:"owner_id"`        // Identity that created the record. Immutable.
	CreatedAt      time.Time    `json:"created_at"`      // Assigned by the store at creation. Immutable.
	UpdatedAt      time.Time    `json:"updated_at"`      // Last full-record replace.
	Sequence       int64        `json:"-"`               // Store insertion order, tiebreak for equal CreatedAt.
}

// VoterDraft is the client-submitted part of a voter record. OwnerID and
// CreatedAt are accepted from clients but never trusted: the stored values win.
type VoterDraft struct {
	FullName       string       `json:"full_name" validate:"required,max=200"`
	Category       Category     `json:"category" validate:"required,oneof=Candidate Voter PollingStationOfficer CommuneOfficer"`
	Gender         Gender       `json:"gender" validate:"required,oneof=Male Female"`
	Commune        string       `json:"commune" validate:"required,max=120"`
	Address        string       `json:"address" validate:"required,max=300"`
	Phone1         string       `json:"phone1" validate:"required,max=40"`
	Phone2         string       `json:"phone2" validate:"omitempty,max=40"`
	Profession     string       `json:"profession" validate:"required,max=120"`
	PollingStation string       `json:"polling_station" validate:"required,max=120"`
	Leader         string       `json:"leader" validate:"required,max=120"`
	HasVoted       VotingStatus `json:"has_voted" validate:"required,oneof=Yes No"`
	Notes          string       `json:"notes" validate:"omitempty,max=2000"`

	OwnerID   *uuid.UUID `json:"owner_id,omitempty" validate:"-"`
	CreatedAt *time.Time `json:"created_at,omitempty" validate:"-"`
}

// Normalize trims surrounding whitespace so that blank values fail the required rule.
func (d *VoterDraft) Normalize() {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Category = Category(strings.TrimSpace(string(d.Category)))
	d.Gender = Gender(strings.TrimSpace(string(d.Gender)))
	d.Commune = strings.TrimSpace(d.Commune)
	d.Address = strings.TrimSpace(d.Address)
	d.Phone1 = strings.TrimSpace(d.Phone1)
	d.Phone2 = strings.TrimSpace(d.Phone2)
	d.Profession = strings.TrimSpace(d.Profession)
	d.PollingStation = strings.TrimSpace(d.PollingStation)
	d.Leader = strings.TrimSpace(d.Leader)
	d.HasVoted = VotingStatus(strings.TrimSpace(string(d.HasVoted)))
	d.Notes = strings.TrimSpace(d.Notes)
}

// NewVoterRecord builds an unsaved record owned by ownerID. ID, CreatedAt and
// Sequence stay zero until the store assigns them.
func NewVoterRecord(ownerID uuid.UUID, d *VoterDraft) *VoterRecord {
	record := &VoterRecord{OwnerID: ownerID}
	record.Apply(d)

	return record
}

// Apply replaces every draft-controlled field. OwnerID, CreatedAt and ID are left untouched.
func (r *VoterRecord) Apply(d *VoterDraft) {
	r.FullName = d.FullName
	r.Category = d.Category
	r.Gender = d.Gender
	r.Commune = d.Commune
	r.Address = d.Address
	r.Phone1 = d.Phone1
	r.Phone2 = d.Phone2
	r.Profession = d.Profession
	r.PollingStation = d.PollingStation
	r.Leader = d.Leader
	r.HasVoted = d.HasVoted
	r.Notes = d.Notes
}

// VoterField names a filterable or groupable voter attribute.
type VoterField string

const (
	FieldFullName       VoterField = "full_name"
	FieldCategory       VoterField = "category"
	FieldGender         VoterField = "gender"
	FieldCommune        VoterField = "commune"
	FieldAddress        VoterField = "address"
	FieldPhone1         VoterField = "phone1"
	FieldPhone2         VoterField = "phone2"
	FieldProfession     VoterField = "profession"
	FieldPollingStation VoterField = "polling_station"
	FieldLeader         VoterField = "leader"
	FieldHasVoted       VoterField = "has_voted"
	FieldNotes          VoterField = "notes"
)

// FilterableFields are the fields accepted as equality criteria.
var FilterableFields = []VoterField{
	FieldCategory,
	FieldGender,
	FieldCommune,
	FieldHasVoted,
	FieldPollingStation,
	FieldLeader,
	FieldProfession,
}

// Value returns the raw value of field. ok is false for unknown fields.
func (r *VoterRecord) Value(field VoterField) (value string, ok bool) {
	switch field {
	case FieldFullName:
		return r.FullName, true
	case FieldCategory:
		return string(r.Category), true
	case FieldGender:
		return string(r.Gender), true
	case FieldCommune:
		return r.Commune, true
	case FieldAddress:
		return r.Address, true
	case FieldPhone1:
		return r.Phone1, true
	case FieldPhone2:
		return r.Phone2, true
	case FieldProfession:
		return r.Profession, true
	case FieldPollingStation:
		return r.PollingStation, true
	case FieldLeader:
		return r.Leader, true
	case FieldHasVoted:
		return string(r.HasVoted), true
	case FieldNotes:
		return r.Notes, true
	default:
		return "", false
	}
}
