// Package access decides which voter records a profile may see and mutate.
// Every role check in the service goes through ScopePredicate.
package access

import (
	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ScopePredicate returns the visibility rule for profile. A nil profile sees nothing.
func ScopePredicate(profile *entity.Profile) func(*entity.VoterRecord) bool {
	switch {
	case profile == nil:
		return func(*entity.VoterRecord) bool { return false }
	case profile.IsAdministrator():
		return func(*entity.VoterRecord) bool { return true }
	case profile.Role == entity.RoleStandardUser:
		ownerID := profile.ID

		return func(record *entity.VoterRecord) bool {
			return record != nil && record.OwnerID == ownerID
		}
	default:
		return func(*entity.VoterRecord) bool { return false }
	}
}

// OwnerFilter derives the list filter declared to the store: nil means every
// owner, otherwise only records owned by the returned id.
func OwnerFilter(profile *entity.Profile) *uuid.UUID {
	if profile.IsAdministrator() {
		return nil
	}

	ownerID := uuid.Nil
	if profile != nil {
		ownerID = profile.ID
	}

	return &ownerID
}

// Apply keeps the records visible to profile, preserving order.
func Apply(profile *entity.Profile, records []*entity.VoterRecord) []*entity.VoterRecord {
	visible := ScopePredicate(profile)
	result := make([]*entity.VoterRecord, 0, len(records))
	for _, record := range records {
		if visible(record) {
			result = append(result, record)
		}
	}

	return result
}
