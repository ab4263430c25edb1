// Package voterset holds the pure, in-memory transformations applied to a
// scoped voter list: free-text search, field filters and grouped counts.
package voterset

import (
	"strings"

	"voterdesk/internal/domain/entity"
)

// SearchFields are matched by Search.
var SearchFields = []entity.VoterField{
	entity.FieldFullName,
	entity.FieldCommune,
	entity.FieldProfession,
	entity.FieldLeader,
}

// Criteria maps a field to the exact value it must hold. Empty values are ignored.
type Criteria map[entity.VoterField]string

// Active returns a copy without the blank entries.
func (c Criteria) Active() Criteria {
	active := make(Criteria, len(c))
	for field, value := range c {
		if strings.TrimSpace(value) != "" {
			active[field] = value
		}
	}

	return active
}

// Search keeps the records whose full name, commune, profession or leader
// contains term, ignoring case. A blank term returns records unchanged;
// any other term is matched as typed, surrounding spaces included.
func Search(records []*entity.VoterRecord, term string) []*entity.VoterRecord {
	if strings.TrimSpace(term) == "" {
		return records
	}
	needle := strings.ToLower(term)

	return keep(records, func(record *entity.VoterRecord) bool {
		for _, field := range SearchFields {
			value, _ := record.Value(field)
			if strings.Contains(strings.ToLower(value), needle) {
				return true
			}
		}

		return false
	})
}

// FilterByFields keeps the records matching every non-empty criterion.
func FilterByFields(records []*entity.VoterRecord, criteria Criteria) []*entity.VoterRecord {
	active := criteria.Active()
	if len(active) == 0 {
		return records
	}

	return keep(records, func(record *entity.VoterRecord) bool {
		for field, want := range active {
			got, ok := record.Value(field)
			if !ok || got != want {
				return false
			}
		}

		return true
	})
}

// ComposeFilters applies Search then FilterByFields. Both are independent
// predicates so the order does not change the result.
func ComposeFilters(records []*entity.VoterRecord, term string, criteria Criteria) []*entity.VoterRecord {
	return FilterByFields(Search(records, term), criteria)
}

func keep(records []*entity.VoterRecord, match func(*entity.VoterRecord) bool) []*entity.VoterRecord {
	result := make([]*entity.VoterRecord, 0, len(records))
	for _, record := range records {
		if match(record) {
			result = append(result, record)
		}
	}

	return result
}
