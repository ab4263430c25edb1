package voterset

import "voterdesk/internal/domain/entity"

// Summary is the dashboard view of a scoped voter list.
type Summary struct {
	Total            int          `json:"total"`
	Voted            int          `json:"voted"`
	NotVoted         int          `json:"not_voted"`
	DistinctCommunes int          `json:"distinct_communes"`
	ByCategory       *Counts      `json:"by_category"`
	ByGender         *Counts      `json:"by_gender"`
	ByCommune        *Counts      `json:"by_commune"`
	TopCommunes      []ValueCount `json:"top_communes"`
}

// Summarize computes the dashboard figures; topCommunes bounds TopCommunes.
func Summarize(records []*entity.VoterRecord, topCommunes int) Summary {
	byVote := AggregateCounts(records, entity.FieldHasVoted)
	byCommune := AggregateCounts(records, entity.FieldCommune)

	return Summary{
		Total:            len(records),
		Voted:            byVote.Get(string(entity.VotedYes)),
		NotVoted:         byVote.Get(string(entity.VotedNo)),
		DistinctCommunes: byCommune.Len(),
		ByCategory:       AggregateCounts(records, entity.FieldCategory),
		ByGender:         AggregateCounts(records, entity.FieldGender),
		ByCommune:        byCommune,
		TopCommunes:      TopN(byCommune, topCommunes),
	}
}
