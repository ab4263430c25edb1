package voterset

import (
	"bytes"
	"encoding/json"
	"sort"

	"voterdesk/internal/domain/entity"
)

// ValueCount is one entry of a tally.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Counts is a tally that remembers the order in which values were first seen.
type Counts struct {
	order  []string
	counts map[string]int
}

// NewCounts returns an empty tally.
func NewCounts() *Counts {
	return &Counts{counts: make(map[string]int)}
}

// Add increments value, registering it on first sight.
func (c *Counts) Add(value string) {
	if _, seen := c.counts[value]; !seen {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

func (c *Counts) Get(value string) int {
	return c.counts[value]
}

// Keys returns the values in first-seen order.
func (c *Counts) Keys() []string {
	return append([]string(nil), c.order...)
}

func (c *Counts) Len() int {
	return len(c.order)
}

// Total is the sum of all counts.
func (c *Counts) Total() int {
	total := 0
	for _, count := range c.counts {
		total += count
	}

	return total
}

// Entries returns the tally in first-seen order.
func (c *Counts) Entries() []ValueCount {
	entries := make([]ValueCount, 0, len(c.order))
	for _, value := range c.order {
		entries = append(entries, ValueCount{Value: value, Count: c.counts[value]})
	}

	return entries
}

// MarshalJSON encodes the tally as an object whose keys keep first-seen order.
func (c *Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, value := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		count, err := json.Marshal(c.counts[value])
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// AggregateCounts tallies records by the value of field.
func AggregateCounts(records []*entity.VoterRecord, field entity.VoterField) *Counts {
	tally := NewCounts()
	for _, record := range records {
		value, _ := record.Value(field)
		tally.Add(value)
	}

	return tally
}

// TopN returns at most n entries by descending count. Equal counts keep
// first-seen order.
func TopN(counts *Counts, n int) []ValueCount {
	if counts == nil || n <= 0 {
		return []ValueCount{}
	}

	entries := counts.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	return entries
}
