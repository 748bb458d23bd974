package dataset

import "strings"

// RowError describes a quarantined CSV row.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Store is an immutable, ordered set of RawRecords. It is safe for
// concurrent reads; nothing mutates it after construction.
type Store struct {
	records  []RawRecord
	rejected []RowError
	source   string
}

// NewStore builds a store over a copy of records.
func NewStore(records []RawRecord) *Store {
	cp := make([]RawRecord, len(records))
	copy(cp, records)
	return &Store{records: cp}
}

// Empty returns a store with no records.
func Empty() *Store { return &Store{} }

func (s *Store) Len() int { return len(s.records) }

// Source is the path the store was loaded from, if any.
func (s *Store) Source() string { return s.source }

// Records returns a copy of all records in source order.
func (s *Store) Records() []RawRecord {
	out := make([]RawRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Rejected returns the rows quarantined during load.
func (s *Store) Rejected() []RowError {
	out := make([]RowError, len(s.rejected))
	copy(out, s.rejected)
	return out
}

// Window returns the first n records in source order. The result shares
// no backing array with the store.
func (s *Store) Window(n int) []RawRecord {
	return window(s.records, n)
}

// ForLocation returns the records a location resolves to: all of them for
// DefaultLocation (or ""), otherwise those whose region matches
// case-insensitively.
func (s *Store) ForLocation(location string) []RawRecord {
	loc := strings.TrimSpace(location)
	if loc == "" || strings.EqualFold(loc, DefaultLocation) {
		return s.Records()
	}
	var out []RawRecord
	for _, r := range s.records {
		if strings.EqualFold(r.Region, loc) {
			out = append(out, r)
		}
	}
	return out
}

// Regions lists distinct non-empty regions in first-seen order.
func (s *Store) Regions() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range s.records {
		if r.Region == "" {
			continue
		}
		key := strings.ToLower(r.Region)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r.Region)
	}
	return out
}

func window(recs []RawRecord, n int) []RawRecord {
	if n <= 0 || n > len(recs) {
		n = len(recs)
	}
	out := make([]RawRecord, n)
	copy(out, recs[:n])
	return out
}

// ByCropType returns the records of one crop type, matched case-insensitively.
func (s *Store) ByCropType(cropType string) []RawRecord {
	ct := strings.TrimSpace(cropType)
	var out []RawRecord
	for _, r := range s.records {
		if strings.EqualFold(r.CropType, ct) {
			out = append(out, r)
		}
	}
	return out
}
