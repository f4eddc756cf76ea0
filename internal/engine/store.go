package engine

import (
	"sort"

	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/models"
)

// Store holds the cleaned mineral table. It is written once by the loader
// and read-only afterwards, so queries need no locking.
type Store struct {
	records []models.Record
	years   map[int]struct{}
}

// NewStore builds a Store over already-cleaned records.
func NewStore(records []models.Record) *Store {
	years := make(map[int]struct{})
	for _, r := range records {
		years[r.Year] = struct{}{}
	}
	return &Store{records: records, years: years}
}

// Len returns the number of loaded rows.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns all rows in input order.
func (s *Store) Records() []models.Record {
	return s.records
}

// Years returns the distinct years present, sorted ascending. The UI's year
// selector is constrained to these.
func (s *Store) Years() []int {
	out := make([]int, 0, len(s.years))
	for y := range s.years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// FilterByYear returns the rows for one year, preserving input order.
// A year with no rows yields an empty slice: downstream aggregation treats
// that as "no data", never as an error.
func (s *Store) FilterByYear(year int) []models.Record {
	if _, ok := s.years[year]; !ok {
		return nil
	}
	out := make([]models.Record, 0, len(s.records))
	for _, r := range s.records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}
