// Package canon picks one display name per OUAC code and rewrites records to use it.
package canon

import (
	"strings"
	"unicode/utf8"

	"unistats/internal/admissions/models"
	"unistats/internal/admissions/normalize"
)

type candidate struct {
	display string
	count   int
}

// BuildNameMap returns the canonical program name for every valid OUAC code in records.
//
// Spellings are bucketed per code case-insensitively after whitespace collapsing;
// each bucket keeps the first spelling seen. The winner is the bucket with the most
// records, then the shortest spelling, then the earliest bucket.
func BuildNameMap(records []*models.Record) map[string]string {
	buckets := make(map[string][]*candidate)
	index := make(map[string]map[string]*candidate)

	for _, record := range records {
		if record == nil {
			continue
		}
		code, ok := normalize.OUACCode(record.Code())
		if !ok {
			continue
		}
		program := normalize.CollapseSpaces(record.Program)
		if program == "" {
			continue
		}

		byKey, exists := index[code]
		if !exists {
			byKey = make(map[string]*candidate)
			index[code] = byKey
		}
		key := strings.ToLower(program)
		if c, seen := byKey[key]; seen {
			c.count++
			continue
		}
		c := &candidate{display: program, count: 1}
		byKey[key] = c
		buckets[code] = append(buckets[code], c)
	}

	names := make(map[string]string, len(buckets))
	for code, candidates := range buckets {
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.count > best.count || (c.count == best.count && utf8.RuneCountInString(c.display) < utf8.RuneCountInString(best.display)) {
				best = c
			}
		}
		names[code] = best.display
	}
	return names
}

// ApplyNameMap rewrites each record's program to its code's canonical name.
//
// The result has the same length and order as records. Records that need no
// rename are returned as the same pointer; renamed records are shallow copies,
// so the input is never mutated.
func ApplyNameMap(records []*models.Record) []*models.Record {
	names := BuildNameMap(records)

	out := make([]*models.Record, len(records))
	for i, record := range records {
		out[i] = rename(record, names)
	}
	return out
}

func rename(record *models.Record, names map[string]string) *models.Record {
	if record == nil {
		return nil
	}
	code, ok := normalize.OUACCode(record.Code())
	if !ok {
		return record
	}
	canonical, ok := names[code]
	if !ok || canonical == record.Program {
		return record
	}
	renamed := *record
	renamed.Program = canonical
	return &renamed
}
