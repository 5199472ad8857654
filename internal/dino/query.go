package dino

import (
	"fmt"
	"strconv"
)

// FeetPerMeter is the conversion factor used by Longest.
const FeetPerMeter = 3.281

// Longest returns a one-entry map from the name of the longest dinosaur to
// its length in feet (unrounded). Ties keep the first record seen.
// An empty input yields an empty map.
func Longest(records []Record) map[string]float64 {
	result := map[string]float64{}

	best := -1
	var bestFeet float64
	for i, r := range records {
		feet := r.LengthInMeters * FeetPerMeter
		if best < 0 || feet > bestFeet {
			best = i
			bestFeet = feet
		}
	}

	if best >= 0 {
		result[records[best].Name] = bestFeet
	}
	return result
}

// Describe renders the description of the first record whose id equals id.
// When no record matches, the not-found message is returned instead.
func Describe(records []Record, id string) string {
	for _, r := range records {
		if r.DinosaurID != id {
			continue
		}
		return fmt.Sprintf("%s (%s)\n%s It lived in the %s period, over %s million years ago.",
			r.Name, r.Pronunciation, r.Info, r.Period, firstMya(r))
	}
	return NotFound(id)
}

// NotFound is the message Describe returns for an unknown id.
func NotFound(id string) string {
	return fmt.Sprintf("A dinosaur with an ID of '%s' cannot be found.", id)
}

// firstMya formats the first mya element as a plain integer.
// A record without mya renders as "0" rather than panicking.
func firstMya(r Record) string {
	if len(r.Mya) == 0 {
		return "0"
	}
	return strconv.FormatInt(r.Mya[0], 10)
}

// AliveAt returns one value per record alive at mya, in input order.
//
// A two-element Mya matches only when mya equals one of its two elements;
// the values in between do not match. A one-element Mya [m] matches m and
// m-1.
//
// When key names a known field the record's value for it is emitted,
// otherwise the record's DinosaurID. The fallback is decided per record.
// An empty key means no projection. The result is never nil.
func AliveAt(records []Record, mya int64, key string) []any {
	result := []any{}
	for _, r := range records {
		if !Matches(r, mya) {
			continue
		}
		result = append(result, project(r, key))
	}
	return result
}

// Matches reports whether r counts as alive at mya under AliveAt's rule.
func Matches(r Record, mya int64) bool {
	for _, m := range r.Mya {
		if m == mya {
			return true
		}
	}
	return len(r.Mya) == 1 && r.Mya[0]-1 == mya
}

func project(r Record, key string) any {
	if key != "" {
		if v, ok := r.Field(key); ok {
			return v
		}
	}
	return r.DinosaurID
}
