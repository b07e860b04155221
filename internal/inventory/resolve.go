package inventory

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ResolveName maps a typed unit name to a record ID, tolerating small typos.
// Exact matches (case-insensitive, ignoring surrounding space) win; otherwise
// the closest name within a length-scaled edit distance is taken. The second
// return is false when nothing is close enough.
func (s *Store) ResolveName(input string) (string, bool) {
	needle := normaliseName(input)
	if needle == "" {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bestID := ""
	bestDist := -1
	for i := range s.records {
		cand := normaliseName(s.records[i].Name)
		if cand == needle {
			return s.records[i].ID, true
		}
		dist := levenshtein.ComputeDistance(needle, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestID = s.records[i].ID
		}
	}
	return bestID, bestID != ""
}

func normaliseName(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(raw))), " ")
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
