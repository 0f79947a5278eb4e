package commands

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestDistance = 2

// Suggest returns the closest command name to word, or "" when nothing is
// within edit distance 2. Ties go to the earlier entry in Types.
func Suggest(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, t := range Types {
		d := levenshtein.ComputeDistance(word, string(t))
		if d < bestDist {
			best = string(t)
			bestDist = d
		}
	}
	return best
}

// Complete lists command names that start with prefix.
func Complete(prefix string) []string {
	prefix = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(prefix), "/"))
	out := make([]string, 0, len(Types))
	for _, t := range Types {
		if strings.HasPrefix(string(t), prefix) {
			out = append(out, string(t))
		}
	}
	return out
}
