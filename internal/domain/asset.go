package domain

import "strings"

// AssetPair maps one file in the source directory to its name in the
// destination directory.
type AssetPair struct {
	Source string
	Dest   string
}

// BuildMapping returns the pairs in iteration order. Unless keepDuplicates is
// set, a repeated source name keeps the slot of its first occurrence and takes
// the destination of its last one. The second return value is the number of
// pairs dropped that way.
func BuildMapping(pairs []AssetPair, keepDuplicates bool) ([]AssetPair, int) {
	if keepDuplicates {
		return append([]AssetPair(nil), pairs...), 0
	}

	slots := make(map[string]int, len(pairs))
	mapping := make([]AssetPair, 0, len(pairs))
	for _, pair := range pairs {
		if i, ok := slots[pair.Source]; ok {
			mapping[i].Dest = pair.Dest
			continue
		}
		slots[pair.Source] = len(mapping)
		mapping = append(mapping, pair)
	}
	return mapping, len(pairs) - len(mapping)
}

// MatchesAny reports whether name contains any of the substrings.
// Matching is case-sensitive.
func MatchesAny(name string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(name, sub) {
			return true
		}
	}
	return false
}
