package dialogue

import (
	"sort"
	"strings"
	"unicode"
)

type synonymEntry struct {
	match     string
	canonical string
}

// Curated synonym table for spoken landmarks. Matched by substring
// containment, longest match first, so a short synonym never shadows a
// longer one ("my office" wins over "office"-inside-something-else).
var placeSynonyms = []synonymEntry{
	{"my house", "Home"},
	{"my place", "Home"},
	{"home", "Home"},
	{"my office", "Office"},
	{"workplace", "Office"},
	{"office", "Office"},
	{"work", "Office"},
	{"the airport", "Airport"},
	{"airport", "Airport"},
	{"shopping mall", "Mall"},
	{"the mall", "Mall"},
	{"mall", "Mall"},
	{"train station", "Station"},
	{"railway station", "Station"},
	{"bus station", "Station"},
	{"station", "Station"},
	{"city center", "Downtown"},
	{"city centre", "Downtown"},
	{"downtown", "Downtown"},
}

func init() {
	sort.SliceStable(placeSynonyms, func(i, j int) bool {
		return len(placeSynonyms[i].match) > len(placeSynonyms[j].match)
	})
}

var leadingPrepositions = map[string]bool{
	"from": true,
	"to":   true,
	"at":   true,
	"in":   true,
	"the":  true,
}

var trailingPoliteness = map[string]bool{
	"please": true,
	"thanks": true,
}

// ResolvePlace maps an utterance fragment to a canonical place name via the
// synonym table. If no entry matches, it strips leading prepositions and
// trailing politeness tokens and returns the remainder title-cased as a
// free-form place name. Never fails; arbitrary addresses must be accepted.
// Returns "" only when nothing usable remains in the fragment.
func ResolvePlace(fragment string) string {
	s := strings.ToLower(strings.TrimSpace(fragment))
	if s == "" {
		return ""
	}

	for _, entry := range placeSynonyms {
		if strings.Contains(s, entry.match) {
			return entry.canonical
		}
	}

	words := strings.Fields(s)
	for len(words) > 0 && leadingPrepositions[words[0]] {
		words = words[1:]
	}
	for len(words) > 0 && trailingPoliteness[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return titleCase(strings.Join(words, " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
