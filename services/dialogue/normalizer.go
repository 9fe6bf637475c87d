package dialogue

import "strings"

// Lead-in phrases recognizers commonly produce before the part that matters.
// Stripped from the front of the utterance, longest first.
var leadInPhrases = []string{
	"i would like to go",
	"i would like to",
	"i'd like to go",
	"i'd like to",
	"i want to go",
	"i want to",
	"i need to get",
	"i need to",
	"can you get me",
	"can you",
	"could you",
	"take me",
	"drive me",
	"book me a",
	"book me",
	"book a",
	"get me a",
	"get me",
	"i need a cab",
	"i need a",
	"hey",
	"hi",
	"hello",
}

// Filler tokens dropped anywhere in the utterance.
var fillerTokens = map[string]bool{
	"um":     true,
	"uh":     true,
	"uhh":    true,
	"erm":    true,
	"hmm":    true,
	"ah":     true,
	"please": true,
	"kindly": true,
	"thanks": true,
}

// Normalize lowercases and trims a raw recognized utterance, strips
// punctuation, lead-in phrases and filler words, and collapses whitespace.
// Pure function; returns "" for filler-only input.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	for _, r := range s {
		switch r {
		case '.', ',', '!', '?', ';', ':':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	s = strings.Join(strings.Fields(b.String()), " ")
	s = strings.ReplaceAll(s, "thank you", "")

	for changed := true; changed; {
		changed = false
		for _, phrase := range leadInPhrases {
			if s == phrase {
				s = ""
				changed = true
				break
			}
			if strings.HasPrefix(s, phrase+" ") {
				s = strings.TrimSpace(s[len(phrase):])
				changed = true
				break
			}
		}
	}

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if !fillerTokens[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
