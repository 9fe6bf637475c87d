package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  AIRPORT  ", "airport"},
		{"strips punctuation", "to the airport, now!", "to the airport now"},
		{"strips lead-in phrase", "Take me to the airport.", "to the airport"},
		{"strips stacked lead-ins", "hey can you take me to the mall", "to the mall"},
		{"drops filler tokens", "um to the uh station", "to the station"},
		{"drops please", "the airport please", "the airport"},
		{"drops thank you", "thank you", ""},
		{"filler only", "um, uh, please", ""},
		{"book a survives as content", "BOOK A premium cab!", "premium cab"},
		{"contraction lead-in", "I'd like to go home please", "home"},
		{"plain place untouched", "from home to the airport", "from home to the airport"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsPure(t *testing.T) {
	in := "Take me to the airport"
	first := Normalize(in)
	second := Normalize(in)
	assert.Equal(t, first, second)
}
