package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_AnswerLines(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   []string
	}{
		{"empty", "", nil},
		{"single line", "Paris", []string{"Paris"}},
		{"multi line", "Tokyo\nJapan's capital.", []string{"Tokyo", "Japan's capital."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Question: "1. Q?", Answer: tt.answer}
			assert.Equal(t, tt.want, e.AnswerLines())
		})
	}
}

func TestDeck_Len(t *testing.T) {
	var nilDeck *Deck
	assert.Equal(t, 0, nilDeck.Len())
	assert.True(t, nilDeck.IsEmpty())

	deck := &Deck{Entries: []Entry{{Question: "1. a", Answer: "b"}}}
	assert.Equal(t, 1, deck.Len())
	assert.False(t, deck.IsEmpty())
}
