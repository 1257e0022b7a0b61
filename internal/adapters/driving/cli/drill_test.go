package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/services"
)

// fixedRandomizer always draws the same index.
type fixedRandomizer int

func (f fixedRandomizer) IntN(int) int { return int(f) }

// scriptedKeys replays key presses, then reports io.EOF.
type scriptedKeys struct {
	keys []string
	err  error
}

func (s *scriptedKeys) Next() (string, error) {
	if len(s.keys) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

func testDeck() *domain.Deck {
	return &domain.Deck{
		ID:   "deck-1",
		Path: "/tmp/capitals.txt",
		Entries: []domain.Entry{
			{Question: "1. Capital of France?", Answer: "Paris"},
			{Question: "2. Capital of Japan?", Answer: "Tokyo\nJapan's capital."},
		},
	}
}

func TestDrill_RevealThenAdvance(t *testing.T) {
	var out bytes.Buffer
	keys := &scriptedKeys{keys: []string{" ", " ", "q"}}

	err := drill(&out, keys, services.NewStudySession(fixedRandomizer(1)), testDeck(), 0)

	require.NoError(t, err)
	got := out.String()
	assert.Contains(t, got, "capitals.txt: 2 questions.")
	assert.Contains(t, got, "\n2. Capital of Japan?\n  Tokyo\n  Japan's capital.\n")
	assert.Equal(t, 2, strings.Count(got, "2. Capital of Japan?"))
	assert.Equal(t, 1, strings.Count(got, "Tokyo"))
	assert.Contains(t, got, "Revealed 1 answers.")
}

func TestDrill_AnswerHiddenUntilKey(t *testing.T) {
	var out bytes.Buffer
	keys := &scriptedKeys{keys: []string{"q"}}

	err := drill(&out, keys, services.NewStudySession(fixedRandomizer(0)), testDeck(), 0)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "1. Capital of France?")
	assert.NotContains(t, out.String(), "Paris")
	assert.Contains(t, out.String(), "Revealed 0 answers.")
}

func TestDrill_EndOfInputQuits(t *testing.T) {
	var out bytes.Buffer

	err := drill(&out, &scriptedKeys{keys: []string{"x"}}, services.NewStudySession(fixedRandomizer(0)), testDeck(), 0)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "  Paris\n")
	assert.Contains(t, out.String(), "Revealed 1 answers.")
}

func TestDrill_Limit(t *testing.T) {
	var out bytes.Buffer
	keys := &scriptedKeys{keys: []string{"", "", "", "", "", "", ""}}

	err := drill(&out, keys, services.NewStudySession(fixedRandomizer(0)), testDeck(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "Paris"))
	assert.Contains(t, out.String(), "Revealed 2 answers.")
	assert.Len(t, keys.keys, 4)
}

func TestDrill_ReadError(t *testing.T) {
	var out bytes.Buffer
	keys := &scriptedKeys{err: errors.New("tty gone")}

	err := drill(&out, keys, services.NewStudySession(fixedRandomizer(0)), testDeck(), 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

func TestDrill_EmptyDeck(t *testing.T) {
	var out bytes.Buffer

	err := drill(&out, &scriptedKeys{}, services.NewStudySession(fixedRandomizer(0)), &domain.Deck{}, 0)

	assert.ErrorIs(t, err, domain.ErrEmptyDeck)
}

func TestDrillCmd_LineInput(t *testing.T) {
	quietLogs(t)
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := runRootWithInput(t, "\n\nq\n", "drill", "capitals.txt")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "1. Capital of France?"))
	assert.Contains(t, out, "  Paris\n")
	assert.Contains(t, out, "Revealed 1 answers.")
}

func TestDrillCmd_LimitFlag(t *testing.T) {
	quietLogs(t)
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := runRootWithInput(t, strings.Repeat("\n", 10), "drill", "-n", "3", "capitals.txt")

	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Paris"))
	assert.Contains(t, out, "Revealed 3 answers.")
}

func TestDrillCmd_MissingFile(t *testing.T) {
	quietLogs(t)
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := runRootWithInput(t, "q\n", "drill", "nope.txt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestDrillCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := runRoot(t, "drill")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deck service not configured")
}

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"q", true},
		{"Q", true},
		{"\x03", true},
		{"\x04", true},
		{" ", false},
		{"", false},
		{"\r", false},
		{"\x1b[A", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isQuitKey(tt.key), "key %q", tt.key)
	}
}

func TestLineKeys(t *testing.T) {
	keys := &lineKeys{r: bufio.NewReader(strings.NewReader("a\r\n\nlast"))}

	for _, want := range []string{"a", "", "last"} {
		got, err := keys.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := keys.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRawKeys(t *testing.T) {
	keys := &rawKeys{r: strings.NewReader(" ")}

	got, err := keys.Next()
	require.NoError(t, err)
	assert.Equal(t, " ", got)

	_, err = keys.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewKeySource_NonTerminal(t *testing.T) {
	keys, restore, raw, err := newKeySource(strings.NewReader("x\n"))

	require.NoError(t, err)
	defer restore()
	assert.False(t, raw)
	assert.IsType(t, &lineKeys{}, keys)
}

func TestCRLFWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &crlfWriter{w: &buf}

	n, err := w.Write([]byte("a\nb\n"))

	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "a\r\nb\r\n", buf.String())
}
