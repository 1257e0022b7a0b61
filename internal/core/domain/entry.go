package domain

import (
	"strings"
	"time"
)

// Entry is one question/answer pair parsed from a study file.
type Entry struct {
	// Question is the numbered line exactly as found in the file,
	// numeric prefix included.
	Question string `json:"question" yaml:"question"`

	// Answer holds the content lines that followed the question,
	// joined with "\n". Never empty.
	Answer string `json:"answer" yaml:"answer"`
}

// AnswerLines returns the answer split into its original lines.
func (e Entry) AnswerLines() []string {
	if e.Answer == "" {
		return nil
	}
	return strings.Split(e.Answer, "\n")
}

// DroppedEntry records a question that was skipped because no answer
// followed it.
type DroppedEntry struct {
	Question string `json:"question" yaml:"question"`
	Line     int    `json:"line" yaml:"line"`
}

// Deck is the set of entries loaded from a single study file.
// A deck is never modified after it is built; reloading a file produces
// a new deck with a new ID.
type Deck struct {
	ID       string         `json:"id" yaml:"id"`
	Path     string         `json:"path" yaml:"path"`
	Entries  []Entry        `json:"entries" yaml:"entries"`
	Dropped  []DroppedEntry `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	LoadedAt time.Time      `json:"loaded_at" yaml:"loaded_at"`
}

// Len returns the number of entries in the deck.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Entries)
}

// IsEmpty reports whether the deck has no entries.
func (d *Deck) IsEmpty() bool {
	return d.Len() == 0
}

// FileEventType describes what happened to a watched file.
type FileEventType int

const (
	// FileChanged indicates the file was written or replaced.
	FileChanged FileEventType = iota

	// FileRemoved indicates the file was removed or renamed away.
	FileRemoved
)

// String returns the string representation of the event type.
func (t FileEventType) String() string {
	switch t {
	case FileChanged:
		return "changed"
	case FileRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// FileEvent is a change notification for a watched file.
type FileEvent struct {
	Path string
	Type FileEventType
}
