package driving

import (
	"context"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
)

// DeckService loads study files and draws entries from them.
type DeckService interface {
	// Load reads and parses the study file at path and makes it the
	// current deck. Returns domain.ErrFileNotFound, domain.ErrDecode or
	// domain.ErrEmptyDeck (wrapped) on failure, in which case the
	// current deck is left unchanged.
	Load(ctx context.Context, path string) (*domain.Deck, error)

	// Reload re-parses the current deck's file from scratch and replaces
	// the current deck wholesale.
	Reload(ctx context.Context) (*domain.Deck, error)

	// Current returns the current deck, or nil if none is loaded.
	Current() *domain.Deck

	// Pick draws a uniformly random entry from the current deck.
	Pick() (domain.Entry, error)
}

// StudySession drives the reveal/advance cycle over a deck.
type StudySession interface {
	// Start begins studying deck, drawing its first entry with the
	// answer hidden. Replaces any previous deck.
	Start(deck *domain.Deck) error

	// Interact advances the cycle: it reveals the answer when a question
	// is showing, and draws a new entry when an answer is showing.
	// Returns the phase after the interaction.
	Interact() (domain.Phase, error)

	// Phase returns the current phase.
	Phase() domain.Phase

	// Current returns the entry being studied.
	Current() (domain.Entry, bool)

	// Shown returns how many entries have been drawn since Start.
	Shown() int

	// Deck returns the deck being studied.
	Deck() *domain.Deck
}
