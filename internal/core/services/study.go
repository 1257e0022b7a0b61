package services

import (
	"sync"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driving"
)

// Ensure StudySession implements the interface.
var _ driving.StudySession = (*StudySession)(nil)

// StudySession runs the reveal/advance cycle over a deck.
type StudySession struct {
	rnd driven.Randomizer

	mu      sync.Mutex
	deck    *domain.Deck
	phase   domain.Phase
	current domain.Entry
	started bool
	shown   int
}

// NewStudySession creates a study session drawing entries with rnd.
func NewStudySession(rnd driven.Randomizer) *StudySession {
	return &StudySession{rnd: rnd}
}

// Start begins studying deck with a freshly drawn entry.
func (s *StudySession) Start(deck *domain.Deck) error {
	if deck == nil {
		return domain.ErrNoDeck
	}

	entry, err := PickRandom(deck.Entries, s.rnd)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck = deck
	s.current = entry
	s.phase = domain.PhaseShowingQuestion
	s.started = true
	s.shown = 1
	return nil
}

// Interact reveals the answer or, when it is already revealed, draws the
// next entry with its answer hidden.
func (s *StudySession) Interact() (domain.Phase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return s.phase, domain.ErrNoDeck
	}

	if s.phase == domain.PhaseShowingAnswer {
		entry, err := PickRandom(s.deck.Entries, s.rnd)
		if err != nil {
			return s.phase, err
		}
		s.current = entry
		s.shown++
	}
	s.phase = s.phase.Next()
	return s.phase, nil
}

// Phase returns the current phase.
func (s *StudySession) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Current returns the entry being studied.
func (s *StudySession) Current() (domain.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.started
}

// Shown returns how many entries have been drawn since Start.
func (s *StudySession) Shown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

// Deck returns the deck being studied.
func (s *StudySession) Deck() *domain.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck
}
