package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driving"
	"github.com/custodia-labs/rote-cli/internal/logger"
	"github.com/custodia-labs/rote-cli/internal/studyfile"
)

// Ensure DeckService implements the interface.
var _ driving.DeckService = (*DeckService)(nil)

// DeckService loads study files and holds the current deck.
type DeckService struct {
	reader driven.FileReader
	rnd    driven.Randomizer

	mu      sync.RWMutex
	current *domain.Deck
}

// NewDeckService creates a new deck service.
func NewDeckService(reader driven.FileReader, rnd driven.Randomizer) *DeckService {
	return &DeckService{
		reader: reader,
		rnd:    rnd,
	}
}

// Load reads and parses the study file at path and makes it the current deck.
func (s *DeckService) Load(ctx context.Context, path string) (*domain.Deck, error) {
	deck, err := s.build(ctx, path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = deck
	s.mu.Unlock()

	return deck, nil
}

// Reload re-parses the current deck's file and replaces the current deck.
func (s *DeckService) Reload(ctx context.Context) (*domain.Deck, error) {
	current := s.Current()
	if current == nil {
		return nil, domain.ErrNoDeck
	}
	logger.Debug("reloading %s", current.Path)
	return s.Load(ctx, current.Path)
}

// Current returns the current deck, or nil if none is loaded.
func (s *DeckService) Current() *domain.Deck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Pick draws a uniformly random entry from the current deck.
func (s *DeckService) Pick() (domain.Entry, error) {
	deck := s.Current()
	if deck == nil {
		return domain.Entry{}, domain.ErrNoDeck
	}
	return PickRandom(deck.Entries, s.rnd)
}

func (s *DeckService) build(ctx context.Context, path string) (*domain.Deck, error) {
	if s.reader == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	logger.Section("Load")
	logger.Debug("reading %s", path)

	data, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}

	result, err := studyfile.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load deck %s: %w", path, err)
	}
	if len(result.Entries) == 0 {
		return nil, fmt.Errorf("load deck %s: %w", path, domain.ErrEmptyDeck)
	}

	deck := &domain.Deck{
		ID:       uuid.NewString(),
		Path:     path,
		Entries:  result.Entries,
		Dropped:  result.Dropped,
		LoadedAt: time.Now(),
	}
	logger.Info("loaded %d questions from %s (%d skipped)", len(deck.Entries), path, len(deck.Dropped))

	return deck, nil
}

// PickRandom draws a uniformly random entry. Returns domain.ErrEmptyDeck
// when entries is empty.
func PickRandom(entries []domain.Entry, rnd driven.Randomizer) (domain.Entry, error) {
	if len(entries) == 0 {
		return domain.Entry{}, domain.ErrEmptyDeck
	}
	if rnd == nil {
		return domain.Entry{}, domain.ErrNotImplemented
	}
	return entries[rnd.IntN(len(entries))], nil
}
