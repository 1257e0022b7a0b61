package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driving"
	"github.com/custodia-labs/rote-cli/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService wraps a FileWatcher for the driving side.
type WatchService struct {
	watcher driven.FileWatcher
}

// NewWatchService creates a watch service. A nil watcher disables watching.
func NewWatchService(watcher driven.FileWatcher) *WatchService {
	return &WatchService{watcher: watcher}
}

// Watch starts watching path.
func (s *WatchService) Watch(ctx context.Context, path string) (<-chan domain.FileEvent, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("watch: %w: empty path", domain.ErrInvalidInput)
	}
	if s.watcher == nil {
		return nil, fmt.Errorf("watch: %w", domain.ErrNotImplemented)
	}

	events, err := s.watcher.Watch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	logger.Debug("Watching %s for changes", path)
	return events, nil
}
