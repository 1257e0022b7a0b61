package driven

import (
	"context"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
)

// FileReader reads study files.
type FileReader interface {
	// ReadFile returns the full content of the file at path.
	// A missing file must be reported as domain.ErrFileNotFound.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWatcher notifies about changes to a single file.
type FileWatcher interface {
	// Watch starts watching path. Events are delivered on the returned
	// channel until ctx is cancelled, at which point the channel is closed.
	Watch(ctx context.Context, path string) (<-chan domain.FileEvent, error)
}
