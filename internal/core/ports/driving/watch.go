package driving

import (
	"context"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
)

// WatchService reports changes to study files.
type WatchService interface {
	// Watch delivers change events for path until ctx is cancelled.
	// The channel is closed when watching stops.
	Watch(ctx context.Context, path string) (<-chan domain.FileEvent, error)
}
