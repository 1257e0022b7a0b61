package services

import (
	"bytes"
	"os"
	"testing"

	"github.com/custodia-labs/rote-cli/internal/logger"
)

// sequenceRandomizer returns the given values in order, wrapping around.
type sequenceRandomizer struct {
	values []int
	calls  int
}

func (r *sequenceRandomizer) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.calls%len(r.values)] % n
	r.calls++
	return v
}

func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

const capitals = "1. Capital of France?\nParis\n2. Capital of Japan?\nTokyo\nJapan's capital.\n"
