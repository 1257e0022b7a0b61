package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_IntNRange(t *testing.T) {
	s := New()

	for i := 0; i < 1000; i++ {
		v := s.IntN(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestSource_SingleChoice(t *testing.T) {
	s := New()

	for i := 0; i < 50; i++ {
		assert.Equal(t, 0, s.IntN(1))
	}
}

func TestNewSeeded_Deterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSource_RoughlyUniform(t *testing.T) {
	s := NewSeeded(7)
	counts := make([]int, 4)

	for i := 0; i < 4000; i++ {
		counts[s.IntN(4)]++
	}

	for i, c := range counts {
		assert.InDelta(t, 1000, c, 200, "bucket %d", i)
	}
}

func TestSource_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { New().IntN(0) })
}

func TestSource_Concurrency(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.IntN(10)
			}
		}()
	}
	wg.Wait()
}
