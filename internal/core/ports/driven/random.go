package driven

// Randomizer provides uniform random draws.
type Randomizer interface {
	// IntN returns a uniformly distributed int in [0, n). Panics if n <= 0.
	IntN(n int) int
}
