package domain

// Phase is the state of a study session's reveal/advance cycle.
type Phase int

const (
	// PhaseShowingQuestion shows the current question with its answer hidden.
	PhaseShowingQuestion Phase = iota

	// PhaseShowingAnswer shows the current question and its answer.
	PhaseShowingAnswer
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseShowingQuestion:
		return "question"
	case PhaseShowingAnswer:
		return "answer"
	default:
		return "unknown"
	}
}

// Next returns the phase that follows an interaction.
func (p Phase) Next() Phase {
	if p == PhaseShowingQuestion {
		return PhaseShowingAnswer
	}
	return PhaseShowingQuestion
}

// Revealed reports whether the answer is visible in this phase.
func (p Phase) Revealed() bool {
	return p == PhaseShowingAnswer
}
