package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "question", PhaseShowingQuestion.String())
	assert.Equal(t, "answer", PhaseShowingAnswer.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestPhase_Next(t *testing.T) {
	assert.Equal(t, PhaseShowingAnswer, PhaseShowingQuestion.Next())
	assert.Equal(t, PhaseShowingQuestion, PhaseShowingAnswer.Next())
	assert.Equal(t, PhaseShowingQuestion, PhaseShowingQuestion.Next().Next())
}

func TestPhase_Revealed(t *testing.T) {
	assert.False(t, PhaseShowingQuestion.Revealed())
	assert.True(t, PhaseShowingAnswer.Revealed())
}

func TestPhase_ZeroValueHidesAnswer(t *testing.T) {
	var p Phase
	assert.Equal(t, PhaseShowingQuestion, p)
}
