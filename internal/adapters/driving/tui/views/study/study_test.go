package study

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/services"
)

// MockStudySession is a mock implementation of driving.StudySession.
type MockStudySession struct {
	mock.Mock
}

func (m *MockStudySession) Start(deck *domain.Deck) error {
	args := m.Called(deck)
	return args.Error(0)
}

func (m *MockStudySession) Interact() (domain.Phase, error) {
	args := m.Called()
	return args.Get(0).(domain.Phase), args.Error(1)
}

func (m *MockStudySession) Phase() domain.Phase {
	args := m.Called()
	return args.Get(0).(domain.Phase)
}

func (m *MockStudySession) Current() (domain.Entry, bool) {
	args := m.Called()
	return args.Get(0).(domain.Entry), args.Bool(1)
}

func (m *MockStudySession) Shown() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockStudySession) Deck() *domain.Deck {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Deck)
}

// firstRandomizer always draws index 0.
type firstRandomizer struct{}

func (firstRandomizer) IntN(int) int { return 0 }

func capitalsDeck() *domain.Deck {
	return &domain.Deck{
		ID:   "deck-1",
		Path: "capitals.txt",
		Entries: []domain.Entry{
			{Question: "1. Capital of France?", Answer: "Paris"},
			{Question: "2. Capital of Japan?", Answer: "Tokyo\nJapan's capital."},
		},
	}
}

func startedView(t *testing.T) (*View, *services.StudySession) {
	t.Helper()
	session := services.NewStudySession(firstRandomizer{})
	deck := capitalsDeck()
	require.NoError(t, session.Start(deck))
	v := NewView(nil, session)
	v.SetDimensions(100, 30)
	v.SetDeck(deck)
	return v, session
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.Bar())
	assert.Nil(t, v.Init())
}

func TestView_NoSession(t *testing.T) {
	v := NewView(nil, nil)

	out := v.View()
	assert.Contains(t, out, "No study file loaded")

	v.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.ErrorIs(t, v.Err(), domain.ErrNoDeck)
	assert.Contains(t, v.View(), "No study file loaded")
}

func TestView_RevealAndAdvance(t *testing.T) {
	v, session := startedView(t)

	out := v.View()
	assert.Contains(t, out, "1. Capital of France?")
	assert.Contains(t, out, hiddenAnswer)
	assert.NotContains(t, out, "Paris")

	v.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, domain.PhaseShowingAnswer, session.Phase())
	out = v.View()
	assert.Contains(t, out, "Paris")
	assert.NotContains(t, out, hiddenAnswer)

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.PhaseShowingQuestion, session.Phase())
	assert.Equal(t, 2, session.Shown())
	assert.Contains(t, v.View(), hiddenAnswer)
}

func TestView_MouseClickInteracts(t *testing.T) {
	v, session := startedView(t)

	v.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, domain.PhaseShowingAnswer, session.Phase())

	// release and wheel are ignored
	v.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	v.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, domain.PhaseShowingAnswer, session.Phase())
}

func TestView_MultiLineAnswer(t *testing.T) {
	session := new(MockStudySession)
	session.On("Current").Return(domain.Entry{Question: "2. Capital of Japan?", Answer: "Tokyo\nJapan's capital."}, true)
	session.On("Phase").Return(domain.PhaseShowingAnswer)
	v := NewView(nil, session)
	v.SetDimensions(100, 30)

	out := v.View()

	assert.Contains(t, out, "Tokyo")
	assert.Contains(t, out, "Japan's capital.")
}

func TestView_InteractError(t *testing.T) {
	session := new(MockStudySession)
	session.On("Interact").Return(domain.PhaseShowingQuestion, domain.ErrEmptyDeck)
	session.On("Current").Return(domain.Entry{}, false)
	v := NewView(nil, session)

	v.Update(tea.KeyMsg{Type: tea.KeySpace})

	assert.ErrorIs(t, v.Err(), domain.ErrEmptyDeck)
	assert.Contains(t, v.View(), domain.Describe(domain.ErrEmptyDeck))
	session.AssertExpectations(t)
}

func TestView_KeyCommands(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{"reload", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, messages.ReloadRequested{}},
		{"open", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}}, messages.ViewChanged{View: messages.ViewOpenFile}},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, messages.ViewChanged{View: messages.ViewMenu}},
		{"help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, messages.ViewChanged{View: messages.ViewHelp}},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, messages.Quit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := startedView(t)

			_, cmd := v.Update(tt.key)

			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestView_ErrorOccurredMessage(t *testing.T) {
	v, _ := startedView(t)

	v.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.Contains(t, v.View(), "boom")

	v.SetError(nil)
	assert.NotContains(t, v.View(), "boom")
}

func TestView_SetDeckClearsError(t *testing.T) {
	v, _ := startedView(t)
	v.SetError(domain.ErrFileNotFound)

	v.SetDeck(capitalsDeck())

	assert.NoError(t, v.Err())
}

func TestView_StatusBar(t *testing.T) {
	v, _ := startedView(t)

	out := v.View()

	assert.Contains(t, out, "capitals.txt")
	assert.Contains(t, out, "2 questions")
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil)

	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, v.width)
	assert.Equal(t, 40, v.height)
	assert.Equal(t, 120, v.Bar().Width())
}
