// Package study provides the question/answer view for the TUI.
package study

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driving"
)

const hiddenAnswer = "Press space or click to reveal the answer"

// View shows the current question and, once revealed, its answer.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	session driving.StudySession
	bar     *status.Bar

	err    error
	width  int
	height int
}

// NewView creates a new study view over session.
func NewView(s *styles.Styles, session driving.StudySession) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		styles:  s,
		keymap:  km,
		session: session,
		bar:     status.NewBar(s, km),
		width:   80,
		height:  24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the study view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			v.interact()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.SetError(msg.Err)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Interact):
		v.interact()
	case keymap.Matches(k, v.keymap.Reload):
		v.bar.SetMessage("reloading...")
		return v, func() tea.Msg { return messages.ReloadRequested{} }
	case keymap.Matches(k, v.keymap.Open):
		return v, changeView(messages.ViewOpenFile)
	case keymap.Matches(k, v.keymap.Back):
		return v, changeView(messages.ViewMenu)
	case keymap.Matches(k, v.keymap.Help):
		return v, changeView(messages.ViewHelp)
	case keymap.Matches(k, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	}
	return v, nil
}

// interact advances the session and records any error for display.
func (v *View) interact() {
	if v.session == nil {
		v.err = domain.ErrNoDeck
		return
	}
	phase, err := v.session.Interact()
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.bar.SetMessage("")
	v.bar.SetPhase(phase)
}

// View renders the study view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("rote"))
	b.WriteString("\n\n")

	body := v.renderCard()
	b.WriteString(body)
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(domain.Describe(v.err)))
		b.WriteString("\n")
	}

	// keep the status bar on the last line
	used := lipgloss.Height(b.String())
	if gap := v.height - used - 1; gap > 0 {
		b.WriteString(strings.Repeat("\n", gap))
	}
	b.WriteString(v.bar.View())

	return b.String()
}

func (v *View) renderCard() string {
	entry, ok := v.current()
	if !ok {
		return v.styles.Muted.Render("No study file loaded. Press o to open one.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Question.Render(entry.Question))
	b.WriteString("\n\n")
	if v.session.Phase().Revealed() {
		b.WriteString(v.styles.Answer.Render(entry.Answer))
	} else {
		b.WriteString(v.styles.Hidden.Render(hiddenAnswer))
	}

	cardWidth := v.width - 4
	if cardWidth < 20 {
		cardWidth = 20
	}
	return v.styles.Card.Width(cardWidth).Render(b.String())
}

func (v *View) current() (domain.Entry, bool) {
	if v.session == nil {
		return domain.Entry{}, false
	}
	return v.session.Current()
}

// SetDeck refreshes the status bar for a newly started deck.
func (v *View) SetDeck(deck *domain.Deck) {
	v.bar.SetDeck(deck)
	v.bar.SetPhase(domain.PhaseShowingQuestion)
	v.err = nil
}

// SetError shows err under the card. A nil error clears it.
func (v *View) SetError(err error) {
	v.err = err
}

// SetMessage shows a short message in the status bar.
func (v *View) SetMessage(message string) {
	v.bar.SetMessage(message)
}

// Err returns the error being displayed.
func (v *View) Err() error {
	return v.err
}

// Bar returns the status bar.
func (v *View) Bar() *status.Bar {
	return v.bar
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.bar.SetWidth(width)
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}
