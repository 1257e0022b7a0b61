// Package openfile provides the view for choosing a study file.
package openfile

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rote-cli/internal/core/domain"
)

// ErrEmptyPath is shown when enter is pressed without a path.
var ErrEmptyPath = errors.New("enter a file path")

// View prompts for a study file path.
type View struct {
	styles  *styles.Styles
	input   *input.PathInput
	back    messages.ViewType
	loading bool
	err     error
	width   int
	height  int
}

// NewView creates a new open-file view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		input:  input.NewPathInput(s),
		back:   messages.ViewMenu,
		width:  80,
		height: 24,
	}
}

// Init starts the cursor blinking.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the open-file view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ErrorOccurred:
		v.SetError(msg.Err)
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			back := v.back
			return v, func() tea.Msg { return messages.ViewChanged{View: back} }
		case tea.KeyEnter:
			path := v.input.Path()
			if path == "" {
				v.err = ErrEmptyPath
				return v, nil
			}
			v.err = nil
			v.loading = true
			return v, func() tea.Msg { return messages.OpenFileRequested{Path: path} }
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the open-file view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Open study file"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(domain.Describe(v.err)))
		b.WriteString("\n\n")
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[Enter] Open  [Esc] Cancel"))
	return b.String()
}

// Prepare resets the view before it is shown. current pre-fills the
// input and back is the view to return to on cancel.
func (v *View) Prepare(current string, back messages.ViewType) {
	v.input.Reset()
	if current != "" {
		v.input.SetValue(current)
	}
	v.back = back
	v.err = nil
	v.loading = false
}

// SetError shows a load failure. The entered path is kept for editing.
func (v *View) SetError(err error) {
	v.err = err
	v.loading = false
}

// Err returns the error being displayed.
func (v *View) Err() error {
	return v.err
}

// Value returns the entered path.
func (v *View) Value() string {
	return v.input.Value()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
}
