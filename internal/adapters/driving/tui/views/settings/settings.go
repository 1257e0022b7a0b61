// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/core/ports/driving"
)

// Item identifies a settings row.
type Item int

const (
	ItemStudyFile Item = iota
	ItemWatch
	ItemAltScreen
)

const itemCount = 3

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error

	selected  int
	editing   bool
	fileInput textinput.Model

	width  int
	height int
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	fileInput := textinput.New()
	fileInput.Placeholder = domain.DefaultStudyFile
	fileInput.CharLimit = 4096

	return &View{
		styles:          s,
		settingsService: settingsService,
		fileInput:       fileInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKeys(msg)
		}
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < itemCount-1 {
			v.selected++
		}
	case keyEnter, " ":
		if v.settings == nil {
			return v, nil
		}
		switch Item(v.selected) {
		case ItemStudyFile:
			v.editing = true
			v.fileInput.SetValue(v.settings.Study.File)
			v.fileInput.CursorEnd()
			return v, v.fileInput.Focus()
		case ItemWatch:
			watch := !v.settings.Study.Watch
			return v, v.save(func(s driving.SettingsService) error {
				return s.SetWatch(watch)
			})
		case ItemAltScreen:
			alt := !v.settings.UI.AltScreen
			return v, v.save(func(s driving.SettingsService) error {
				return s.SetAltScreen(alt)
			})
		}
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		v.editing = false
		v.fileInput.Blur()
		return v, nil
	case keyEnter:
		path := input.ExpandHome(strings.TrimSpace(v.fileInput.Value()))
		v.editing = false
		v.fileInput.Blur()
		return v, v.save(func(s driving.SettingsService) error {
			return s.SetStudyFile(path)
		})
	}

	var cmd tea.Cmd
	v.fileInput, cmd = v.fileInput.Update(msg)
	return v, cmd
}

// save returns a command applying fn to the settings service.
func (v *View) save(fn func(driving.SettingsService) error) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		return messages.SettingsSaved{Err: fn(svc)}
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	rows := []struct {
		label string
		value string
	}{
		{"Default study file", v.settings.Study.File},
		{"Reload when the file changes", onOff(v.settings.Study.Watch)},
		{"Full-screen mode", onOff(v.settings.UI.AltScreen)},
	}

	for i, row := range rows {
		if i == int(ItemStudyFile) && v.editing {
			b.WriteString("> " + row.label + ": " + v.fileInput.View())
			b.WriteString("\n")
			continue
		}
		line := fmt.Sprintf("%s: %s", row.label, row.value)
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(line))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if v.settingsService != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(v.settingsService.Path()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderHelp() string {
	if v.editing {
		return v.styles.Help.Render("[Enter] Save  [Esc] Cancel")
	}
	return v.styles.Help.Render("[j/k] Navigate  [Enter] Change  [Esc] Back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Reset returns the view to its initial state.
func (v *View) Reset() {
	v.selected = 0
	v.editing = false
	v.err = nil
	v.fileInput.Blur()
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Editing reports whether the study file is being edited.
func (v *View) Editing() bool {
	return v.editing
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
