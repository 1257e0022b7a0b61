package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/views/openfile"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/rote-cli/internal/adapters/driving/tui/views/study"
	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/logger"
)

// Options configures a new App.
type Options struct {
	// File is loaded on start. Empty starts at the menu.
	File string

	// Watch reloads the study file when it changes on disk.
	Watch bool
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports   *Ports
	ctx     context.Context
	styles  *styles.Styles
	options Options

	menuView     *menu.View
	studyView    *study.View
	openFileView *openfile.View
	settingsView *settings.View

	currentView messages.ViewType

	// helpReturn is the view shown when help is closed.
	helpReturn messages.ViewType

	// rememberFile saves the next successfully opened file as the default.
	rememberFile bool

	// The active file watch. Events carrying another watchID are stale.
	watchID     string
	watchPath   string
	watchEvents <-chan domain.FileEvent
	watchCtx    context.Context
	watchCancel context.CancelFunc

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	app := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		options:      opts,
		menuView:     menu.NewView(s),
		studyView:    study.NewView(s, ports.Session),
		openFileView: openfile.NewView(s),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewMenu,
		helpReturn:   messages.ViewMenu,
	}
	if opts.File != "" {
		app.currentView = messages.ViewStudy
	}
	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("rote")}
	if a.options.File != "" {
		cmds = append(cmds, a.loadDeck(a.options.File))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.Close()
			return a, tea.Quit
		}
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		if a.currentView == messages.ViewStudy {
			a.studyView, cmd = a.studyView.Update(msg)
		}
		return a, cmd

	case messages.ViewChanged:
		return a, a.changeView(msg.View)

	case messages.OpenFileRequested:
		a.rememberFile = true
		return a, a.loadDeck(msg.Path)

	case messages.ReloadRequested:
		if a.ports.Deck.Current() == nil {
			return a, reportError(domain.ErrNoDeck)
		}
		return a, a.reloadDeck()

	case messages.DeckLoaded:
		return a, a.handleDeckLoaded(msg)

	case messages.FileChanged:
		return a, a.handleFileChanged(msg)

	case messages.WatchStopped:
		if msg.WatchID != a.watchID {
			return a, nil
		}
		a.stopWatch()
		if msg.Err != nil {
			logger.Warn("%v", msg.Err)
			a.studyView.SetMessage("not watching")
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewOpenFile {
			a.openFileView, cmd = a.openFileView.Update(msg)
		} else {
			a.studyView, cmd = a.studyView.Update(msg)
		}
		return a, cmd

	case messages.SettingsSaved:
		if msg.Err == nil {
			cmd = a.applySettings()
		}
		if a.currentView == messages.ViewSettings {
			var viewCmd tea.Cmd
			a.settingsView, viewCmd = a.settingsView.Update(msg)
			cmd = batch(cmd, viewCmd)
		}
		return a, cmd

	case messages.SettingsLoaded:
		if a.currentView == messages.ViewSettings {
			a.settingsView, cmd = a.settingsView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		a.Close()
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewStudy:
		a.studyView, cmd = a.studyView.Update(msg)
	case messages.ViewOpenFile:
		a.openFileView, cmd = a.openFileView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// handleKey forwards a key press to the active view.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewStudy:
		a.studyView, cmd = a.studyView.Update(msg)
	case messages.ViewOpenFile:
		a.openFileView, cmd = a.openFileView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if msg.String() == "q" {
			a.Close()
			return tea.Quit
		}
		// any other key closes help
		a.currentView = a.helpReturn
	}
	return cmd
}

// changeView switches views and initialises the target.
func (a *App) changeView(view messages.ViewType) tea.Cmd {
	previous := a.currentView
	a.currentView = view

	switch view {
	case messages.ViewOpenFile:
		path := ""
		if deck := a.ports.Deck.Current(); deck != nil {
			path = deck.Path
		}
		back := previous
		if back == messages.ViewOpenFile || back == messages.ViewHelp {
			back = messages.ViewMenu
		}
		a.openFileView.Prepare(path, back)
		return a.openFileView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewHelp:
		if previous != messages.ViewHelp {
			a.helpReturn = previous
		}
	case messages.ViewMenu, messages.ViewStudy:
	}
	return nil
}

// loadDeck returns a command loading path.
func (a *App) loadDeck(path string) tea.Cmd {
	deckSvc := a.ports.Deck
	ctx := a.ctx
	return func() tea.Msg {
		deck, err := deckSvc.Load(ctx, path)
		return messages.DeckLoaded{Deck: deck, Err: err}
	}
}

// reloadDeck returns a command re-reading the current study file.
func (a *App) reloadDeck() tea.Cmd {
	deckSvc := a.ports.Deck
	ctx := a.ctx
	return func() tea.Msg {
		deck, err := deckSvc.Reload(ctx)
		return messages.DeckLoaded{Deck: deck, Reloaded: true, Err: err}
	}
}

func (a *App) handleDeckLoaded(msg messages.DeckLoaded) tea.Cmd {
	if msg.Err != nil {
		logger.Debug("Load failed: %v", msg.Err)
		if msg.Reloaded {
			a.studyView.SetMessage("reload failed")
		}
		return reportError(msg.Err)
	}

	if err := a.ports.Session.Start(msg.Deck); err != nil {
		return reportError(err)
	}

	a.err = nil
	a.studyView.SetDeck(msg.Deck)
	a.menuView.SetDeckPath(msg.Deck.Path)

	var cmds []tea.Cmd
	if msg.Reloaded {
		a.studyView.SetMessage("reloaded")
	} else {
		a.currentView = messages.ViewStudy
		if a.rememberFile {
			cmds = append(cmds, a.rememberStudyFile(msg.Deck.Path))
		}
	}
	a.rememberFile = false

	if msg.Deck.Path != a.watchPath {
		cmds = append(cmds, a.startWatch(msg.Deck.Path))
	}
	return batch(cmds...)
}

func (a *App) handleFileChanged(msg messages.FileChanged) tea.Cmd {
	if msg.WatchID != a.watchID || a.watchEvents == nil {
		logger.Debug("Ignoring event from replaced watch %s", msg.WatchID)
		return nil
	}

	next := waitForChange(a.watchCtx, a.watchID, a.watchEvents)
	if msg.Event.Type == domain.FileRemoved {
		a.studyView.SetMessage("file removed")
		return next
	}
	return batch(a.reloadDeck(), next)
}

// startWatch replaces the active watch with one on path.
func (a *App) startWatch(path string) tea.Cmd {
	a.stopWatch()
	if !a.options.Watch || a.ports.Watch == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(a.ctx)
	events, err := a.ports.Watch.Watch(ctx, path)
	if err != nil {
		cancel()
		logger.Warn("not watching %s: %v", path, err)
		return nil
	}

	a.watchID = uuid.NewString()
	a.watchPath = path
	a.watchEvents = events
	a.watchCtx = ctx
	a.watchCancel = cancel
	return waitForChange(ctx, a.watchID, events)
}

// stopWatch cancels the active watch, if any.
func (a *App) stopWatch() {
	if a.watchCancel != nil {
		a.watchCancel()
	}
	a.clearWatch()
}

func (a *App) clearWatch() {
	a.watchID = ""
	a.watchPath = ""
	a.watchEvents = nil
	a.watchCtx = nil
	a.watchCancel = nil
}

// batch combines cmds, dropping nils. A single command is returned as is.
func batch(cmds ...tea.Cmd) tea.Cmd {
	valid := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	default:
		return tea.Batch(valid...)
	}
}

// waitForChange returns a command that blocks for the next event on events.
// A channel closed while ctx is still live means the watcher gave up.
func waitForChange(ctx context.Context, id string, events <-chan domain.FileEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			stopped := messages.WatchStopped{WatchID: id}
			if ctx.Err() == nil {
				stopped.Err = ErrWatchStopped
			}
			return stopped
		}
		return messages.FileChanged{WatchID: id, Event: ev}
	}
}

// reportError returns a command delivering err as an ErrorOccurred message.
func reportError(err error) tea.Cmd {
	return func() tea.Msg {
		return messages.ErrorOccurred{Err: err}
	}
}

// rememberStudyFile stores path as the default study file.
func (a *App) rememberStudyFile(path string) tea.Cmd {
	svc := a.ports.Settings
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		if err := svc.SetStudyFile(path); err != nil {
			logger.Warn("could not remember %s: %v", path, err)
		}
		return nil
	}
}

// applySettings picks up a changed watch setting.
func (a *App) applySettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	current, err := a.ports.Settings.Get()
	if err != nil || current.Study.Watch == a.options.Watch {
		return nil
	}

	a.options.Watch = current.Study.Watch
	if !a.options.Watch {
		a.stopWatch()
		return nil
	}
	if deck := a.ports.Deck.Current(); deck != nil {
		return a.startWatch(deck.Path)
	}
	return nil
}

// Close stops background work started by the app.
func (a *App) Close() {
	a.stopWatch()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewStudy:
		return a.studyView.View()
	case messages.ViewOpenFile:
		return a.openFileView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Study:
  space/enter  Reveal the answer, then show the next question
  click        Same as space
  r            Reload the study file
  o            Open another study file
  esc          Back to menu

Menu and settings:
  j/k, ↑/↓     Navigate
  enter        Select
  esc          Back

Study file format:
  A line starting with a number and a dot begins a question.
  The lines after it, up to the next question, are its answer.
  Questions with no answer are skipped.

ctrl+c quits from anywhere.

[any key] close help`
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Watching returns the path being watched, or "" when not watching.
func (a *App) Watching() string {
	return a.watchPath
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.studyView.SetDimensions(width, height)
	a.openFileView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
