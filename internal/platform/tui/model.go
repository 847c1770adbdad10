package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tidal-drop/internal/config"
	"github.com/vovakirdan/tidal-drop/internal/core"
	"github.com/vovakirdan/tidal-drop/internal/storage"
	"github.com/vovakirdan/tidal-drop/internal/surf"
)

const (
	// Terminals report no key releases, so holds expire instead. A held key
	// stays held for keyRepeatDelay until its first auto-repeat (terminal
	// repeat delays reach about 660ms), then for keyRepeatInterval per repeat.
	keyRepeatDelay    = 700 * time.Millisecond
	keyRepeatInterval = 150 * time.Millisecond

	footerHeight = 1 // Help or name entry line below the playfield
	nameMaxLen   = 16
)

// RunRecorder receives every finished run.
type RunRecorder interface {
	RecordRun(run storage.RunRecord)
}

// Options configures a game host.
type Options struct {
	Surf       config.SurfConfig
	Runtime    core.RuntimeConfig
	Store      surf.ScoreStore // nil uses an in-memory store
	Recorder   RunRecorder     // Optional run history sink
	Difficulty string          // Preset name, recorded with each run
	Logger     *log.Logger
}

// Model is the Bubble Tea model hosting one Tidal Drop simulation.
type Model struct {
	state      *surf.State
	input      *surf.Controller
	frame      surf.FrameState
	screen     *core.Screen
	cell       config.SurfViewport
	runtime    core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	name       textinput.Model
	board      LeaderboardModel
	recorder   RunRecorder
	difficulty string
	logger     *log.Logger
	lastTick   time.Time
	runTime    time.Duration // Play time of the current run
	entering   bool          // Game-over name panel is open
	showBoard  bool
	paused     bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model in the menu phase.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		d := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = d.ScreenW, d.ScreenH
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screenH := max(cfg.ScreenH-footerHeight, 1)
	screen := core.NewScreen(cfg.ScreenW, screenH)
	cell := opts.Surf.Viewport

	state := surf.NewState(opts.Surf, viewportFor(cfg.ScreenW, screenH, cell), cfg.Seed, opts.Store)

	name := textinput.New()
	name.Prompt = "Name: "
	name.Placeholder = opts.Surf.Scoring.DefaultName
	name.CharLimit = nameMaxLen
	name.Width = nameMaxLen

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		state:      state,
		input:      surf.NewController(),
		frame:      state.Snapshot(),
		screen:     screen,
		cell:       cell,
		runtime:    cfg,
		keys:       NewKeyMapper(),
		help:       h,
		name:       name,
		board:      NewLeaderboardModel(cfg.ScreenW, cfg.ScreenH),
		recorder:   opts.Recorder,
		difficulty: opts.Difficulty,
		logger:     logger,
	}
}

// viewportFor converts a playfield in cells to world pixels.
func viewportFor(w, h int, cell config.SurfViewport) surf.Viewport {
	return surf.Viewport{
		W: float64(w) * cell.CellWidth,
		H: float64(h) * cell.CellHeight,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	// Cursor blink and other text field messages
	if m.entering {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.entering {
		return m.handleNameKey(msg)
	}
	if m.showBoard {
		return m.handleBoardKey(msg)
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		m.input.Press(surf.SourceKey)
	case core.ActionStart:
		m.input.RequestStart()
	case core.ActionPause:
		if m.state.Phase() == surf.PhasePlaying {
			m.paused = !m.paused
		}
	case core.ActionLeaderboard:
		if m.state.Phase() != surf.PhasePlaying {
			m.openBoard()
		}
	}

	return m, nil
}

// handleNameKey processes keys while the game-over panel is open.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapNameKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionSave:
		if m.state.SaveScore(m.name.Value()) {
			m.logger.Info("Score saved", "score", m.frame.Score)
		}
		m.frame = m.state.Snapshot()
		m.closeNameEntry()
		return m, nil
	case core.ActionSkip:
		m.closeNameEntry()
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleBoardKey processes keys while the leaderboard is shown.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.board.Keys()
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		m.showBoard = false
		return m, nil
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

// handleMouse feeds left-button presses and releases to the controller.
// Presses are ignored while a panel has focus; releases always go through
// so a button held into a panel does not stay latched.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && !m.entering && !m.showBoard {
			m.input.Press(surf.SourcePointer)
		}
	case tea.MouseActionRelease:
		m.input.Release(surf.SourcePointer)
	}

	return m, nil
}

// handleResize processes window resize events. The run keeps going; the
// wave is refitted to the new playfield.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height

	screenH := max(msg.Height-footerHeight, 1)
	m.screen.Resize(msg.Width, screenH)
	m.state.Resize(viewportFor(msg.Width, screenH, m.cell))
	m.frame = m.state.Snapshot()

	m.help.Width = msg.Width
	m.board = m.board.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick runs one simulation frame with the wall-clock delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.input.ReleaseIdle(surf.SourceKey, keyRepeatDelay, keyRepeatInterval)

	// Frozen: drop input so nothing fires on resume
	if m.paused || m.entering || m.showBoard {
		m.input.Consume()
		return m, tickCmd(m.runtime.TickRate)
	}

	prev := m.frame.Phase
	m.frame = m.state.Advance(m.input.Consume(), dt)
	cmd := m.observe(prev, dt)

	return m, tea.Batch(cmd, tickCmd(m.runtime.TickRate))
}

// observe reacts to phase transitions of the last frame.
func (m *Model) observe(prev surf.Phase, dt float64) tea.Cmd {
	f := m.frame
	var cmd tea.Cmd

	switch {
	case prev != surf.PhasePlaying && f.Phase == surf.PhasePlaying:
		m.runTime = 0
		m.logger.Debug("Run started")

	case prev == surf.PhasePlaying && f.Phase == surf.PhaseGameOver:
		m.logger.Info("Wipeout", "score", f.Score, "best", f.BestScore, "newBest", f.NewBest)
		if m.recorder != nil {
			m.recorder.RecordRun(storage.RunRecord{
				Score:      f.Score,
				Difficulty: m.difficulty,
				Duration:   m.runTime,
			})
		}
		m.entering = true
		m.name.Reset()
		cmd = m.name.Focus()
	}

	if f.Phase == surf.PhasePlaying {
		m.runTime += time.Duration(dt * float64(time.Second))
	}

	return cmd
}

// closeNameEntry dismisses the game-over panel.
func (m *Model) closeNameEntry() {
	m.entering = false
	m.name.Blur()
	m.name.Reset()
}

// openBoard shows the leaderboard with fresh records.
func (m *Model) openBoard() {
	m.board = m.board.SetRecords(m.state.Leaderboard(), m.frame.BestScore)
	m.showBoard = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showBoard {
		return m.board.View()
	}

	surf.Render(m.screen, m.frame, m.cell)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorBrightWhite)
	}

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer renders the help line or the name entry field.
func (m Model) footer() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if m.entering {
		return m.name.View() + "  " + helpStyle.Render(m.help.ShortHelpView(m.keys.name.ShortHelp()))
	}

	return helpStyle.Render(m.help.View(m.keys.game))
}

// Frame returns the last simulated frame.
func (m Model) Frame() surf.FrameState {
	return m.frame
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse press and release drive jumps
	)

	_, err := p.Run()
	return err
}
