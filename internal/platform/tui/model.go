package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mzolotov/termsnake/internal/core"
	"github.com/mzolotov/termsnake/internal/game"
	"github.com/mzolotov/termsnake/internal/storage"
)

// Model drives the game loop under bubbletea. Key presses accumulate
// into an input frame; each tick hands the frame to the game and
// reschedules itself at the game's current interval.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	frame      core.InputFrame
	state      core.GameState
	scoreSaved bool
	quitting   bool
}

// NewModel creates a game model. store may be nil, in which case
// scores are not persisted.
func NewModel(g *game.Game, store *storage.Store, logger *log.Logger, rc core.RuntimeConfig) Model {
	return Model{
		game:   g,
		screen: core.NewScreen(rc.ScreenW, rc.ScreenH),
		store:  store,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		frame:  core.NewInputFrame(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.Action(msg)
		if action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action != core.ActionNone {
			m.frame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Reserve the last row for the help footer.
		h := msg.Height - 1
		if h < 1 {
			h = 1
		}
		m.screen.Resize(msg.Width, h)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.state = m.game.Step(m.frame)
		m.frame.Clear()

		if m.game.Phase() == game.PhaseGameOver {
			if !m.scoreSaved {
				m.saveScore()
				m.scoreSaved = true
			}
		} else {
			m.scoreSaved = false
		}

		return m, tickCmd(m.game.TickInterval())
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func (m Model) saveScore() {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.Score()); err != nil {
		m.logger.Warn("failed to save score", "err", err)
	}
}

// Run starts the bubbletea program in the alternate screen. The
// terminal is restored on any exit path, including panics and signals.
func Run(g *game.Game, store *storage.Store, logger *log.Logger, rc core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(g, store, logger, rc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
