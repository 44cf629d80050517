package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/musclequiz/internal/facts"
	"github.com/abhisek/musclequiz/internal/router"
	"github.com/abhisek/musclequiz/internal/screen"
	"github.com/abhisek/musclequiz/internal/screens/home"
	sessionscreen "github.com/abhisek/musclequiz/internal/screens/session"
	"github.com/abhisek/musclequiz/internal/session"
	"github.com/abhisek/musclequiz/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Store         *facts.Store
	QuestionLimit int
	Seed          int64 // 0 picks a random seed
	Logger        *zap.Logger

	// SkipHome starts directly in a quiz.
	SkipHome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen, or a quiz when
// opts.SkipHome is set.
func newAppModel(opts Options) AppModel {
	if opts.Store == nil {
		opts.Store = facts.Default()
	}
	if opts.QuestionLimit <= 0 {
		opts.QuestionLimit = session.QuestionLimit
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ctrlOpts := []session.Option{
		session.WithQuestionLimit(opts.QuestionLimit),
		session.WithLogger(opts.Logger),
	}
	if opts.Seed != 0 {
		ctrlOpts = append(ctrlOpts, session.WithSeed(opts.Seed))
	}
	ctrl := session.NewController(opts.Store, ctrlOpts...)

	newQuiz := func() screen.Screen { return sessionscreen.New(ctrl) }

	var root screen.Screen
	if opts.SkipHome {
		root = newQuiz()
	} else {
		root = home.New(opts.Store, opts.QuestionLimit, newQuiz)
	}
	return AppModel{
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints prefers the active screen's hints and always ends with quit.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, kp.KeyHints()...)
	} else if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Q", Description: "Quit"})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
