// Package app hosts the root Bubble Tea model: it owns the screen router,
// the header/footer chrome, and the logged-in user shown in the header.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/balajinix/avani-academy/internal/bank"
	"github.com/balajinix/avani-academy/internal/router"
	"github.com/balajinix/avani-academy/internal/screen"
	"github.com/balajinix/avani-academy/internal/screens/login"
	"github.com/balajinix/avani-academy/internal/screens/welcome"
	"github.com/balajinix/avani-academy/internal/store"
	"github.com/balajinix/avani-academy/internal/ui/layout"
)

const scoreTimeout = 5 * time.Second

// totalScoreMsg carries the freshly summed header score.
type totalScoreMsg struct {
	points int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	st     *store.Store
	banks  *bank.Store
	router *router.Router
	width  int
	height int

	user  string
	score int
}

// newAppModel creates a new AppModel starting on the splash screen.
func newAppModel(st *store.Store, banks *bank.Store) AppModel {
	splash := welcome.New(func() screen.Screen {
		return login.New(st, banks)
	})
	return AppModel{
		st:     st,
		banks:  banks,
		router: router.New(splash),
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

	case router.SetUserMsg:
		m.user = msg.Name
		if m.user == "" {
			m.score = 0
			return m, nil
		}
		return m, m.refreshScore()

	case router.RefreshScoreMsg:
		return m, m.refreshScore()

	case totalScoreMsg:
		m.score = msg.points
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
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

// refreshScore re-reads the user's total points across all subjects.
func (m AppModel) refreshScore() tea.Cmd {
	if m.user == "" {
		return nil
	}
	scores, user := m.st.Scores(), m.user
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
		defer cancel()
		rows, err := scores.ForUser(ctx, user)
		if err != nil {
			return nil
		}
		total := 0
		for _, row := range rows {
			total += row.Points
		}
		return totalScoreMsg{points: total}
	}
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
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.user, m.score, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

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

// Run starts the Bubble Tea program.
func Run(st *store.Store, banks *bank.Store) error {
	p := tea.NewProgram(newAppModel(st, banks))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
