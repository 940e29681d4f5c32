// Package subjects implements the main menu: one entry per question bank
// on disk, plus the score table and exit.
package subjects

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/balajinix/avani-academy/internal/bank"
	"github.com/balajinix/avani-academy/internal/router"
	"github.com/balajinix/avani-academy/internal/screen"
	"github.com/balajinix/avani-academy/internal/screens/quizscreen"
	"github.com/balajinix/avani-academy/internal/screens/scores"
	"github.com/balajinix/avani-academy/internal/store"
	"github.com/balajinix/avani-academy/internal/ui/components"
	"github.com/balajinix/avani-academy/internal/ui/theme"
)

// SubjectsScreen is the hub the learner lands on after logging in.
type SubjectsScreen struct {
	st     *store.Store
	banks  *bank.Store
	user   string
	logout func() screen.Screen

	menu     components.Menu
	subjects []string
	scanErr  error
}

var _ screen.Screen = (*SubjectsScreen)(nil)

// New creates the subject menu for the given user. The bank directory is
// scanned once at construction. logout produces a fresh login screen for the
// Log Out entry.
func New(st *store.Store, banks *bank.Store, user string, logout func() screen.Screen) *SubjectsScreen {
	s := &SubjectsScreen{
		st:     st,
		banks:  banks,
		user:   user,
		logout: logout,
	}
	s.subjects, s.scanErr = banks.Subjects()

	var items []components.MenuItem
	for _, subject := range s.subjects {
		subject := subject
		items = append(items, components.MenuItem{
			Label: subject,
			Action: func() tea.Cmd {
				quiz := quizscreen.New(st, banks, user, subject)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quiz}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "My Scores",
		Action: func() tea.Cmd {
			sc := scores.New(st, user)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sc}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Log Out",
		Action: func() tea.Cmd {
			next := s.logout()
			return tea.Batch(
				func() tea.Msg { return router.SetUserMsg{} },
				func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
			)
		},
	})
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *SubjectsScreen) Title() string {
	return "Subjects"
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return router.SetUserMsg{Name: s.user} },
		func() tea.Msg { return router.RefreshScoreMsg{} },
	)
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SubjectsScreen) View(width, height int) string {
	greeting := theme.Title.Render("Hi " + s.user + "! Pick a subject.")

	var body string
	switch {
	case s.scanErr != nil:
		body = lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not read question banks: "+s.scanErr.Error()) + "\n\n" + s.menu.View()
	case len(s.subjects) == 0:
		body = lipgloss.NewStyle().Foreground(theme.Error).
			Render("No question banks found in "+s.banks.Dir()) + "\n\n" + s.menu.View()
	default:
		body = s.menu.View()
	}

	content := strings.Join([]string{greeting, "", body}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
