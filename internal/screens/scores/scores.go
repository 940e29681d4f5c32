// Package scores shows the logged-in user's per-subject point totals and
// answer history.
package scores

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/balajinix/avani-academy/internal/screen"
	"github.com/balajinix/avani-academy/internal/store"
	"github.com/balajinix/avani-academy/internal/ui/theme"
)

const loadTimeout = 5 * time.Second

type scoreRow struct {
	subject string
	points  int
	total   int
	correct int
}

type loadedMsg struct {
	rows []scoreRow
	err  error
}

// ScoresScreen lists subject scores, highest first.
type ScoresScreen struct {
	st   *store.Store
	user string

	rows   []scoreRow
	loaded bool
	err    error
}

var _ screen.Screen = (*ScoresScreen)(nil)

// New creates the score table screen for the given user.
func New(st *store.Store, user string) *ScoresScreen {
	return &ScoresScreen{st: st, user: user}
}

func (s *ScoresScreen) Title() string {
	return "My Scores"
}

func (s *ScoresScreen) Init() tea.Cmd {
	st, user := s.st, s.user
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		subjectScores, err := st.Scores().ForUser(ctx, user)
		if err != nil {
			return loadedMsg{err: err}
		}

		rows := make([]scoreRow, 0, len(subjectScores))
		for _, ss := range subjectScores {
			stats, err := st.Events().AnswerStats(ctx, user, ss.Subject)
			if err != nil {
				return loadedMsg{err: err}
			}
			rows = append(rows, scoreRow{
				subject: ss.Subject,
				points:  ss.Points,
				total:   stats.Total,
				correct: stats.Correct,
			})
		}
		return loadedMsg{rows: rows}
	}
}

func (s *ScoresScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		s.loaded = true
		s.rows = msg.rows
		s.err = msg.err
	}
	return s, nil
}

func (s *ScoresScreen) View(width, height int) string {
	var content string
	switch {
	case !s.loaded:
		content = theme.Hint.Render("adding it all up...")
	case s.err != nil:
		content = lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not load scores: " + s.err.Error())
	case len(s.rows) == 0:
		content = theme.Card.Render(
			theme.Body.Render("No points yet. Pick a subject and start answering!"))
	default:
		content = s.renderTable()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ScoresScreen) renderTable() string {
	header := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
		Render(fmt.Sprintf("%-20s %8s %10s", "Subject", "Points", "Answers"))

	lines := []string{theme.Title.Render(s.user + "'s scores"), "", header}
	total := 0
	for _, row := range s.rows {
		total += row.points
		lines = append(lines, theme.Body.Render(fmt.Sprintf(
			"%-20s %8d %7d/%d", row.subject, row.points, row.correct, row.total)))
	}
	lines = append(lines, "",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("%-20s %8d", "Total", total)))

	return theme.Card.Render(strings.Join(lines, "\n"))
}
