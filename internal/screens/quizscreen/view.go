package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/balajinix/avani-academy/internal/quiz"
	"github.com/balajinix/avani-academy/internal/ui/components"
	"github.com/balajinix/avani-academy/internal/ui/theme"
)

const cardWidth = 64

func (q *QuizScreen) View(width, height int) string {
	var content string
	switch q.phase {
	case phaseLoading:
		content = q.renderLoading()
	case phaseQuestion:
		content = q.renderQuestion(false)
	case phaseFeedback:
		content = q.renderQuestion(true)
	case phaseComplete:
		content = q.renderComplete()
	case phaseError:
		content = q.renderError()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) renderLoading() string {
	return theme.Hint.Render("picking a question...")
}

func (q *QuizScreen) renderQuestion(withFeedback bool) string {
	var sections []string

	meta := q.classBadge()
	if q.current.Chapter != "" {
		meta += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("   " + q.current.Chapter)
	}
	sections = append(sections, meta, "")

	sections = append(sections, q.choice.View())

	if withFeedback {
		sections = append(sections, q.feedbackBanner(), "")
		sections = append(sections, theme.Hint.Render("press any key"))
	}

	card := theme.Card.Width(cardWidth).Render(strings.Join(sections, "\n"))

	bar := components.NewProgressBar("Mastered", q.progress(), true, cardWidth).View()
	status := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("score %d   answered %d", q.session.Score(), q.session.Answered()))

	return strings.Join([]string{card, "", bar, status}, "\n")
}

func (q *QuizScreen) progress() float64 {
	if q.total == 0 {
		return 0
	}
	return float64(q.mastered()) / float64(q.total)
}

func (q *QuizScreen) classBadge() string {
	switch q.class {
	case quiz.ClassFresh:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("NEW")
	case quiz.ClassRetry:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("SECOND CHANCE")
	case quiz.ClassResurfaced:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("REVIEW (no points)")
	}
	return ""
}

func (q *QuizScreen) feedbackBanner() string {
	switch q.outcome {
	case quiz.OutcomeCorrect:
		if q.class.Scores() {
			return theme.Correct.Render("Bravo! That is correct. +1 point ★")
		}
		return theme.Correct.Render("Correct! This was a review question, so no points are added.")
	case quiz.OutcomeRetry:
		return theme.Incorrect.Render("That is not correct. Try again.")
	case quiz.OutcomeFinal:
		return theme.Incorrect.Render("That is not correct. Let's come back to this later.")
	}
	return ""
}

func (q *QuizScreen) renderComplete() string {
	title := theme.Correct.Render("You've completed all questions for this subject!")
	lines := []string{
		title,
		"",
		theme.Body.Render(fmt.Sprintf("Great work on %s.", q.subject)),
		theme.Body.Render(fmt.Sprintf("Score: %d points", q.session.Score())),
		"",
		theme.Hint.Render("press Enter to go back"),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (q *QuizScreen) renderError() string {
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong"),
		"",
		theme.Body.Render(q.err.Error()),
		"",
		theme.Hint.Render("press Enter to go back"),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}
