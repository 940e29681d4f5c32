// Package login implements the name entry screen shown after the splash.
// Learners either log into an existing account or sign up with a new name.
package login

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/balajinix/avani-academy/internal/bank"
	"github.com/balajinix/avani-academy/internal/router"
	"github.com/balajinix/avani-academy/internal/screen"
	"github.com/balajinix/avani-academy/internal/screens/subjects"
	"github.com/balajinix/avani-academy/internal/store"
	"github.com/balajinix/avani-academy/internal/ui/components"
	"github.com/balajinix/avani-academy/internal/ui/layout"
	"github.com/balajinix/avani-academy/internal/ui/theme"
)

const authTimeout = 5 * time.Second

type mode int

const (
	modeLogin mode = iota
	modeSignup
)

type usersLoadedMsg struct {
	names []string
}

type authResultMsg struct {
	user string
	err  error
}

// LoginScreen asks for a name and resolves it against the user store.
type LoginScreen struct {
	st    *store.Store
	banks *bank.Store

	input  components.TextInput
	mode   mode
	known  []string
	status string
	isErr  bool
	busy   bool
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates the login screen.
func New(st *store.Store, banks *bank.Store) *LoginScreen {
	return &LoginScreen{
		st:    st,
		banks: banks,
		input: components.NewTextInput("your name", false, 24),
	}
}

func (l *LoginScreen) Title() string {
	return "Login"
}

func (l *LoginScreen) Init() tea.Cmd {
	return tea.Batch(l.input.Init(), l.loadUsers())
}

func (l *LoginScreen) loadUsers() tea.Cmd {
	users := l.st.Users()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		names, err := users.List(ctx)
		if err != nil {
			return usersLoadedMsg{}
		}
		return usersLoadedMsg{names: names}
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		l.known = msg.names
		return l, nil

	case authResultMsg:
		l.busy = false
		if msg.err != nil {
			l.isErr = true
			switch {
			case errors.Is(msg.err, store.ErrUserExists):
				l.status = fmt.Sprintf("%q is taken. Press Tab to switch to Login.", msg.user)
			case errors.Is(msg.err, errUnknownUser):
				l.status = fmt.Sprintf("No account named %q. Press Tab to switch to Sign Up.", msg.user)
			default:
				l.status = msg.err.Error()
			}
			return l, nil
		}
		st, banks := l.st, l.banks
		next := subjects.New(st, banks, msg.user, func() screen.Screen {
			return New(st, banks)
		})
		return l, tea.Batch(
			func() tea.Msg { return router.SetUserMsg{Name: msg.user} },
			func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
		)

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		switch msg.String() {
		case "tab":
			if l.mode == modeLogin {
				l.mode = modeSignup
			} else {
				l.mode = modeLogin
			}
			l.status = ""
			l.isErr = false
			return l, nil
		case "enter":
			return l, l.submit()
		}
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

var errUnknownUser = errors.New("unknown user")

func (l *LoginScreen) submit() tea.Cmd {
	name := strings.TrimSpace(l.input.Value())
	if name == "" {
		l.status = "Please type a name first."
		l.isErr = true
		return nil
	}

	l.busy = true
	l.status = ""
	l.isErr = false

	users := l.st.Users()
	mode := l.mode
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()

		if mode == modeSignup {
			if err := users.Signup(ctx, name); err != nil {
				return authResultMsg{user: name, err: err}
			}
			return authResultMsg{user: name}
		}

		ok, err := users.Exists(ctx, name)
		if err != nil {
			return authResultMsg{user: name, err: err}
		}
		if !ok {
			return authResultMsg{user: name, err: errUnknownUser}
		}
		return authResultMsg{user: name}
	}
}

func (l *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("Who's learning today?")

	loginBtn := components.NewButton("Login", l.mode == modeLogin, nil)
	signupBtn := components.NewButton("Sign Up", l.mode == modeSignup, nil)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, loginBtn.View(), "  ", signupBtn.View())

	var sections []string
	sections = append(sections, title, "", buttons, "", l.input.View())

	if l.busy {
		sections = append(sections, "", theme.Hint.Render("one moment..."))
	} else if l.status != "" {
		style := theme.Hint
		if l.isErr {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		sections = append(sections, "", style.Render(l.status))
	}

	if len(l.known) > 0 {
		sections = append(sections, "",
			theme.Hint.Render("learners: "+strings.Join(l.known, ", ")))
	}

	card := theme.Card.Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// KeyHints implements screen.KeyHintProvider.
func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Login/Sign Up"},
		{Key: "Enter", Description: "Go"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
