package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/session"
)

const authTimeout = 30 * time.Second

// authDoneMsg carries the result of a sign-in or register attempt.
type authDoneMsg struct {
	err error
}

type authMode int

const (
	modeSignIn authMode = iota
	modeRegister
)

// Field order for the two modes. Register shows all four inputs, sign-in
// only email and password.
const (
	fieldEmail = iota
	fieldPassword
	fieldUsername
	fieldFullName
	fieldCount
)

type loginModel struct {
	store  *session.Store
	mode   authMode
	inputs [fieldCount]textinput.Model
	focus  int

	spin       spinner.Model
	submitting bool
	errText    string

	done     bool
	quitting bool
}

// fieldsFor is how many inputs the active mode shows.
func (m loginModel) fieldsFor() int {
	if m.mode == modeRegister {
		return fieldCount
	}
	return 2
}

func (m loginModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

func (m *loginModel) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			m.inputs[j].PromptStyle = StyleHighlight
		} else {
			m.inputs[j].Blur()
			m.inputs[j].PromptStyle = StyleNormal
		}
	}
	return cmd
}

func (m *loginModel) submit() tea.Cmd {
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()
	if email == "" || password == "" {
		m.errText = "email and password are required"
		return nil
	}

	m.submitting = true
	m.errText = ""
	store := m.store

	if m.mode == modeRegister {
		req := api.RegisterRequest{
			Email:    email,
			Password: password,
			Username: strings.TrimSpace(m.inputs[fieldUsername].Value()),
			FullName: strings.TrimSpace(m.inputs[fieldFullName].Value()),
		}
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
			defer cancel()
			return authDoneMsg{err: store.Register(ctx, req)}
		}
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		return authDoneMsg{err: store.Login(ctx, email, password)}
	}
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % m.fieldsFor())

		case "shift+tab", "up":
			return m, m.setFocus((m.focus + m.fieldsFor() - 1) % m.fieldsFor())

		case "ctrl+r":
			// Switch between sign-in and register. Entered values carry
			// over so a typo'd mode choice costs nothing.
			if m.mode == modeSignIn {
				m.mode = modeRegister
			} else {
				m.mode = modeSignIn
				if m.focus >= m.fieldsFor() {
					return m, m.setFocus(0)
				}
			}
			return m, nil

		case "enter":
			if m.submitting {
				// A request is already in flight; enter does nothing
				// until it settles.
				return m, nil
			}
			if m.focus < m.fieldsFor()-1 {
				return m, m.setFocus(m.focus + 1)
			}
			return m, m.submit()
		}

		// Everything else is typing for the focused input.
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd

	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	title := "Sign in to Inkwell"
	hint := "ctrl+r register"
	if m.mode == modeRegister {
		title = "Create an Inkwell account"
		hint = "ctrl+r sign in"
	}
	b.WriteString(StyleHeader.Render(title))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Email", "Password", "Username", "Full name"}
	for i := 0; i < m.fieldsFor(); i++ {
		b.WriteString("  " + StyleNormal.Render(labels[i]) + "\n")
		b.WriteString("  " + m.inputs[i].View() + "\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString("  " + m.spin.View() + " signing in…\n")
	} else if m.errText != "" {
		b.WriteString("  " + StyleError.Render(m.errText) + "\n")
	}

	b.WriteString("\n" + RenderFooterBar([]ShortcutEntry{
		{Label: "tab next field"},
		{Label: "enter submit"},
		{Label: hint},
		{Label: "esc cancel"},
	}, ""))
	return b.String()
}

// RunLoginForm walks the user through sign-in (or registration) against the
// given session store. It returns nil once the store is authenticated, or
// an error when the user cancels.
func RunLoginForm(store *session.Store, register bool) error {
	mode := modeSignIn
	if register {
		mode = modeRegister
	}

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 128
		inputs[i] = ti
	}
	inputs[fieldEmail].Placeholder = "you@example.com"
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '•'
	inputs[fieldUsername].Placeholder = "optional"
	inputs[fieldFullName].Placeholder = "optional"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := loginModel{store: store, mode: mode, inputs: inputs, spin: sp}
	_ = m.setFocus(fieldEmail) // Init's textinput.Blink covers the cursor

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if lm, ok := final.(loginModel); ok && lm.done {
		return nil
	}
	return session.ErrSignedOut
}
