package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aldawsari/shopdesk/internal/auth"
)

// loginField indexes into the login form inputs
type loginField int

const (
	fieldEmail loginField = iota
	fieldPassword
)

// LoginModel represents the TUI model for the login form
type LoginModel struct {
	manager *auth.Manager
	title   string

	focused loginField
	inputs  []textinput.Model
	width   int
	height  int

	// State
	submitting    bool
	completed     bool
	cancelled     bool
	validationErr string
}

// NewLoginModel creates a new login form model
func NewLoginModel(title string, manager *auth.Manager) LoginModel {
	inputs := make([]textinput.Model, 2)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[fieldEmail].Placeholder = "email@example.com"
	inputs[fieldEmail].Focus()
	inputs[fieldEmail].CharLimit = 100

	inputs[fieldPassword].Placeholder = "password"
	inputs[fieldPassword].CharLimit = 100
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '•'

	return LoginModel{
		manager: manager,
		title:   title,
		focused: fieldEmail,
		inputs:  inputs,
	}
}

// Init initializes the login model
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// loginResultMsg carries the outcome of a login attempt
type loginResultMsg struct {
	ok  bool
	err error
}

// Update handles messages
func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.validationErr = msg.err.Error()
			return m, nil
		}
		if !msg.ok {
			m.validationErr = "Invalid email or password"
			m.inputs[fieldPassword].SetValue("")
			m.focused = fieldPassword
			m.inputs[fieldEmail].Blur()
			m.inputs[fieldPassword].Focus()
			return m, nil
		}
		m.completed = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			m.validationErr = ""
			m.inputs[m.focused].Blur()
			if m.focused == fieldEmail {
				m.focused = fieldPassword
			} else {
				m.focused = fieldEmail
			}
			m.inputs[m.focused].Focus()
			return m, nil

		case "enter":
			m.validationErr = ""
			if m.focused == fieldEmail {
				m.inputs[fieldEmail].Blur()
				m.focused = fieldPassword
				m.inputs[fieldPassword].Focus()
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[fieldEmail].Value())
			password := m.inputs[fieldPassword].Value()
			if email == "" {
				m.validationErr = "Email is required"
				return m, nil
			}
			if password == "" {
				m.validationErr = "Password is required"
				return m, nil
			}

			m.submitting = true
			return m, func() tea.Msg {
				ok, err := m.manager.Login(email, password)
				return loginResultMsg{ok: ok, err: err}
			}
		}
	}

	// Forward everything else to the focused input
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// View renders the login form
func (m LoginModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	activeLabelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	emailLabel := labelStyle.Render("Email")
	passwordLabel := labelStyle.Render("Password")
	if m.focused == fieldEmail {
		emailLabel = activeLabelStyle.Render("Email")
	} else {
		passwordLabel = activeLabelStyle.Render("Password")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("🔐 "+m.title+" — Sign in") + "\n\n")
	b.WriteString(emailLabel + "\n")
	b.WriteString(m.inputs[fieldEmail].View() + "\n\n")
	b.WriteString(passwordLabel + "\n")
	b.WriteString(m.inputs[fieldPassword].View() + "\n")

	if m.submitting {
		b.WriteString("\n" + labelStyle.Render("Signing in...") + "\n")
	}
	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n" + errStyle.Render("✗ "+m.validationErr) + "\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString("\n" + helpStyle.Render("enter submit · tab switch field · esc cancel"))

	formStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 3)

	form := formStyle.Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

// RunLogin runs the interactive login form. Returns true when the user
// signed in successfully, false when they cancelled.
func RunLogin(title string, manager *auth.Manager) (bool, error) {
	model := NewLoginModel(title, manager)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	login := finalModel.(LoginModel)
	return login.completed, nil
}
