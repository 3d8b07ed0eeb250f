package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aldawsari/shopdesk/internal/auth"
	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/session"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

// DashboardModel is the live shift screen: who is clocked in, since when,
// and the running elapsed time fed by the session ticker.
type DashboardModel struct {
	width  int
	height int

	title string
	user  *session.Identity
	rec   *session.Reconciler

	ticker *session.Ticker
	ticks  <-chan string

	// Display state
	clock        string // current HH:MM:SS
	start        *time.Time
	todayMinutes int

	// UI state
	ending  bool // True when user pressed E and we're ending the shift
	exiting bool // True when user pressed ESC/Q and we're leaving it running
}

// clockTickMsg carries one value from the ticker channel. The channel is
// included so a message from a replaced run can be recognised and dropped.
type clockTickMsg struct {
	ch    <-chan string
	value string
	ok    bool
}

// listenTicks waits for the next ticker value
func listenTicks(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		return clockTickMsg{ch: ch, value: v, ok: ok}
	}
}

// NewDashboardModel creates the dashboard TUI model
func NewDashboardModel(title string, user *session.Identity, rec *session.Reconciler) DashboardModel {
	snap := rec.Snapshot()

	m := DashboardModel{
		title:  title,
		user:   user,
		rec:    rec,
		ticker: session.NewTicker(),
		clock:  "00:00:00",
		start:  snap.ActiveSessionStart,
	}
	m.ticks = m.ticker.Start(startValue(m.start))
	if minutes, err := db.TodayWorkMinutes(user.ID); err == nil {
		m.todayMinutes = minutes
	}
	return m
}

// startValue maps "no open session" to the ticker's zero-start contract
func startValue(start *time.Time) time.Time {
	if start == nil {
		return time.Time{}
	}
	return *start
}

// Init initializes the dashboard model
func (m DashboardModel) Init() tea.Cmd {
	return listenTicks(m.ticks)
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		if msg.ch != m.ticks {
			// Leftover from a replaced ticker run
			return m, nil
		}
		if !msg.ok {
			// Ticker finished: no open session, or the run was stopped
			return m, nil
		}
		m.clock = msg.value
		if minutes, err := db.TodayWorkMinutes(m.user.ID); err == nil {
			m.todayMinutes = minutes
		}
		return m, listenTicks(m.ticks)

	case tea.FocusMsg:
		// Terminal regained focus: the day may have rolled over while we
		// were in the background. Refetch and restart the clock.
		m.rec.OnForeground()
		m.rec.Flush()
		snap := m.rec.Snapshot()
		m.start = snap.ActiveSessionStart
		m.ticks = m.ticker.Start(startValue(m.start))
		return m, listenTicks(m.ticks)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "e", "E":
			// End the shift and log out
			m.ending = true
			m.ticker.Stop()
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Leave the shift running
			m.exiting = true
			m.ticker.Stop()
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	panel := m.renderShiftPanel(m.width, contentHeight)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panel,
		helpBar,
	)
}

// renderShiftPanel renders the main shift panel
func (m DashboardModel) renderShiftPanel(width, height int) string {
	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render(m.title))

	statusText := "⏱  ON SHIFT"
	statusColor := ColorAccentBright
	if m.start == nil {
		statusText = "○  NOT CLOCKED IN"
		statusColor = ColorDisabledText
	}
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, statusStyle.Render(statusText))

	userStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	userText := fmt.Sprintf("%s · %s", m.user.Name, m.user.Role)
	components = append(components, userStyle.Render(userText))

	// Big clock display
	clockDisplay := m.renderBigClock()
	clockContent := ""
	for _, line := range strings.Split(clockDisplay, "\n") {
		centeredLine := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width).
			Render(line)
		clockContent += centeredLine + "\n"
	}
	components = append(components, strings.TrimRight(clockContent, "\n"))

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	if m.start != nil {
		components = append(components, infoStyle.Render(
			fmt.Sprintf("Checked in at %s", m.start.Format("15:04:05"))))
	}
	components = append(components, infoStyle.Render(
		fmt.Sprintf("Today: %s", timeutil.FormatMinutes(m.todayMinutes))))

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderBigClock renders the elapsed shift time as an ASCII art clock
func (m DashboardModel) renderBigClock() string {
	// ASCII art for digits (5x5 characters each)
	digits := map[rune][]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	var lines [5]strings.Builder
	for _, char := range m.clock {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i])
				lines[i].WriteString(" ") // Space between digits
			}
		}
	}

	clockColor := ColorAccentBright
	if m.start == nil {
		clockColor = ColorDisabledText
	}
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(clockColor)).
		Bold(true)

	var result strings.Builder
	for i := 0; i < 5; i++ {
		result.WriteString(clockStyle.Render(lines[i].String()))
		if i < 4 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// renderHelpBar renders the help bar at the bottom
func (m DashboardModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("e end shift & log out · esc/q leave shift running · ctrl+c force quit")
}

// RunDashboard runs the live shift dashboard
func RunDashboard(title string, user *session.Identity, rec *session.Reconciler, manager *auth.Manager) error {
	model := NewDashboardModel(title, user, rec)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	dashboard := finalModel.(DashboardModel)
	if dashboard.ending {
		if err := manager.Logout(); err != nil {
			return fmt.Errorf("failed to end shift: %w", err)
		}
		fmt.Printf("⏹️  Shift ended after %s. See you tomorrow, %s!\n",
			dashboard.clock, user.Name)
	} else if dashboard.exiting && dashboard.start != nil {
		fmt.Printf("💡 Still clocked in since %s. Use 'shopdesk logout' to end the shift.\n",
			dashboard.start.Format("15:04:05"))
	}

	return nil
}
