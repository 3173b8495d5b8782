package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifeverse/dm-frontend/internal/thread"
)

var (
	selfStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	characterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	typingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Italic(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	headerStyle    = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
)

type refreshMsg struct{}

type sendDoneMsg struct{ err error }

type typingSentMsg struct{}

// Model renders one DM thread: the message list, the derived typing
// indicator and the input line. All thread state lives in the
// Synchronizer; the model only keeps the last snapshot it rendered.
type Model struct {
	sync          *thread.Synchronizer
	selfUID       string
	characterName string

	snapshot thread.Snapshot
	status   string
	width    int
	height   int
}

func New(sync *thread.Synchronizer, selfUID, characterName string) Model {
	return Model{
		sync:          sync,
		selfUID:       selfUID,
		characterName: characterName,
		snapshot:      sync.Snapshot(),
		width:         80,
		height:        24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		<-m.sync.Updates()
		return refreshMsg{}
	}
}

func (m Model) sendCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return sendDoneMsg{err: m.sync.Send(ctx)}
	}
}

func (m Model) typingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = m.sync.NotifyTyping(ctx)
		return typingSentMsg{}
	}
}

func (m Model) loadOlderCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = m.sync.LoadOlder(ctx)
		return refreshMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.snapshot = m.sync.Snapshot()
		return m, m.waitForUpdate()

	case sendDoneMsg:
		m.snapshot = m.sync.Snapshot()
		if msg.err != nil && !errors.Is(msg.err, thread.ErrSendInFlight) {
			m.status = fmt.Sprintf("send failed: %v", msg.err)
		} else if msg.err == nil {
			m.status = ""
		}
		return m, nil

	case typingSentMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.sync.Close()
		return m, tea.Quit

	case tea.KeyEnter:
		if strings.TrimSpace(m.snapshot.Input) == "" || m.snapshot.Sending {
			return m, nil
		}
		return m, m.sendCmd()

	case tea.KeyPgUp:
		return m, m.loadOlderCmd()

	case tea.KeyBackspace:
		input := m.snapshot.Input
		if input == "" {
			return m, nil
		}
		runes := []rune(input)
		m.setInput(string(runes[:len(runes)-1]))
		return m, nil

	case tea.KeySpace:
		m.setInput(m.snapshot.Input + " ")
		return m, m.typingCmd()

	case tea.KeyRunes:
		m.setInput(m.snapshot.Input + string(msg.Runes))
		return m, m.typingCmd()
	}

	return m, nil
}

func (m *Model) setInput(value string) {
	m.sync.SetInput(value)
	m.snapshot = m.sync.Snapshot()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Width(m.width).Render(m.characterName))
	b.WriteString("\n")

	body := m.renderMessages()
	b.WriteString(body)
	b.WriteString("\n")

	if m.snapshot.Typing {
		b.WriteString(typingStyle.Render(m.characterName + " is typing..."))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	} else if m.snapshot.StreamErr != nil {
		b.WriteString(statusStyle.Render("connection lost, restart to reconnect"))
		b.WriteString("\n")
	}

	prompt := promptStyle.Render("> ")
	if m.snapshot.Sending {
		b.WriteString(prompt + m.snapshot.Input + " (sending...)")
	} else {
		b.WriteString(prompt + m.snapshot.Input + "█")
	}

	return b.String()
}

func (m Model) renderMessages() string {
	visible := m.height - 6
	if visible < 1 {
		visible = 1
	}

	messages := m.snapshot.Messages
	if len(messages) > visible {
		messages = messages[len(messages)-visible:]
	}

	if len(messages) == 0 {
		return timestampStyle.Render("no messages yet, say hi")
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		name := m.characterName
		style := characterStyle
		if msg.SourceUID == m.selfUID {
			name = "you"
			style = selfStyle
		}

		line := fmt.Sprintf("%s %s %s",
			style.Render(name+":"),
			msg.Content,
			timestampStyle.Render(formatCreated(msg.Created)),
		)
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// formatCreated renders the backend timestamp as local wall-clock time,
// falling back to the raw value when it does not parse.
func formatCreated(created string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, created); err == nil {
			return t.Local().Format("15:04")
		}
	}
	return created
}
