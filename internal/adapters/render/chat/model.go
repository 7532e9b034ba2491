package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Conversation is the open chat the TUI drives.
type Conversation interface {
	Target() domain.UserID
	History() []domain.ChatMessage
	Messages() <-chan domain.ChatMessage
	Send(ctx context.Context, text string) error
}

type Options struct {
	Title    string
	SelfName string
}

type incomingMsg struct {
	message domain.ChatMessage
}

type disconnectedMsg struct{}

type sentMsg struct {
	err error
}

type model struct {
	ctx   context.Context
	conv  Conversation
	opts  Options
	st    styles
	input textinput.Model
	log   viewport.Model

	messages     []domain.ChatMessage
	disconnected bool
	lastErr      error
	ready        bool
}

func newModel(ctx context.Context, conv Conversation, opts Options) model {
	input := textinput.New()
	input.Placeholder = "Type a message"
	input.CharLimit = 1000
	input.Focus()

	if opts.Title == "" {
		opts.Title = string(conv.Target())
	}

	m := model{
		ctx:      ctx,
		conv:     conv,
		opts:     opts,
		st:       newStyles(),
		input:    input,
		log:      viewport.New(80, 20),
		messages: conv.History(),
	}
	m.refresh()
	return m
}

func listenForMessages(messages <-chan domain.ChatMessage) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-messages
		if !ok {
			return disconnectedMsg{}
		}
		return incomingMsg{message: msg}
	}
}

func (m model) send(text string) tea.Cmd {
	return func() tea.Msg {
		return sentMsg{err: m.conv.Send(m.ctx, text)}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, listenForMessages(m.conv.Messages()))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.disconnected {
				return m, nil
			}
			m.input.Reset()
			return m, m.send(text)
		}

	case tea.WindowSizeMsg:
		height := msg.Height - 4
		if height < 3 {
			height = 3
		}
		m.log = viewport.New(msg.Width, height)
		m.input.Width = msg.Width - 4
		m.ready = true
		m.refresh()

	case incomingMsg:
		m.messages = append(m.messages, msg.message)
		m.refresh()
		return m, listenForMessages(m.conv.Messages())

	case disconnectedMsg:
		m.disconnected = true
		m.input.Blur()

	case sentMsg:
		m.lastErr = msg.err
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.log, cmd = m.log.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) refresh() {
	m.log.SetContent(m.renderMessages())
	m.log.GotoBottom()
}

func (m model) renderMessages() string {
	if len(m.messages) == 0 {
		return m.st.muted.Render("No messages yet. Say hello.")
	}

	lines := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		sender := m.st.other
		if msg.SenderName != "" && msg.SenderName == m.opts.SelfName {
			sender = m.st.own
		}

		stamp := ""
		if !msg.Timestamp.IsZero() {
			stamp = m.st.muted.Render(msg.Timestamp.Local().Format("15:04")) + " "
		}
		name := msg.SenderName
		if name == "" {
			name = "?"
		}
		lines = append(lines, stamp+sender.Render(name+":")+" "+msg.Text)
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	status := m.st.muted.Render("esc to leave")
	switch {
	case m.disconnected:
		status = m.st.err.Render("disconnected") + " " + status
	case m.lastErr != nil:
		status = m.st.err.Render(fmt.Sprintf("not sent: %v", m.lastErr)) + " " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.st.header.Render("Chat with "+m.opts.Title),
		m.log.View(),
		m.input.View(),
		status,
	)
}
