package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// reportFunc moves the status line forward. total <= 1 hides the counter.
type reportFunc func(step, total int, label string)

func discardProgress(int, int, string) {}

type progressMsg struct {
	step  int
	total int
	label string
}

type taskDoneMsg struct {
	err error
}

type progressModel struct {
	spinner spinner.Model
	counter lipgloss.Style
	status  progressMsg
	task    tea.Cmd
	err     error
	done    bool
}

func newProgressModel(label string, task tea.Cmd) progressModel {
	return progressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		),
		counter: lipgloss.NewStyle().Faint(true),
		status:  progressMsg{label: label},
		task:    task,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressMsg:
		if msg.label == "" {
			msg.label = m.status.label
		}
		m.status = msg
		return m, nil
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	line := m.spinner.View() + " " + m.status.label
	if m.status.total > 1 {
		line += " " + m.counter.Render(fmt.Sprintf("(%d/%d)", m.status.step, m.status.total))
	}
	return line
}

// runWithProgress shows label on output while task runs; task may report
// finer-grained steps as it goes.
func runWithProgress(ctx context.Context, output io.Writer, label string, task func(context.Context, reportFunc) error) error {
	var p *tea.Program
	report := func(step, total int, label string) {
		p.Send(progressMsg{step: step, total: total, label: label})
	}
	taskCmd := func() tea.Msg {
		return taskDoneMsg{err: task(ctx, report)}
	}

	p = tea.NewProgram(
		newProgressModel(label, taskCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	result, ok := final.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected progress model type %T", final)
	}
	return result.err
}
