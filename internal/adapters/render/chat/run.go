package chat

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the chat TUI until the user leaves or ctx is done.
func Run(ctx context.Context, conv Conversation, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		newModel(ctx, conv, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
