package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	chatview "github.com/bnema/techsillies-cli/internal/adapters/render/chat"
	"github.com/bnema/techsillies-cli/internal/application"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "chat <user-id>",
		Short: "Chat with one of your connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := domain.UserID(args[0])
			opts := chatview.Options{Title: chatTitle(app, target)}
			if current := app.store.Snapshot().CurrentUser; current != nil {
				opts.SelfName = current.FirstName
			}

			if plain || !isTerminal(cmd.InOrStdin()) {
				return runPlainChat(cmd, app, target, opts)
			}

			return app.chat.With(cmd.Context(), target, func(handle *application.ChatHandle) error {
				return chatview.Run(cmd.Context(), handle, opts, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Line-based chat without the full-screen interface")

	return cmd
}

func chatTitle(app *app, target domain.UserID) string {
	for _, connection := range app.store.Snapshot().Connections {
		if connection.ID == target && connection.DisplayName() != "" {
			return connection.DisplayName()
		}
	}
	return string(target)
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runPlainChat sends each stdin line as a message and prints received
// messages as they arrive. It stops at end of input, on interrupt, or when the
// connection drops.
func runPlainChat(cmd *cobra.Command, app *app, target domain.UserID, opts chatview.Options) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	handle, err := app.chat.Open(ctx, target)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Chat with %s\n", opts.Title)
	for _, msg := range handle.History() {
		printChatLine(out, msg)
	}

	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for msg := range handle.Messages() {
			printChatLine(out, msg)
		}
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	sendErr := pumpLines(ctx, handle, lines, printed, cmd.ErrOrStderr())

	closeErr := handle.Close()
	<-printed

	if transportErr := handle.Err(); transportErr != nil {
		return fmt.Errorf("chat disconnected: %w", transportErr)
	}
	if sendErr != nil {
		return sendErr
	}
	return closeErr
}

func pumpLines(ctx context.Context, handle *application.ChatHandle, lines <-chan string, printed <-chan struct{}, errOut io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-printed:
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			err := handle.Send(ctx, line)
			switch {
			case err == nil:
			case errors.Is(err, application.ErrChatClosed):
				return nil
			case ctx.Err() != nil:
				return nil
			default:
				_, _ = fmt.Fprintf(errOut, "not sent: %v\n", err)
			}
		}
	}
}

func printChatLine(out io.Writer, msg domain.ChatMessage) {
	_, _ = fmt.Fprintf(out, "%s: %s\n", msg.SenderName, msg.Text)
}
