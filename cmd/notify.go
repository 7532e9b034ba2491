package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newNotifyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Register for and receive push notifications",
	}

	cmd.AddCommand(
		newNotifyRegisterCmd(app),
		newNotifyListenCmd(app),
	)

	return cmd
}

func newNotifyRegisterCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register this device for push notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := app.notifications.Register(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered push token %s\n", token)
			return err
		},
	}
}

func newNotifyListenCmd(app *app) *cobra.Command {
	var maxCount int

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Print notifications as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxCount < 0 {
				return fmt.Errorf("--max must not be negative")
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			received := 0
			return app.notifications.Listen(ctx, func(n domain.Notification) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), n.Toast())
				received++
				if maxCount > 0 && received >= maxCount {
					cancel()
				}
			})
		},
	}

	cmd.Flags().IntVar(&maxCount, "max", 0, "Stop after this many notifications (0 keeps listening)")

	return cmd
}
