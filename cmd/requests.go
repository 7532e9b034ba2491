package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/techsillies-cli/internal/adapters/render/view"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRequestsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Review incoming connection requests",
	}

	cmd.AddCommand(
		newRequestsListCmd(app),
		newRequestsReviewCmd(app),
	)

	return cmd
}

func newRequestsListCmd(app *app) *cobra.Command {
	var refresh bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending connection requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var requests []domain.ConnectionRequest
			err := fetch(cmd, asJSON, "Fetching requests...", func(ctx context.Context) error {
				var err error
				requests, err = app.connections.PendingRequests(ctx, refresh)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, requests)
			}
			rendered, err := view.Requests(requests)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch from the server even when requests are cached")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newRequestsReviewCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "review <accept|reject> <request-id>",
		Short: "Accept or reject a connection request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			verb, err := domain.ParseReviewVerb(args[0])
			if err != nil {
				return err
			}

			id := domain.RequestID(args[1])
			if err := app.connections.Review(cmd.Context(), verb, id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Request %s %s\n", id, verb.Outcome())
			return err
		},
	}
}
