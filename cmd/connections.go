package cmd

import (
	"context"

	"github.com/bnema/techsillies-cli/internal/adapters/render/view"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newConnectionsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Aliases: []string{"conn"},
		Short:   "Work with your accepted connections",
	}

	cmd.AddCommand(newConnectionsListCmd(app))

	return cmd
}

func newConnectionsListCmd(app *app) *cobra.Command {
	var search string
	var refresh bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connections, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var connections []domain.UserProfile
			err := fetch(cmd, asJSON, "Fetching connections...", func(ctx context.Context) error {
				var err error
				connections, err = app.connections.Connections(ctx, refresh)
				return err
			})
			if err != nil {
				return err
			}

			filtered := domain.FilterConnections(connections, search)
			if asJSON {
				return writeJSON(cmd, filtered)
			}
			rendered, err := view.Connections(filtered, search)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Only show connections whose name contains this text")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch from the server even when connections are cached")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
