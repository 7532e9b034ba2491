package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/techsillies-cli/internal/adapters/render/view"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFeedCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Browse the discovery feed",
	}

	cmd.AddCommand(
		newFeedListCmd(app),
		newFeedMoreCmd(app),
		newFeedSearchCmd(app),
		newFeedClearSearchCmd(app),
		newFeedSendCmd(app),
		newFeedStatsCmd(app),
	)

	return cmd
}

func newFeedListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the feed, loading the first page if it is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := app.feed.View()
			if len(current.Entries) == 0 && !current.Searching && !current.Exhausted {
				if err := loadFeedPages(cmd, app, 1, asJSON); err != nil {
					return err
				}
			}
			return writeFeed(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newFeedMoreCmd(app *app) *cobra.Command {
	var pages int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "more",
		Short: "Load the next page of the feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pages < 1 {
				return fmt.Errorf("--pages must be at least 1")
			}
			if err := loadFeedPages(cmd, app, pages, asJSON); err != nil {
				return err
			}
			return writeFeed(cmd, app, asJSON)
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newFeedSearchCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search users by name or skill",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			err := fetch(cmd, asJSON, "Searching...", func(ctx context.Context) error {
				return app.feed.Search(ctx, term)
			})
			if err != nil {
				return err
			}
			return writeFeed(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newFeedClearSearchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-search",
		Short: "Leave search and return to the paginated feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.feed.ClearSearch(cmd.Context()); err != nil {
				return err
			}
			return writeFeed(cmd, app, false)
		},
	}
}

func newFeedSendCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <interested|ignored> <user-id>",
		Short: "Show interest in, or ignore, a user from the feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseConnectionStatus(args[0])
			if err != nil {
				return err
			}
			if !status.Acted() {
				return fmt.Errorf("%w %q (interested|ignored)", domain.ErrUnknownStatus, args[0])
			}

			userID := domain.UserID(args[1])
			if err := app.feed.SendRequest(cmd.Context(), status, userID); err != nil {
				return err
			}

			name := string(userID)
			if entry, ok := app.store.Snapshot().Feed.Entry(userID); ok && entry.User.DisplayName() != "" {
				name = entry.User.DisplayName()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", name, status)
			return err
		},
	}
}

func newFeedStatsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show community statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var stats domain.FeedStats
			err := fetch(cmd, asJSON, "Fetching stats...", func(ctx context.Context) error {
				var err error
				stats, err = app.feed.Stats(ctx)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, stats)
			}
			rendered, err := view.Stats(stats)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func loadFeedPages(cmd *cobra.Command, app *app, pages int, asJSON bool) error {
	return fetchWithProgress(cmd, asJSON, "Loading feed...", func(ctx context.Context, report reportFunc) error {
		for i := 0; i < pages; i++ {
			report(i+1, pages, fmt.Sprintf("Loading feed page %d", app.feed.View().NextPage))
			loaded, err := app.feed.NextPage(ctx)
			if err != nil {
				return err
			}
			if !loaded {
				return nil
			}
		}
		return nil
	})
}

func writeFeed(cmd *cobra.Command, app *app, asJSON bool) error {
	feed := app.feed.View()
	if asJSON {
		return writeJSON(cmd, feed)
	}
	rendered, err := view.Feed(feed)
	return writeRendered(cmd, rendered, err)
}
