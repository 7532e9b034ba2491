package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/techsillies-cli/internal/adapters/render/view"
	"github.com/bnema/techsillies-cli/internal/application"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newReferralsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "referrals",
		Aliases: []string{"ref"},
		Short:   "Send and review job referral requests",
	}

	cmd.AddCommand(
		newReferralsSendCmd(app),
		newReferralsListCmd(app),
		newReferralsReviewCmd(app),
	)

	return cmd
}

func newReferralsSendCmd(app *app) *cobra.Command {
	var jobLink string
	var resumeLink string

	cmd := &cobra.Command{
		Use:   "send <user-id>",
		Short: "Ask a user to refer you for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.referrals.Send(cmd.Context(), application.SendReferralCommand{
				ReceiverID: domain.UserID(args[0]),
				JobLink:    jobLink,
				ResumeLink: resumeLink,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Referral request sent to %s\n", args[0])
			return err
		},
	}

	cmd.Flags().StringVar(&jobLink, "job", "", "Link to the job posting")
	cmd.Flags().StringVar(&resumeLink, "resume", "", "Link to your resume")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("resume")

	return cmd
}

func newReferralsListCmd(app *app) *cobra.Command {
	var status string
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "list [received|sent]",
		Short:     "List referral requests you received or sent",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(domain.ReferralsReceived), string(domain.ReferralsSent)},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := application.ReferralQuery{View: domain.ReferralsReceived}
			if len(args) == 1 {
				query.View = domain.ReferralView(args[0])
			}
			if cmd.Flags().Changed("status") {
				parsed, err := domain.ParseReferralStatus(status)
				if err != nil {
					return err
				}
				query.Status = parsed
			}

			var referrals []domain.ReferralRequest
			err := fetch(cmd, asJSON, "Fetching referrals...", func(ctx context.Context) error {
				var err error
				referrals, err = app.referrals.List(ctx, query)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, referrals)
			}
			rendered, err := view.Referrals(referrals, view.ReferralOptions{
				View:   query.View,
				Status: query.Status,
				Now:    app.now(),
			})
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show received referrals in this status (pending|accepted|rejected)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newReferralsReviewCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "review <referral-id> <accept|reject>",
		Short: "Accept or reject a referral request you received",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseReferralStatus(args[1])
			if err != nil {
				return err
			}

			board, err := app.referrals.Board(cmd.Context())
			if err != nil {
				return err
			}

			id := domain.ReferralID(args[0])
			if err := app.referrals.Review(cmd.Context(), &board, application.ReviewReferralCommand{ID: id, Status: status}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Referral %s %s\n", id, status)
			return err
		},
	}
}
