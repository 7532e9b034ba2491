package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const skipSessionAnnotation = "tsl/skip-session"

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "tsl",
		Short:         "TechSillies CLI (tsl): discover developers, connect and trade referrals",
		Long:          "tsl is a terminal client for the TechSillies referral network: browse the discovery feed, manage connection requests, send and review job referrals, and chat with your connections.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	app, err := wireApp(stderrOf(rootCmd))
	if err != nil {
		// Without subcommands cobra hands every invocation to RunE, so the
		// configuration error surfaces instead of "unknown command".
		rootCmd.FParseErrWhitelist.UnknownFlags = true
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if verbose {
			app.log.SetLevel(logrus.DebugLevel)
		}
		if cmd.Annotations[skipSessionAnnotation] != "" {
			return nil
		}
		return app.store.Load(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newProfileCmd(app),
		newFeedCmd(app),
		newConnectionsCmd(app),
		newRequestsCmd(app),
		newReferralsCmd(app),
		newChatCmd(app),
		newNotifyCmd(app),
	)
	withSignInHint(rootCmd)

	return rootCmd
}

// withSignInHint points the user at `tsl auth login` whenever a command fails
// because the session is missing or was rejected.
func withSignInHint(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)
			if errors.Is(err, domain.ErrNotAuthenticated) {
				return fmt.Errorf("%w (sign in with `tsl auth login` or `tsl auth google`)", err)
			}
			return err
		}
	}
	for _, child := range cmd.Commands() {
		withSignInHint(child)
	}
}

type cmdStderr struct {
	cmd *cobra.Command
}

func (w cmdStderr) Write(p []byte) (int, error) {
	return w.cmd.ErrOrStderr().Write(p)
}

func stderrOf(cmd *cobra.Command) cmdStderr {
	return cmdStderr{cmd: cmd}
}
