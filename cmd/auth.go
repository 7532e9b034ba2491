package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	authadapter "github.com/bnema/techsillies-cli/internal/adapters/auth"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign up and sign out",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthSignupCmd(app),
		newAuthGoogleCmd(app),
		newAuthLogoutCmd(app),
		newAuthWhoamiCmd(app),
	)

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				password, err = readSecret(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			profile, err := app.sessions.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", profile.DisplayName())
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthSignupCmd(app *app) *cobra.Command {
	var form domain.SignUp

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a TechSillies account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if form.Password == "" {
				var err error
				form.Password, err = readSecret(cmd, "Choose a password: ")
				if err != nil {
					return err
				}
			}

			profile, err := app.sessions.SignUp(cmd.Context(), form)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Complete your profile with `tsl profile edit`.\n", profile.DisplayName())
			return err
		},
	}

	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&form.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "Account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthGoogleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "google",
		Short: "Sign in with Google in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := authadapter.NewState()
			if err != nil {
				return fmt.Errorf("generate oauth state: %w", err)
			}

			server, err := authadapter.StartCallbackServer(app.cfg.AuthListen, state)
			if err != nil {
				return fmt.Errorf("start callback server: %w", err)
			}

			authURL := app.client.OAuthURL(server.RedirectURI(), state)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to sign in with Google:\n%s\n", authURL)

			token, err := server.WaitForToken(cmd.Context(), app.cfg.AuthTimeout)
			if err != nil {
				return fmt.Errorf("wait for oauth callback: %w", err)
			}

			profile, err := app.sessions.CompleteOAuth(cmd.Context(), token)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", profile.DisplayName())
			return err
		},
	}
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.SignOut(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}
}

func newAuthWhoamiCmd(app *app) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.sessions.CurrentUser(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", profile.DisplayName(), profile.ID)
			return err
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ask the server instead of using the cached profile")

	return cmd
}

// readSecret reads one line from stdin so passwords stay out of shell history.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
