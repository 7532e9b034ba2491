package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/techsillies-cli/internal/adapters/render/view"
	"github.com/bnema/techsillies-cli/internal/application"
	"github.com/bnema/techsillies-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileEditCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var refresh bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.sessions.CurrentUser(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, profile)
			}
			rendered, err := view.Profile(profile)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ask the server instead of using the cached profile")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProfileEditCmd(app *app) *cobra.Command {
	var firstName, lastName, about, company, headline string
	var skills string
	var clearSkills bool
	var removeSkills []string
	var imagePath string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update profile fields; only the flags you pass change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			edit := application.EditProfileCommand{
				AddSkills:    skills,
				RemoveSkills: removeSkills,
				ClearSkills:  clearSkills,
			}

			flags := cmd.Flags()
			for name, target := range map[string]**string{
				"first-name": &edit.FirstName,
				"last-name":  &edit.LastName,
				"about":      &edit.About,
				"company":    &edit.Company,
				"headline":   &edit.Headline,
			} {
				if flags.Changed(name) {
					value, _ := flags.GetString(name)
					*target = &value
				}
			}

			if imagePath != "" {
				image, err := readProfileImage(imagePath)
				if err != nil {
					return err
				}
				edit.Image = image
			}

			profile, err := app.sessions.EditProfile(cmd.Context(), edit)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s, your profile was updated successfully.\n", profile.FirstName)
			return err
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&about, "about", "", "About you")
	cmd.Flags().StringVar(&company, "company", "", "Company or college")
	cmd.Flags().StringVar(&headline, "headline", "", "Headline, e.g. Backend Engineer")
	cmd.Flags().StringVar(&skills, "skills", "", "Skills to add, separated by commas or semicolons")
	cmd.Flags().BoolVar(&clearSkills, "clear-skills", false, "Remove all skills before adding --skills")
	cmd.Flags().StringArrayVar(&removeSkills, "remove-skill", nil, "Skill to remove (repeatable)")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a profile photo (max 10 MB)")

	return cmd
}

func readProfileImage(path string) (*domain.ProfileImage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read profile image: %w", err)
	}
	if info.Size() > domain.MaxProfileImage {
		return nil, fmt.Errorf("%w: %s is over 10 MB", domain.ErrImageTooLarge, filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile image: %w", err)
	}
	return &domain.ProfileImage{Filename: filepath.Base(path), Content: content}, nil
}
