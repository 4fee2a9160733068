package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newProfileCommand creates the profile command and its subcommands.
func newProfileCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Short:   "Show or update the signed-in profile",
		GroupID: groupAccount,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, c); err != nil {
				return err
			}
			identity := c.Sessions.Identity()
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Name:  %s\n", identity.DisplayName)
			_, _ = fmt.Fprintf(w, "Email: %s\n", identity.Email)
			if identity.PhotoURL != "" {
				_, _ = fmt.Fprintf(w, "Photo: %s\n", identity.PhotoURL)
			}
			return nil
		},
	}

	cmd.AddCommand(newProfileUpdateCommand(c))
	return cmd
}

// newProfileUpdateCommand creates the profile update subcommand.
func newProfileUpdateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		PhotoURL string
	}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update display name and photo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, c); err != nil {
				return err
			}

			identity := c.Sessions.Identity()
			name := opts.Name
			if name == "" {
				name = identity.DisplayName
			}
			photo := opts.PhotoURL
			if photo == "" {
				photo = identity.PhotoURL
			}

			out, err := c.UpdateProfileUseCase().Execute(cmd.Context(), usecase.UpdateProfileInput{
				Name:     name,
				PhotoURL: photo,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile updated: %s\n", out.Identity.DisplayName)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New display name")
	cmd.Flags().StringVar(&opts.PhotoURL, "photo", "", "New photo URL")

	return cmd
}
