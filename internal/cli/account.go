package cli

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
	"golang.org/x/term"
)

// newLoginCommand creates the login command.
func newLoginCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Email       string
		Password    string
		GoogleToken string
	}

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Sign in to the task service",
		GroupID: groupAccount,
		Long: `Sign in with email and password, or with a Google OAuth access
token obtained out-of-band.

The session is cached on disk and reused by later commands until
'taskdeck logout'.

Examples:
  # Email/password sign-in (password prompted when omitted)
  taskdeck login --email a@example.com

  # Federated sign-in
  taskdeck login --google-token "$TOKEN"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out, err := c.RestoreSessionUseCase().Execute(cmd.Context()); err == nil && out.Identity != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Already signed in as %s; run 'taskdeck logout' to switch accounts\n", out.Identity.Email)
				return nil
			}

			if opts.GoogleToken != "" {
				out, err := c.SignInWithGoogleUseCase().Execute(cmd.Context(), usecase.SignInWithGoogleInput{
					AccessToken: opts.GoogleToken,
				})
				if err != nil {
					return loginError(err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", out.Identity.Email)
				return nil
			}

			if opts.Email == "" {
				return errors.New("required flag \"email\" not set")
			}
			password := opts.Password
			if password == "" {
				var err error
				password, err = promptPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			out, err := c.SignInUseCase().Execute(cmd.Context(), usecase.SignInInput{
				Email:    opts.Email,
				Password: password,
			})
			if err != nil {
				return loginError(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", out.Identity.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().StringVar(&opts.GoogleToken, "google-token", "", "Google OAuth access token for federated sign-in")

	return cmd
}

// loginError maps provider auth codes to the messages shown to users.
func loginError(err error) error {
	switch domain.AuthCodeOf(err) {
	case domain.AuthUserNotFound:
		return errors.New("user not found; sign up with 'taskdeck register'")
	case domain.AuthWrongPassword:
		return errors.New("incorrect password, try again")
	case domain.AuthNetworkFailure:
		return fmt.Errorf("could not reach the identity service: %w", err)
	default:
		return fmt.Errorf("login failed: %w", err)
	}
}

// newLogoutCommand creates the logout command.
func newLogoutCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Sign out and forget the cached session",
		GroupID: groupAccount,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.SignOutUseCase().Execute(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

// newRegisterCommand creates the register command.
func newRegisterCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Email    string
		Password string
		Team     string
		PhotoURL string
	}

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create a new account",
		GroupID: groupAccount,
		Long: `Create an account at the identity provider, set the display
profile, and register the user with the task service.

The password is prompted twice when not supplied via --password.

Examples:
  taskdeck register --name "Alice" --email a@example.com --team platform`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Name == "" {
				return errors.New("required flag \"name\" not set")
			}
			if opts.Email == "" {
				return errors.New("required flag \"email\" not set")
			}

			password := opts.Password
			confirm := password
			if password == "" {
				var err error
				password, err = promptPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
				confirm, err = promptPassword(cmd, "Confirm password: ")
				if err != nil {
					return err
				}
			}

			out, err := c.CreateAccountUseCase().Execute(cmd.Context(), usecase.CreateAccountInput{
				Name:            opts.Name,
				Email:           opts.Email,
				Password:        password,
				ConfirmPassword: confirm,
				Team:            opts.Team,
				PhotoURL:        opts.PhotoURL,
			})
			if err != nil {
				if errors.Is(err, domain.ErrPasswordMismatch) {
					return err
				}
				if domain.AuthCodeOf(err) == domain.AuthEmailExists {
					return errors.New("an account with this email already exists")
				}
				return fmt.Errorf("signup failed: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", out.Identity.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().StringVar(&opts.Team, "team", "", "Team name, stored with the user profile")
	cmd.Flags().StringVar(&opts.PhotoURL, "photo", "", "Profile photo URL")

	return cmd
}

// promptPassword reads a password without echo when stdin is a
// terminal, falling back to a visible prompt otherwise (tests, pipes).
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)
	if f, ok := cmd.InOrStdin().(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		data, err := term.ReadPassword(int(syscall.Stdin))
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(data), nil
	}
	var password string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &password); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return password, nil
}
