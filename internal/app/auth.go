package app

import (
	"fmt"
	"syscall"

	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to Inkwell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) && email == "" {
				if err := tui.RunLoginForm(store, false); err != nil {
					return err
				}
				ok("signed in as %s", store.User().DisplayName())
				return nil
			}

			if email == "" {
				fmt.Print("Email: ")
				if _, err := fmt.Scanln(&email); err != nil {
					return fmt.Errorf("reading email: %w", err)
				}
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			if err := store.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			ok("signed in as %s", store.User().DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (skips the interactive form)")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var (
		email    string
		username string
		fullName string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an Inkwell account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) && email == "" {
				if err := tui.RunLoginForm(store, true); err != nil {
					return err
				}
				ok("account created, signed in as %s", store.User().DisplayName())
				return nil
			}

			if email == "" {
				return fmt.Errorf("--email is required in non-interactive mode")
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			req := api.RegisterRequest{
				Email:    email,
				Password: password,
				Username: username,
				FullName: fullName,
			}
			if err := store.Register(cmd.Context(), req); err != nil {
				return err
			}
			ok("account created, signed in as %s", store.User().DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&username, "username", "", "Username (optional)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name (optional)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard saved tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !client.HasTokens() {
				fmt.Println("Not signed in.")
				return nil
			}
			store.Logout(cmd.Context())
			ok("signed out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd.Context()); err != nil {
				return err
			}
			u := store.User()
			header("Account")
			printField("email", u.Email)
			if u.Username != "" {
				printField("username", u.Username)
			}
			if u.FullName != "" {
				printField("name", u.FullName)
			}
			printField("id", u.ID.String())
			return nil
		},
	}
}

// promptPassword reads a password without echo when stdin is a terminal.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	if term.IsTerminal(int(syscall.Stdin)) {
		b, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}
	var pw string
	if _, err := fmt.Scanln(&pw); err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return pw, nil
}
