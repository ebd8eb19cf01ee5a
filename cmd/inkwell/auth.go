// ABOUTME: Auth command group for local account management.
// ABOUTME: Login merges guest notes into an empty account on first sign-in.

package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage accounts and sign-in state",
}

var authSignupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}

		account, err := ws.SignUp(args[0], password, confirm, email)
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Account %q created", account.Username)))

		merged, err := ws.SignIn(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		if merged {
			fmt.Println(ui.Success("Guest notes carried over to your account"))
			pushAfterMerge(cmd)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Signed in as %s", args[0])))
		return nil
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login <username-or-email>",
	Short: "Sign in to an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		merged, err := ws.SignIn(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		if merged {
			fmt.Println(ui.Success("Guest notes carried over to your account"))
			pushAfterMerge(cmd)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Signed in as %s", args[0])))
		return nil
	},
}

// pushAfterMerge uploads the freshly merged collection when a cloud link
// exists, so the account's first sync includes the guest notes.
func pushAfterMerge(cmd *cobra.Command) {
	if cloudClient == nil || ws.CloudSession(cmd.Context()) == nil {
		return
	}
	user := ws.Session.ActiveUser()
	if err := cloudClient.PushNotes(cmd.Context(), user, ws.Notes.All()); err != nil {
		logger.Warn().Err(err).Msg("cloud push after merge")
		return
	}
	fmt.Println(ui.Success("Merged notes pushed to cloud"))
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and return to the guest workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws.SignOut(cmd.Context())
		fmt.Println(ui.Success("Signed out"))
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := ws.Session.ActiveUser()
		if user == "" {
			fmt.Println("guest (not signed in)")
			return nil
		}
		fmt.Println(user)
		return nil
	},
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	if !term.IsTerminal(int(syscall.Stdin)) {
		var password string
		_, err := fmt.Scanln(&password)
		return password, err
	}
	data, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(data), nil
}

func init() {
	authSignupCmd.Flags().String("email", "", "email for the account")
	authCmd.AddCommand(authSignupCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}
