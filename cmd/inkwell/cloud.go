// ABOUTME: Cloud command group for charm-backed sync.
// ABOUTME: Push and pull move the note collection through the charm KV store.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var cloudCmd = &cobra.Command{
	Use:   "cloud",
	Short: "Sync notes with a charm cloud account",
}

var cloudStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cloud link status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cloudClient == nil {
			fmt.Println("Cloud sync is unavailable.")
			return nil
		}
		sess := ws.CloudSession(cmd.Context())
		if sess == nil {
			fmt.Println("Not linked. Run 'inkwell cloud link' to connect an account.")
			return nil
		}
		fmt.Printf("Linked as %s (id %s)\n", sess.User, sess.ID)
		return nil
	},
}

var cloudLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this machine to a charm account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cloudClient == nil {
			return fmt.Errorf("cloud sync is unavailable")
		}
		sess, err := cloudClient.Session(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to link: %w", err)
		}
		if sess == nil {
			return fmt.Errorf("link did not complete; try again")
		}
		fmt.Println(ui.Success(fmt.Sprintf("Linked as %s", sess.User)))
		return nil
	},
}

var cloudPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local note collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cloudClient == nil {
			return fmt.Errorf("cloud sync is unavailable")
		}
		user := ws.Session.ActiveUser()
		all := ws.Notes.All()
		if err := cloudClient.PushNotes(cmd.Context(), user, all); err != nil {
			return fmt.Errorf("push failed: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Pushed %d note(s)", len(all))))
		return nil
	},
}

var cloudPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace the local note collection with the cloud copy",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cloudClient == nil {
			return fmt.Errorf("cloud sync is unavailable")
		}
		user := ws.Session.ActiveUser()
		pulled, err := cloudClient.PullNotes(cmd.Context(), user)
		if err != nil {
			return fmt.Errorf("pull failed: %w", err)
		}
		if pulled == nil {
			fmt.Println("No cloud copy found.")
			return nil
		}

		st.SaveNotes(user, pulled)
		ws.Init(cmd.Context())
		fmt.Println(ui.Success(fmt.Sprintf("Pulled %d note(s)", len(pulled))))
		return nil
	},
}

func init() {
	cloudCmd.AddCommand(cloudStatusCmd)
	cloudCmd.AddCommand(cloudLinkCmd)
	cloudCmd.AddCommand(cloudPushCmd)
	cloudCmd.AddCommand(cloudPullCmd)
	rootCmd.AddCommand(cloudCmd)
}
