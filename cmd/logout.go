package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Aliases: []string{"signout"},
	Short:   "Forget the stored session token and user",
	Long:    "Removes the stored token and user record. Liked confessions are kept.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		sess, err := e.session.Current()
		if err != nil {
			return fmt.Errorf("reading session: %w", err)
		}
		if !sess.HasToken() && sess.User == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
			return nil
		}
		if err := e.session.Clear(); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		e.log.Info("signed out from cli")
		fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgHiGreen, color.Bold).Sprint("✅ Signed out"))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(logoutCmd)
}
