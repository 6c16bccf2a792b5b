package cmd

import (
	"github.com/comiccruncher/locg/internal/log"
	"github.com/spf13/cobra"
)

// The user command.
var userCmd = &cobra.Command{
	Use:   "user <name>",
	Short: "Fetches user details for a user name, if they exist.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		user := newAPI(cmd).FetchUser(args[0])
		if user == nil {
			log.CMD().Fatal("no user found")
		}
		output(user)
	},
}

// Init scripts.
func init() {
	userCmd.Flags().Uint("retries", 0, "Retry connection errors this many times before giving up.")
	RootCmd.AddCommand(userCmd)
}
