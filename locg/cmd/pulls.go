package cmd

import (
	"github.com/comiccruncher/locg/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The pulls command.
var pullsCmd = &cobra.Command{
	Use:   "pulls",
	Short: "Fetches a user's pull list for a week.",
	Run: func(cmd *cobra.Command, args []string) {
		userID, err := cmd.Flags().GetInt("user")
		if err != nil || userID <= 0 {
			log.CMD().Fatal("a positive --user ID is required")
		}
		comics, err := newAPI(cmd).FetchPulls(userID, dateArg(cmd), listOptions(cmd))
		if err != nil {
			log.CMD().Fatal("cannot fetch pull list", zap.Error(err))
		}
		output(comics)
	},
}

// Init scripts.
func init() {
	pullsCmd.Flags().IntP("user", "u", 0, "The numeric site ID for the user.")
	pullsCmd.Flags().StringP("date", "d", "", "The release week in YYYY-MM-DD format. Defaults to the current week.")
	addListFlags(pullsCmd)
	RootCmd.AddCommand(pullsCmd)
}
