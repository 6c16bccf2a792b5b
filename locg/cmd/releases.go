package cmd

import (
	"github.com/comiccruncher/locg/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The releases command.
var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Fetches the comic releases for a week.",
	Run: func(cmd *cobra.Command, args []string) {
		comics, err := newAPI(cmd).FetchReleases(dateArg(cmd), listOptions(cmd))
		if err != nil {
			log.CMD().Fatal("cannot fetch releases", zap.Error(err))
		}
		output(comics)
	},
}

// Init scripts.
func init() {
	releasesCmd.Flags().StringP("date", "d", "", "The release week in YYYY-MM-DD format. Defaults to the current week.")
	addListFlags(releasesCmd)
	RootCmd.AddCommand(releasesCmd)
}
