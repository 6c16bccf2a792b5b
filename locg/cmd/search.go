package cmd

import (
	"strings"

	"github.com/comiccruncher/locg/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The search command.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fetches search results for a query.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		comics, err := newAPI(cmd).FetchSearchResults(strings.Join(args, " "), formatArg(cmd))
		if err != nil {
			log.CMD().Fatal("cannot fetch search results", zap.Error(err))
		}
		output(comics)
	},
}

// Init scripts.
func init() {
	searchCmd.Flags().StringP("format", "f", "issue", "The format to request the results in (issue or series).")
	searchCmd.Flags().Uint("retries", 0, "Retry connection errors this many times before giving up.")
	RootCmd.AddCommand(searchCmd)
}
