package cmd

import (
	"github.com/comiccruncher/locg/internal/log"
	"github.com/comiccruncher/locg/locg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The collection command.
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Fetches a user's collection, in either issue or series format.",
	Run: func(cmd *cobra.Command, args []string) {
		userID, err := cmd.Flags().GetInt("user")
		if err != nil || userID <= 0 {
			log.CMD().Fatal("a positive --user ID is required")
		}
		comics, err := newAPI(cmd).FetchCollection(userID, formatArg(cmd), listOptions(cmd))
		if err != nil {
			log.CMD().Fatal("cannot fetch collection", zap.Error(err))
		}
		output(comics)
	},
}

// formatArg resolves the --format flag into a collection type.
func formatArg(cmd *cobra.Command) locg.CollectionType {
	if format, err := cmd.Flags().GetString("format"); err == nil && format != "" {
		return locg.CollectionType(format)
	}
	return locg.CollectionIssue
}

// addUserListFlags registers the flags shared by collection and wishlist.
func addUserListFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("user", "u", 0, "The numeric site ID for the user.")
	cmd.Flags().StringP("format", "f", string(locg.CollectionIssue), "The format to return results in (issue or series).")
	addListFlags(cmd)
}

// Init scripts.
func init() {
	addUserListFlags(collectionCmd)
	RootCmd.AddCommand(collectionCmd)
}
