package cmd

import (
	"github.com/comiccruncher/locg/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The wishlist command.
var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Fetches a user's wish list, in either issue or series format.",
	Run: func(cmd *cobra.Command, args []string) {
		userID, err := cmd.Flags().GetInt("user")
		if err != nil || userID <= 0 {
			log.CMD().Fatal("a positive --user ID is required")
		}
		comics, err := newAPI(cmd).FetchWishList(userID, formatArg(cmd), listOptions(cmd))
		if err != nil {
			log.CMD().Fatal("cannot fetch wish list", zap.Error(err))
		}
		output(comics)
	},
}

// Init scripts.
func init() {
	addUserListFlags(wishlistCmd)
	RootCmd.AddCommand(wishlistCmd)
}
