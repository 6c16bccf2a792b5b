package cmd

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/comiccruncher/locg/internal/log"
	"github.com/comiccruncher/locg/locg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the root command for the locg CLI.
var RootCmd = &cobra.Command{
	Use:   "locg",
	Short: "The command line client for League of Comic Geeks lists.",
}

// Exec executes the root command.
func Exec() {
	if err := RootCmd.Execute(); err != nil {
		log.CMD().Fatal("received execution error", zap.Error(err))
	}
}

// newAPI creates the client shared by the subcommands.
func newAPI(cmd *cobra.Command) *locg.API {
	client := &http.Client{Timeout: 30 * time.Second}
	if retries, err := cmd.Flags().GetUint("retries"); err == nil && retries > 0 {
		client.Transport = &locg.RetryRoundTripper{Attempts: retries, Delay: 5 * time.Second}
	}
	return locg.NewAPI(client)
}

// addListFlags registers the flags shared by the list-fetching subcommands.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("publisher", "p", nil, "Restrict results to the given publisher names or numeric IDs.")
	cmd.Flags().IntSlice("filter", nil, "Restrict results to the given format types (1=regular, 2=variant, 3=trade, 4=hardcover, 5=digital, 6=annual).")
	cmd.Flags().StringP("sort", "s", "", "Sort the results (pulls, potw, alpha-asc, alpha-desc, price-asc, price-desc, community).")
	cmd.Flags().Uint("retries", 0, "Retry connection errors this many times before giving up.")
}

// listOptions assembles the fetch options from the shared flags.
func listOptions(cmd *cobra.Command) *locg.FetchOptions {
	options := &locg.FetchOptions{}
	if publishers, err := cmd.Flags().GetStringSlice("publisher"); err == nil {
		for _, p := range publishers {
			if id, convErr := strconv.Atoi(p); convErr == nil {
				options.Publishers = append(options.Publishers, id)
			} else {
				options.Publishers = append(options.Publishers, p)
			}
		}
	}
	if filters, err := cmd.Flags().GetIntSlice("filter"); err == nil {
		for _, f := range filters {
			options.Filter = append(options.Filter, locg.FilterType(f))
		}
	}
	if sortValue, err := cmd.Flags().GetString("sort"); err == nil {
		options.Sort = locg.SortType(sortValue)
	}
	return options
}

// dateArg resolves the --date flag, defaulting to the current week.
func dateArg(cmd *cobra.Command) interface{} {
	if date, err := cmd.Flags().GetString("date"); err == nil && date != "" {
		return date
	}
	return time.Now()
}

// output prints the result as indented JSON to stdout.
func output(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		log.CMD().Fatal("cannot encode result", zap.Error(err))
	}
}
