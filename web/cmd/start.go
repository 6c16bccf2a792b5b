package cmd

import (
	"net/http"
	"time"

	"github.com/comiccruncher/locg/internal/log"
	"github.com/comiccruncher/locg/locg"
	"github.com/comiccruncher/locg/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The start command.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "The command for starting the web application.",
	Run: func(cmd *cobra.Command, args []string) {
		client := &http.Client{Timeout: 30 * time.Second}
		if retries, err := cmd.Flags().GetUint("retries"); err == nil && retries > 0 {
			client.Transport = &locg.RetryRoundTripper{Attempts: retries, Delay: 5 * time.Second}
		}
		app := web.NewApp(locg.NewAPI(client))
		port := cmd.Flag("port")
		if err := app.Run(port.Value.String()); err != nil {
			log.WEB().Fatal("error starting web service. closed it.", zap.Error(err), zap.Error(app.Close()))
		}
	},
}

// Init scripts.
func init() {
	startCmd.Flags().IntP("port", "p", 8001, "Choose the port to start the web application on.")
	startCmd.Flags().Uint("retries", 0, "Retry upstream connection errors this many times before giving up.")
	RootCmd.AddCommand(startCmd)
}
