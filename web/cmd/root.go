package cmd

import (
	"github.com/comiccruncher/locg/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the root command for the web application.
var RootCmd = &cobra.Command{
	Use:   "web",
	Short: "The JSON API over the League of Comic Geeks lists.",
}

// Exec executes the root command.
func Exec() {
	if err := RootCmd.Execute(); err != nil {
		log.WEB().Fatal("received execution error", zap.Error(err))
	}
}
