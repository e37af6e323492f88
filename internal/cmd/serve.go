package cmd

import (
	"github.com/spf13/cobra"

	"github.com/elyby/skulls/internal/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts HTTP handler for the heads resolver",
	RunE: func(cmd *cobra.Command, args []string) error {
		return shouldGetContainer().Invoke(http.StartServer)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
