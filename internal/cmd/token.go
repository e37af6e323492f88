package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elyby/skulls/internal/security"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Creates a new token, which allows to manage players through the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		container := shouldGetContainer()
		var auth *security.Jwt
		err := container.Resolve(&auth)
		if err != nil {
			return err
		}

		token, err := auth.NewToken(security.PlayersScope)
		if err != nil {
			return fmt.Errorf("unable to create a new token: %w", err)
		}

		fmt.Println(string(token))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(tokenCmd)
}
