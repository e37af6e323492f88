package cmd

import (
	"strings"

	. "github.com/defval/di"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elyby/skulls/internal/di"
	"github.com/elyby/skulls/internal/version"
)

var RootCmd = &cobra.Command{
	Use:     "skulls",
	Short:   "Resolves player head textures from usernames, texture urls and profile values",
	Version: version.Version(),
}

func shouldGetContainer() *Container {
	container, err := di.New()
	if err != nil {
		panic(err)
	}

	return container
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
}
