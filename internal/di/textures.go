package di

import (
	"fmt"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"github.com/elyby/skulls/internal/game"
	"github.com/elyby/skulls/internal/http"
	"github.com/elyby/skulls/internal/textures"
)

var texturesDiOptions = di.Options(
	di.Provide(newGameVersion),
	di.Provide(newResolver, di.As(new(http.Resolver))),
)

func newGameVersion(config *viper.Viper) (game.Version, error) {
	config.SetDefault("game.version", "1.20")

	return game.ParseVersion(config.GetString("game.version"))
}

func newResolver(
	config *viper.Viper,
	version game.Version,
	directory textures.IdentityDirectory,
	emitter textures.Emitter,
) (*textures.Resolver, error) {
	config.SetDefault("textures.require_attachment", false)

	var writer textures.MetadataWriter
	accessor, err := game.NewProfileAccessor(version)
	if err != nil {
		if config.GetBool("textures.require_attachment") {
			return nil, fmt.Errorf("unable to resolve the skull profile attachment point: %w", err)
		}

		emitter.Emit("textures:writer_unavailable", version.String(), err)
	} else {
		writer = accessor
	}

	return textures.NewResolver(directory, writer, version, emitter), nil
}
