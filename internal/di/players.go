package di

import (
	"github.com/defval/di"

	"github.com/elyby/skulls/internal/http"
	"github.com/elyby/skulls/internal/players"
	"github.com/elyby/skulls/internal/textures"
)

var playersDiOptions = di.Options(
	di.Provide(newPlayersDirectory, di.As(new(textures.IdentityDirectory))),
	di.Provide(newPlayersManager, di.As(new(http.PlayersManager))),
)

func newPlayersDirectory(finder players.PlayersFinder) *players.Directory {
	return players.NewDirectory(finder)
}

func newPlayersManager(repository players.PlayersRepository) *players.Manager {
	return players.NewManager(repository)
}
