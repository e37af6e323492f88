package players

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/elyby/skulls/internal/db"
	"github.com/elyby/skulls/internal/game"
)

type PlayersFinder interface {
	FindPlayerByUsername(ctx context.Context, username string) (*db.Player, error)
	FindPlayerByUuid(ctx context.Context, uuid string) (*db.Player, error)
}

func NewDirectory(finder PlayersFinder) *Directory {
	return &Directory{
		PlayersFinder: finder,
	}
}

// Directory resolves players the way the server does for offline players:
// a known player is returned as stored, an unknown one gets the offline identity.
type Directory struct {
	PlayersFinder
}

func (d *Directory) GetOfflinePlayer(ctx context.Context, name string) (*game.OfflinePlayer, error) {
	player, err := d.PlayersFinder.FindPlayerByUsername(ctx, name)
	if err != nil {
		return nil, err
	}

	if player == nil {
		return game.NewOfflinePlayer(name), nil
	}

	return toOfflinePlayer(player)
}

func (d *Directory) GetOfflinePlayerByUuid(ctx context.Context, id uuid.UUID) (*game.OfflinePlayer, error) {
	player, err := d.PlayersFinder.FindPlayerByUuid(ctx, cleanupUuid(id.String()))
	if err != nil {
		return nil, err
	}

	// The server doesn't know the name of a player who has never joined
	if player == nil {
		return &game.OfflinePlayer{Uuid: id}, nil
	}

	return toOfflinePlayer(player)
}

func toOfflinePlayer(player *db.Player) (*game.OfflinePlayer, error) {
	id, err := uuid.Parse(player.Uuid)
	if err != nil {
		return nil, fmt.Errorf("stored player %s has invalid uuid: %w", player.Username, err)
	}

	return &game.OfflinePlayer{
		Uuid: id,
		Name: player.Username,
	}, nil
}
