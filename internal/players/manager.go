package players

import (
	"context"
	"strings"

	"github.com/elyby/skulls/internal/db"
)

type PlayersRepository interface {
	SavePlayer(ctx context.Context, player *db.Player) error
	RemovePlayerByUuid(ctx context.Context, uuid string) error
}

func NewManager(pr PlayersRepository) *Manager {
	return &Manager{
		PlayersRepository: pr,
	}
}

type Manager struct {
	PlayersRepository
}

func (m *Manager) PersistPlayer(ctx context.Context, player *db.Player) error {
	player.Uuid = cleanupUuid(player.Uuid)

	return m.PlayersRepository.SavePlayer(ctx, player)
}

func (m *Manager) RemovePlayerByUuid(ctx context.Context, uuid string) error {
	return m.PlayersRepository.RemovePlayerByUuid(ctx, cleanupUuid(uuid))
}

func cleanupUuid(uuid string) string {
	return strings.ReplaceAll(strings.ToLower(uuid), "-", "")
}
