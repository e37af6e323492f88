package game

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// OfflinePlayer is a player known to the server, whether online or not.
type OfflinePlayer struct {
	Uuid uuid.UUID
	Name string
}

// OfflineUuid returns the uuid the engine assigns to a player in offline mode.
// It's a name based (version 3) uuid of "OfflinePlayer:<name>" without a namespace.
func OfflineUuid(name string) uuid.UUID {
	id := uuid.UUID(md5.Sum([]byte("OfflinePlayer:" + name)))
	id[6] = (id[6] & 0x0f) | 0x30
	id[8] = (id[8] & 0x3f) | 0x80

	return id
}

func NewOfflinePlayer(name string) *OfflinePlayer {
	return &OfflinePlayer{
		Uuid: OfflineUuid(name),
		Name: name,
	}
}
