package redis

import (
	"context"
	"strings"

	"github.com/mediocregopher/radix/v4"

	"github.com/elyby/skulls/internal/db"
)

const usernameToUuidKey = "hash:username-to-uuid"
const uuidToUsernameKey = "hash:uuid-to-username"

type Redis struct {
	client radix.Client
}

func New(ctx context.Context, addr string, poolSize int) (*Redis, error) {
	client, err := (radix.PoolConfig{Size: poolSize}).New(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Redis{
		client: client,
	}, nil
}

func (r *Redis) FindPlayerByUsername(ctx context.Context, username string) (*db.Player, error) {
	var player *db.Player
	err := r.client.Do(ctx, radix.WithConn("", func(ctx context.Context, conn radix.Conn) error {
		var err error
		player, err = r.findPlayerByUsername(ctx, conn, username)

		return err
	}))

	return player, err
}

func (r *Redis) findPlayerByUsername(ctx context.Context, conn radix.Conn, username string) (*db.Player, error) {
	var uuid string
	err := conn.Do(ctx, radix.Cmd(&uuid, "HGET", usernameToUuidKey, usernameHashKey(username)))
	if err != nil {
		return nil, err
	}

	if uuid == "" {
		return nil, nil
	}

	return r.findPlayerByUuid(ctx, conn, uuid)
}

func (r *Redis) FindPlayerByUuid(ctx context.Context, uuid string) (*db.Player, error) {
	var player *db.Player
	err := r.client.Do(ctx, radix.WithConn("", func(ctx context.Context, conn radix.Conn) error {
		var err error
		player, err = r.findPlayerByUuid(ctx, conn, normalizeUuid(uuid))

		return err
	}))

	return player, err
}

func (r *Redis) findPlayerByUuid(ctx context.Context, conn radix.Conn, uuid string) (*db.Player, error) {
	username, err := r.findUsernameByUuid(ctx, conn, uuid)
	if err != nil {
		return nil, err
	}

	if username == "" {
		return nil, nil
	}

	return &db.Player{
		Uuid:     uuid,
		Username: username,
	}, nil
}

func (r *Redis) findUsernameByUuid(ctx context.Context, conn radix.Conn, uuid string) (string, error) {
	var username string
	return username, conn.Do(ctx, radix.FlatCmd(&username, "HGET", uuidToUsernameKey, uuid))
}

func (r *Redis) SavePlayer(ctx context.Context, player *db.Player) error {
	return r.client.Do(ctx, radix.WithConn("", func(ctx context.Context, conn radix.Conn) error {
		return r.savePlayer(ctx, conn, player)
	}))
}

func (r *Redis) savePlayer(ctx context.Context, conn radix.Conn, player *db.Player) error {
	uuid := normalizeUuid(player.Uuid)
	existsUsername, err := r.findUsernameByUuid(ctx, conn, uuid)
	if err != nil {
		return err
	}

	err = conn.Do(ctx, radix.Cmd(nil, "MULTI"))
	if err != nil {
		return err
	}

	// If the player has changed the username, then the old username must be released
	if existsUsername != "" && usernameHashKey(existsUsername) != usernameHashKey(player.Username) {
		err = conn.Do(ctx, radix.Cmd(nil, "HDEL", usernameToUuidKey, usernameHashKey(existsUsername)))
		if err != nil {
			return err
		}
	}

	err = conn.Do(ctx, radix.FlatCmd(nil, "HSET", uuidToUsernameKey, uuid, player.Username))
	if err != nil {
		return err
	}

	err = conn.Do(ctx, radix.FlatCmd(nil, "HSET", usernameToUuidKey, usernameHashKey(player.Username), uuid))
	if err != nil {
		return err
	}

	return conn.Do(ctx, radix.Cmd(nil, "EXEC"))
}

func (r *Redis) RemovePlayerByUuid(ctx context.Context, uuid string) error {
	return r.client.Do(ctx, radix.WithConn("", func(ctx context.Context, conn radix.Conn) error {
		return r.removePlayerByUuid(ctx, conn, normalizeUuid(uuid))
	}))
}

func (r *Redis) removePlayerByUuid(ctx context.Context, conn radix.Conn, uuid string) error {
	username, err := r.findUsernameByUuid(ctx, conn, uuid)
	if err != nil {
		return err
	}

	err = conn.Do(ctx, radix.Cmd(nil, "MULTI"))
	if err != nil {
		return err
	}

	err = conn.Do(ctx, radix.FlatCmd(nil, "HDEL", uuidToUsernameKey, uuid))
	if err != nil {
		return err
	}

	if username != "" {
		err = conn.Do(ctx, radix.Cmd(nil, "HDEL", usernameToUuidKey, usernameHashKey(username)))
		if err != nil {
			return err
		}
	}

	return conn.Do(ctx, radix.Cmd(nil, "EXEC"))
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Do(ctx, radix.Cmd(nil, "PING"))
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func normalizeUuid(uuid string) string {
	return strings.ToLower(strings.ReplaceAll(uuid, "-", ""))
}

func usernameHashKey(username string) string {
	return strings.ToLower(username)
}
