package di

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/elyby/skulls/internal/dispatcher"
	"github.com/elyby/skulls/internal/game"
)

func TestNewGameVersion(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		v, err := newGameVersion(viper.New())
		require.NoError(t, err)
		require.Equal(t, game.Version{Major: 1, Minor: 20}, v)
	})

	t.Run("configured", func(t *testing.T) {
		config := viper.New()
		config.Set("game.version", "1.12.2")
		v, err := newGameVersion(config)
		require.NoError(t, err)
		require.Equal(t, game.Version{Major: 1, Minor: 12, Patch: 2}, v)
	})

	t.Run("invalid", func(t *testing.T) {
		config := viper.New()
		config.Set("game.version", "latest")
		_, err := newGameVersion(config)
		require.Error(t, err)
	})
}

func TestNewResolver(t *testing.T) {
	t.Run("engine with attachment point", func(t *testing.T) {
		resolver, err := newResolver(viper.New(), game.Version{Major: 1, Minor: 16}, nil, dispatcher.New())
		require.NoError(t, err)
		require.True(t, resolver.SupportsAttachment())
	})

	t.Run("engine without attachment point", func(t *testing.T) {
		d := dispatcher.New()
		var reportedErr error
		d.Subscribe("textures:writer_unavailable", func(version string, err error) {
			require.Equal(t, "1.7", version)
			reportedErr = err
		})

		resolver, err := newResolver(viper.New(), game.Version{Major: 1, Minor: 7}, nil, d)
		require.NoError(t, err)
		require.False(t, resolver.SupportsAttachment())
		require.ErrorIs(t, reportedErr, game.ErrNoAttachmentPoint)
	})

	t.Run("attachment is required", func(t *testing.T) {
		config := viper.New()
		config.Set("textures.require_attachment", true)
		_, err := newResolver(config, game.Version{Major: 1, Minor: 7}, nil, dispatcher.New())
		require.ErrorIs(t, err, game.ErrNoAttachmentPoint)
	})
}

func TestRecoverer(t *testing.T) {
	handler := recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("mock error"))
	}), wd.Custom("", "", &slf.Dispatcher{}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest("GET", "http://localhost/heads", nil))

	require.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestNewServer(t *testing.T) {
	config := viper.New()
	config.Set("server.port", 8080)

	server := newServer(serverParams{
		Config:  config,
		Handler: http.NotFoundHandler(),
		Logger:  wd.Custom("", "", &slf.Dispatcher{}),
	})

	require.Equal(t, ":8080", server.Addr)
	require.Equal(t, 1<<16, server.MaxHeaderBytes)
}
