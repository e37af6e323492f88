package di

import (
	"errors"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"github.com/elyby/skulls/internal/http"
	"github.com/elyby/skulls/internal/security"
)

var securityDiOptions = di.Options(
	di.Provide(newAuthenticator, di.As(new(http.Authenticator))),
)

func newAuthenticator(config *viper.Viper, emitter security.Emitter) (*security.Jwt, error) {
	key := config.GetString("skulls.secret")
	if key == "" {
		return nil, errors.New("skulls.secret must be set in order to use authenticator")
	}

	return security.NewJwt([]byte(key), emitter), nil
}
