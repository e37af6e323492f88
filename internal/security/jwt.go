package security

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/SermoDigital/jose/crypto"
	"github.com/SermoDigital/jose/jws"
)

var now = time.Now
var hashAlg = crypto.SigningMethodHS256

const scopesClaim = "scopes"

type Scope string

const (
	PlayersScope Scope = "players"
)

var validScopes = []Scope{
	PlayersScope,
}

type Emitter interface {
	Emit(topic string, args ...interface{})
}

func NewJwt(key []byte, emitter Emitter) *Jwt {
	return &Jwt{
		Emitter: emitter,
		Key:     key,
	}
}

type Jwt struct {
	Emitter
	Key []byte
}

func (t *Jwt) NewToken(scopes ...Scope) ([]byte, error) {
	if len(t.Key) == 0 {
		return nil, errors.New("signing key not available")
	}

	if len(scopes) == 0 {
		return nil, errors.New("you must specify at least one scope")
	}

	for _, scope := range scopes {
		if !slices.Contains(validScopes, scope) {
			return nil, fmt.Errorf("unknown scope %s", scope)
		}
	}

	claims := jws.Claims{}
	claims.Set(scopesClaim, scopes)
	claims.SetIssuedAt(now())
	encoder := jws.NewJWT(claims, hashAlg)

	return encoder.Serialize(t.Key)
}

var MissingAuthenticationError = errors.New("authentication value not provided")
var InvalidTokenError = errors.New("passed authentication value is invalid")
var MissingScopeError = errors.New("the token doesn't have the scope to perform the action")

func (t *Jwt) Authenticate(req *http.Request, scope Scope) error {
	if len(t.Key) == 0 {
		return t.emitErr(errors.New("signing key not set"))
	}

	bearerToken := req.Header.Get("Authorization")
	if bearerToken == "" {
		return t.emitErr(MissingAuthenticationError)
	}

	if !strings.HasPrefix(strings.ToLower(bearerToken), "bearer ") {
		return t.emitErr(InvalidTokenError)
	}

	tokenStr := bearerToken[7:] // trim "bearer " part
	token, err := jws.ParseJWT([]byte(tokenStr))
	if err != nil {
		return t.emitErr(errors.Join(InvalidTokenError, err))
	}

	err = token.Validate(t.Key, hashAlg)
	if err != nil {
		return t.emitErr(errors.Join(InvalidTokenError, err))
	}

	if !hasScope(token.Claims().Get(scopesClaim), scope) {
		return t.emitErr(MissingScopeError)
	}

	t.Emit("authentication:success")

	return nil
}

func (t *Jwt) emitErr(err error) error {
	t.Emit("authentication:error", err)
	return err
}

// After decoding, the claim is a list of arbitrary JSON values
func hasScope(claim interface{}, scope Scope) bool {
	scopes, ok := claim.([]interface{})
	if !ok {
		return false
	}

	for _, s := range scopes {
		if str, ok := s.(string); ok && Scope(str) == scope {
			return true
		}
	}

	return false
}
