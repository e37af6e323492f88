package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"
	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
	"github.com/thedevsaddam/govalidator"

	"github.com/elyby/skulls/internal/db"
	"github.com/elyby/skulls/internal/textures"
)

var regexUuidAny = regexp.MustCompile("(?i)^[0-9a-f]{8}-?[0-9a-f]{4}-?[0-9a-f]{4}-?[0-9a-f]{4}-?[0-9a-f]{12}$")

func init() {
	// Add ability to validate any possible uuid form
	govalidator.AddCustomRule("uuid_any", func(field string, rule string, message string, value interface{}) error {
		str := value.(string)
		if !regexUuidAny.MatchString(str) {
			if message == "" {
				message = fmt.Sprintf("The %s field must contain valid UUID", field)
			}

			return errors.New(message)
		}

		return nil
	})

	govalidator.AddCustomRule("minecraft_username", func(field string, rule string, message string, value interface{}) error {
		str := value.(string)
		if !textures.IsUsername(str) {
			if message == "" {
				message = fmt.Sprintf("The %s field must contain 3 to 16 latin letters, digits or underscores", field)
			}

			return errors.New(message)
		}

		return nil
	})
}

type PlayersManager interface {
	PersistPlayer(ctx context.Context, player *db.Player) error
	RemovePlayerByUuid(ctx context.Context, uuid string) error
}

type Api struct {
	PlayersManager
	Logger slf.Logger
}

func (ctx *Api) Handler() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/players", ctx.postPlayerHandler).Methods(http.MethodPost)
	router.HandleFunc("/players/{uuid}", ctx.deletePlayerByUuidHandler).Methods(http.MethodDelete)

	return router
}

func (ctx *Api) postPlayerHandler(resp http.ResponseWriter, req *http.Request) {
	validationErrors := validatePostPlayerRequest(req)
	if validationErrors != nil {
		apiBadRequest(resp, validationErrors)
		return
	}

	err := ctx.PersistPlayer(req.Context(), &db.Player{
		Uuid:     req.Form.Get("uuid"),
		Username: req.Form.Get("username"),
	})
	if err != nil {
		ctx.Logger.Error("Unable to save the player: :err", wd.ErrParam(err))
		apiServerError(resp)
		return
	}

	resp.WriteHeader(http.StatusCreated)
}

func (ctx *Api) deletePlayerByUuidHandler(resp http.ResponseWriter, req *http.Request) {
	uuid := mux.Vars(req)["uuid"]
	if !regexUuidAny.MatchString(uuid) {
		apiBadRequest(resp, map[string][]string{
			"uuid": {"The uuid field must contain valid UUID"},
		})
		return
	}

	err := ctx.PlayersManager.RemovePlayerByUuid(req.Context(), uuid)
	if err != nil {
		ctx.Logger.Error("Unable to delete the player :uuid: :err", wd.StringParam("uuid", uuid), wd.ErrParam(err))
		apiServerError(resp)
		return
	}

	resp.WriteHeader(http.StatusNoContent)
}

func validatePostPlayerRequest(request *http.Request) map[string][]string {
	err := request.ParseForm()
	if err != nil {
		return map[string][]string{
			"body": {"The body of the request must be a valid url-encoded string"},
		}
	}

	validator := govalidator.New(govalidator.Options{
		Request: request,
		Rules: govalidator.MapData{
			"uuid":     {"required", "uuid_any"},
			"username": {"required", "minecraft_username"},
		},
		RequiredDefault: false,
	})
	validationResults := validator.Validate()
	if len(validationResults) != 0 {
		return validationResults
	}

	return nil
}
