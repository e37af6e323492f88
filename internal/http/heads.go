package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"

	"github.com/elyby/skulls/internal/game"
	"github.com/elyby/skulls/internal/textures"
)

type Resolver interface {
	ApplySkin(ctx context.Context, meta *game.SkullMeta, identifier string) (*game.SkullMeta, error)
	NewSkull(ctx context.Context, id uuid.UUID) (*game.ItemStack, error)
}

type Heads struct {
	Resolver
	Logger slf.Logger
}

func (ctx *Heads) Handler() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/heads", ctx.headHandler).Methods(http.MethodGet)
	router.HandleFunc("/heads/uuid/{uuid}", ctx.headByUuidHandler).Methods(http.MethodGet)
	router.HandleFunc("/textures/encode", ctx.encodeHandler).Methods(http.MethodGet)
	router.HandleFunc("/textures/classify", ctx.classifyHandler).Methods(http.MethodGet)

	return router
}

func (ctx *Heads) headHandler(resp http.ResponseWriter, req *http.Request) {
	identifier := req.URL.Query().Get("identifier")
	if identifier == "" {
		apiBadRequest(resp, map[string][]string{
			"identifier": {"The identifier field is required"},
		})
		return
	}

	head := game.NewItemStack(game.PlayerHead)
	meta, err := ctx.ApplySkin(req.Context(), head.ItemMeta().(*game.SkullMeta), identifier)
	if errors.Is(err, textures.ErrAttachmentUnsupported) {
		apiNotImplemented(resp, err.Error())
		return
	}

	if err != nil {
		ctx.Logger.Error("Unable to apply the skin :identifier: :err", wd.StringParam("identifier", identifier), wd.ErrParam(err))
		apiServerError(resp)
		return
	}

	head.SetItemMeta(meta)

	apiResponse(resp, http.StatusOK, newHeadResponse(head, textures.Classify(identifier)))
}

func (ctx *Heads) headByUuidHandler(resp http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(mux.Vars(req)["uuid"])
	if err != nil {
		apiBadRequest(resp, map[string][]string{
			"uuid": {"The uuid field must contain valid UUID"},
		})
		return
	}

	head, err := ctx.NewSkull(req.Context(), id)
	if err != nil {
		ctx.Logger.Error("Unable to create the skull of :uuid: :err", wd.StringParam("uuid", id.String()), wd.ErrParam(err))
		apiServerError(resp)
		return
	}

	apiResponse(resp, http.StatusOK, newHeadResponse(head, textures.Username))
}

func (ctx *Heads) encodeHandler(resp http.ResponseWriter, req *http.Request) {
	url := req.URL.Query().Get("url")
	if url == "" {
		apiBadRequest(resp, map[string][]string{
			"url": {"The url field is required"},
		})
		return
	}

	apiResponse(resp, http.StatusOK, map[string]string{
		"value": textures.EncodeProfileValue(url),
	})
}

func (ctx *Heads) classifyHandler(resp http.ResponseWriter, req *http.Request) {
	apiResponse(resp, http.StatusOK, map[string]textures.Kind{
		"kind": textures.Classify(req.URL.Query().Get("identifier")),
	})
}

type headResponse struct {
	Kind         textures.Kind         `json:"kind"`
	Material     game.Material         `json:"material"`
	Owner        string                `json:"owner,omitempty"`
	OwningPlayer *owningPlayerResponse `json:"owningPlayer,omitempty"`
	Profile      *profileResponse      `json:"profile,omitempty"`
}

type owningPlayerResponse struct {
	Uuid string `json:"uuid"`
	Name string `json:"name"`
}

type profileResponse struct {
	Id         string           `json:"id"`
	Name       string           `json:"name"`
	Properties []*game.Property `json:"properties"`
}

func newHeadResponse(head *game.ItemStack, kind textures.Kind) *headResponse {
	meta := head.ItemMeta().(*game.SkullMeta)
	result := &headResponse{
		Kind:     kind,
		Material: head.Material,
		Owner:    meta.Owner(),
	}

	if player := meta.OwningPlayer(); player != nil {
		result.OwningPlayer = &owningPlayerResponse{
			Uuid: player.Uuid.String(),
			Name: player.Name,
		}
	}

	if profile := meta.PlayerProfile(); profile != nil {
		result.Profile = &profileResponse{
			Id:         profile.Id.String(),
			Name:       profile.Name,
			Properties: []*game.Property{},
		}
		// Only the textures are rendered by the client
		result.Profile.Properties = append(result.Profile.Properties, profile.Get(game.TexturesProperty)...)
	}

	return result
}
