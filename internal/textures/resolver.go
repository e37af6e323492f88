package textures

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/elyby/skulls/internal/game"
)

var (
	ErrAttachmentUnsupported = errors.New("the engine provides no way to attach a profile to skull metadata")
	ErrEmptyProfileValue     = errors.New("skull value cannot be empty")
)

type IdentityDirectory interface {
	GetOfflinePlayer(ctx context.Context, name string) (*game.OfflinePlayer, error)
	GetOfflinePlayerByUuid(ctx context.Context, id uuid.UUID) (*game.OfflinePlayer, error)
}

// MetadataWriter is the engine specific way to reach the profile of a skull
type MetadataWriter interface {
	WriteProfile(meta *game.SkullMeta, profile *game.Profile) error
	ReadProfile(meta *game.SkullMeta) (*game.Profile, error)
}

type Emitter interface {
	Emit(topic string, args ...interface{})
}

// NewResolver accepts a nil writer: it means the engine has no attachment point
// and every profile based skin will fail with ErrAttachmentUnsupported.
func NewResolver(
	directory IdentityDirectory,
	writer MetadataWriter,
	version game.Version,
	emitter Emitter,
) *Resolver {
	return &Resolver{
		IdentityDirectory: directory,
		Emitter:           emitter,
		writer:            writer,
		supportsUuid:      version.SupportsUuid(),
	}
}

type Resolver struct {
	IdentityDirectory
	Emitter

	writer       MetadataWriter
	supportsUuid bool
}

type SkinValue struct {
	Value     string
	ProfileId uuid.UUID
}

func (r *Resolver) SupportsAttachment() bool {
	return r.writer != nil
}

// ApplySkin sets the skull's skin from any supported identifier. See Classify for the accepted forms.
// On failure the metadata is returned as it was before the call.
func (r *Resolver) ApplySkin(ctx context.Context, meta *game.SkullMeta, identifier string) (*game.SkullMeta, error) {
	kind := Classify(identifier)
	r.Emit("textures:classified", identifier, kind)

	switch kind {
	case Username:
		player, err := r.IdentityDirectory.GetOfflinePlayer(ctx, identifier)
		if err != nil {
			return meta, err
		}

		return r.ApplySkinIdentity(meta, player), nil
	case TextureURL:
		return r.ApplyProfileValue(meta, EncodeProfileValue(BuildDescriptorURL(identifier, true)))
	case ProfileValue:
		return r.ApplyProfileValue(meta, identifier)
	default:
		return r.ApplyProfileValue(meta, EncodeProfileValue(BuildDescriptorURL(identifier, false)))
	}
}

// ApplySkinIdentity makes the player the owner of the skull.
// Engines before 1.12 only know the owner's name.
func (r *Resolver) ApplySkinIdentity(meta *game.SkullMeta, player *game.OfflinePlayer) *game.SkullMeta {
	if r.supportsUuid {
		meta.SetOwningPlayer(player)
	} else {
		meta.SetOwner(player.Name)
	}

	return meta
}

func (r *Resolver) ApplySkinUuid(ctx context.Context, meta *game.SkullMeta, id uuid.UUID) (*game.SkullMeta, error) {
	player, err := r.IdentityDirectory.GetOfflinePlayerByUuid(ctx, id)
	if err != nil {
		return meta, err
	}

	return r.ApplySkinIdentity(meta, player), nil
}

// ApplyProfileValue attaches a new anonymous profile carrying the textures value
func (r *Resolver) ApplyProfileValue(meta *game.SkullMeta, value string) (*game.SkullMeta, error) {
	if value == "" {
		return meta, ErrEmptyProfileValue
	}

	if r.writer == nil {
		r.Emit("textures:apply_failed", value, ErrAttachmentUnsupported)
		return meta, ErrAttachmentUnsupported
	}

	profile := game.NewProfile(uuid.New(), "")
	profile.Put(&game.Property{
		Name:  game.TexturesProperty,
		Value: value,
	})

	err := r.writer.WriteProfile(meta, profile)
	if err != nil {
		err = fmt.Errorf("unable to attach the profile: %w", err)
		r.Emit("textures:apply_failed", value, err)

		return meta, err
	}

	return meta, nil
}

// NewSkull creates a head owned by the player with the given uuid
func (r *Resolver) NewSkull(ctx context.Context, id uuid.UUID) (*game.ItemStack, error) {
	head := game.NewItemStack(game.PlayerHead)
	meta := head.ItemMeta().(*game.SkullMeta)
	if r.supportsUuid {
		player, err := r.IdentityDirectory.GetOfflinePlayerByUuid(ctx, id)
		if err != nil {
			return nil, err
		}

		meta.SetOwningPlayer(player)
	} else {
		meta.SetOwner(id.String())
	}

	head.SetItemMeta(meta)

	return head, nil
}

// GetSkinValue returns the first non-empty textures value of the skull's profile
// or nil if there is nothing attached
func (r *Resolver) GetSkinValue(meta *game.SkullMeta) (*SkinValue, error) {
	if r.writer == nil {
		return nil, ErrAttachmentUnsupported
	}

	profile, err := r.writer.ReadProfile(meta)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		return nil, nil
	}

	for _, prop := range profile.Get(game.TexturesProperty) {
		if prop.Value != "" {
			return &SkinValue{
				Value:     prop.Value,
				ProfileId: profile.Id,
			}, nil
		}
	}

	return nil, nil
}
