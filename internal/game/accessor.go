package game

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var ErrNoAttachmentPoint = errors.New("skull metadata has no profile attachment point")

const profileFieldName = "profile"

// ProfileAccessor reads and writes the profile a skull is rendered from
type ProfileAccessor interface {
	WriteProfile(meta *SkullMeta, profile *Profile) error
	ReadProfile(meta *SkullMeta) (*Profile, error)
}

// NewProfileAccessor resolves the way to reach the skull's profile for the given engine version.
// It's meant to be called once on startup, the result is safe to share afterwards.
func NewProfileAccessor(v Version) (ProfileAccessor, error) {
	if !v.SupportsProfiles() {
		return nil, fmt.Errorf("engine %s: %w", v, ErrNoAttachmentPoint)
	}

	if v.SupportsProfileApi() {
		return &ApiAccessor{}, nil
	}

	return NewFieldAccessor()
}

// ApiAccessor uses the public profile API of the newer engines
type ApiAccessor struct{}

func (a *ApiAccessor) WriteProfile(meta *SkullMeta, profile *Profile) error {
	meta.SetPlayerProfile(profile)
	return nil
}

func (a *ApiAccessor) ReadProfile(meta *SkullMeta) (*Profile, error) {
	return meta.PlayerProfile(), nil
}

// FieldAccessor writes the unexported profile field directly
type FieldAccessor struct {
	index []int
}

func NewFieldAccessor() (*FieldAccessor, error) {
	return newFieldAccessor(reflect.TypeOf(SkullMeta{}), profileFieldName)
}

func newFieldAccessor(metaType reflect.Type, fieldName string) (*FieldAccessor, error) {
	field, ok := metaType.FieldByName(fieldName)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", metaType.Name(), fieldName, ErrNoAttachmentPoint)
	}

	if field.Type != reflect.TypeOf((*Profile)(nil)) {
		return nil, fmt.Errorf("%s.%s has type %s: %w", metaType.Name(), fieldName, field.Type, ErrNoAttachmentPoint)
	}

	return &FieldAccessor{index: field.Index}, nil
}

func (a *FieldAccessor) WriteProfile(meta *SkullMeta, profile *Profile) error {
	if meta == nil {
		return errors.New("nil skull metadata")
	}

	a.field(meta).Set(reflect.ValueOf(profile))

	return nil
}

func (a *FieldAccessor) ReadProfile(meta *SkullMeta) (*Profile, error) {
	if meta == nil {
		return nil, errors.New("nil skull metadata")
	}

	return a.field(meta).Interface().(*Profile), nil
}

// Unexported fields can't be set through reflect, so the field is re-addressed to drop the read-only flag
func (a *FieldAccessor) field(meta *SkullMeta) reflect.Value {
	v := reflect.ValueOf(meta).Elem().FieldByIndex(a.index)

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
