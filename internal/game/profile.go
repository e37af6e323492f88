package game

import (
	"fmt"

	"github.com/google/uuid"
)

const TexturesProperty = "textures"

// Profile is the engine's game profile: the identity a skull renders.
// Properties is a multimap, several values may be stored under the same name.
type Profile struct {
	Id         uuid.UUID
	Name       string
	Properties map[string][]*Property
}

func NewProfile(id uuid.UUID, name string) *Profile {
	return &Profile{
		Id:         id,
		Name:       name,
		Properties: make(map[string][]*Property),
	}
}

func (p *Profile) Put(prop *Property) {
	p.Properties[prop.Name] = append(p.Properties[prop.Name], prop)
}

func (p *Profile) Get(name string) []*Property {
	return p.Properties[name]
}

func (p *Profile) String() string {
	return fmt.Sprintf("Profile{Id:%s,Name:%s,Properties:%d}", p.Id, p.Name, len(p.Properties))
}

type Property struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}
