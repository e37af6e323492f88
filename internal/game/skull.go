package game

import "github.com/google/uuid"

// SkullMeta is the metadata of a PLAYER_HEAD item.
//
// The profile field is the one the client renders the head from. Engines before 1.18 give no way to set it
// with custom properties, so it's only reachable through a ProfileAccessor.
type SkullMeta struct {
	owner        string
	owningPlayer *OfflinePlayer
	profile      *Profile
}

func (m *SkullMeta) Clone() ItemMeta {
	clone := *m
	if m.owningPlayer != nil {
		player := *m.owningPlayer
		clone.owningPlayer = &player
	}

	if m.profile != nil {
		clone.profile = m.profile.clone()
	}

	return &clone
}

func (m *SkullMeta) Owner() string {
	return m.owner
}

// SetOwner is the legacy way to own a skull by a player name
func (m *SkullMeta) SetOwner(name string) {
	m.owner = name
	m.owningPlayer = nil
	m.profile = NewProfile(uuid.Nil, name)
}

func (m *SkullMeta) OwningPlayer() *OfflinePlayer {
	return m.owningPlayer
}

func (m *SkullMeta) SetOwningPlayer(player *OfflinePlayer) {
	if player == nil {
		m.owner = ""
		m.owningPlayer = nil
		m.profile = nil
		return
	}

	m.owner = player.Name
	m.owningPlayer = player
	m.profile = NewProfile(player.Uuid, player.Name)
}

func (m *SkullMeta) HasOwner() bool {
	return m.owner != "" || m.owningPlayer != nil
}

func (p *Profile) clone() *Profile {
	clone := NewProfile(p.Id, p.Name)
	for name, props := range p.Properties {
		for _, prop := range props {
			propCopy := *prop
			clone.Properties[name] = append(clone.Properties[name], &propCopy)
		}
	}

	return clone
}

// PlayerProfile is the profile API added by the 1.18 engines
func (m *SkullMeta) PlayerProfile() *Profile {
	return m.profile
}

func (m *SkullMeta) SetPlayerProfile(profile *Profile) {
	m.profile = profile
	if profile != nil {
		m.owner = profile.Name
	}
}
