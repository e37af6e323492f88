package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Version of the engine, e.g. 1.12.2. Only the minor part changes the engine's behavior.
type Version struct {
	Major int
	Minor int
	Patch int
}

func ParseVersion(str string) (Version, error) {
	var v Version
	parts := strings.Split(strings.TrimSpace(str), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return v, fmt.Errorf("invalid engine version %q", str)
	}

	dst := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("invalid engine version %q", str)
		}

		*dst[i] = n
	}

	return v, nil
}

// SupportsUuid reports whether skulls can be owned by a player identity instead of a bare name
func (v Version) SupportsUuid() bool {
	return v.Major > 1 || v.Minor >= 12
}

// SupportsProfileApi reports whether SkullMeta exposes PlayerProfile and SetPlayerProfile
func (v Version) SupportsProfileApi() bool {
	return v.Major > 1 || v.Minor >= 18
}

func (v Version) SupportsProfiles() bool {
	return v.Major > 1 || v.Minor >= 8
}

func (v Version) String() string {
	if v.Patch == 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}

	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
