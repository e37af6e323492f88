package textures

import (
	"encoding/base64"
	"strings"
)

const texturesHost = "textures.minecraft.net"

type Kind int

const (
	// Username of a player, resolved through the identity directory
	Username Kind = iota
	// TextureURL is a full link to the Mojang textures host
	TextureURL
	// ProfileValue is an already encoded textures property value
	ProfileValue
	// URLSuffix is a texture hash, or anything else, appended to the textures host base URL
	URLSuffix
)

func (k Kind) String() string {
	switch k {
	case Username:
		return "username"
	case TextureURL:
		return "texture_url"
	case ProfileValue:
		return "profile_value"
	case URLSuffix:
		return "url_suffix"
	}

	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Classify detects which kind of identifier the string is.
// The checks go from the most specific to the least one and the first match wins,
// so any string is classified and the fallback is URLSuffix.
func Classify(identifier string) Kind {
	if IsUsername(identifier) {
		return Username
	}

	if strings.Contains(identifier, texturesHost) {
		return TextureURL
	}

	if len(identifier) > 100 && isBase64(identifier) {
		return ProfileValue
	}

	return URLSuffix
}

// IsUsername matches the Minecraft username rules: 3-16 chars of latin letters, digits and underscore.
// See https://help.minecraft.net/hc/en-us/articles/360034636712
func IsUsername(name string) bool {
	if len(name) < 3 || len(name) > 16 {
		return false
	}

	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch != '_' && !(ch >= 'A' && ch <= 'Z') && !(ch >= 'a' && ch <= 'z') && !(ch >= '0' && ch <= '9') {
			return false
		}
	}

	return true
}

// Padding is optional, but line breaks aren't accepted even though base64.StdEncoding skips them
func isBase64(str string) bool {
	if strings.ContainsAny(str, "\r\n") {
		return false
	}

	encoding := base64.StdEncoding
	if len(str)%4 != 0 {
		encoding = base64.RawStdEncoding
	}

	_, err := encoding.DecodeString(str)

	return err == nil
}
