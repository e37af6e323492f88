package textures

import (
	"encoding/base64"
	"encoding/json"
)

const TexturesBaseURL = "https://" + texturesHost + "/texture/"

const (
	valuePrefix = `{"textures":{"SKIN":{"url":"`
	valueSuffix = `"}}}`
)

func BuildDescriptorURL(suffixOrFullURL string, isFullURL bool) string {
	if isFullURL {
		return suffixOrFullURL
	}

	return TexturesBaseURL + suffixOrFullURL
}

// EncodeProfileValue wraps the skin url into the textures descriptor and encodes it into the property value.
// The url is put into the JSON as is: it's never escaped, so it must not contain quotes or backslashes.
func EncodeProfileValue(url string) string {
	return base64.StdEncoding.EncodeToString([]byte(valuePrefix + url + valueSuffix))
}

type TextureDescriptor struct {
	Textures *DescriptorTextures `json:"textures"`
}

type DescriptorTextures struct {
	Skin *DescriptorSkin `json:"SKIN,omitempty"`
}

type DescriptorSkin struct {
	Url string `json:"url"`
}

func DecodeProfileValue(value string) (*TextureDescriptor, error) {
	jsonStr, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}

	var result *TextureDescriptor
	err = json.Unmarshal(jsonStr, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}
