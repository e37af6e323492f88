package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elyby/skulls/internal/game"
	"github.com/elyby/skulls/internal/textures"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <identifier>",
	Short: "Shows how the identifier is understood and the textures value it's turned into",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := args[0]
		kind := textures.Classify(identifier)
		fmt.Printf("Kind:  %s\n", kind)

		var value string
		switch kind {
		case textures.Username:
			// Registered players may have another uuid, only the directory knows it
			fmt.Printf("Offline UUID: %s\n", game.OfflineUuid(identifier))
			return nil
		case textures.TextureURL:
			value = textures.EncodeProfileValue(textures.BuildDescriptorURL(identifier, true))
		case textures.ProfileValue:
			value = identifier
		default:
			value = textures.EncodeProfileValue(textures.BuildDescriptorURL(identifier, false))
		}

		fmt.Printf("Value: %s\n", value)

		descriptor, err := textures.DecodeProfileValue(value)
		if err != nil {
			return fmt.Errorf("the value can't be decoded: %w", err)
		}

		if descriptor.Textures != nil && descriptor.Textures.Skin != nil {
			fmt.Printf("Skin:  %s\n", descriptor.Textures.Skin.Url)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)
}
