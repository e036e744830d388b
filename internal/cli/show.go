package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a stored character",
		Run:   runShow,
	}

	cmd.Flags().StringP("id", "i", "", "Character ID (required)")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.GetCharacter(cmd.Context(), &characterService.GetCharacterInput{
		CharacterID: id,
	})
	if err != nil {
		exitErr("show", err)
	}

	printJSON(output.Character)
}
