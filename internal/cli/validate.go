package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a stored character against the rules",
		Long:  "Runs the full rules validation and prints every error and warning found.",
		Run:   runValidate,
	}

	cmd.Flags().StringP("id", "i", "", "Character ID (required)")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.ValidateCharacter(cmd.Context(), &characterService.ValidateCharacterInput{
		CharacterID: id,
	})
	if err != nil {
		exitErr("validate", err)
	}

	printJSON(output.Result)
}
