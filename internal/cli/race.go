package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Set a draft's race",
		Run:   runRace,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")
	cmd.Flags().StringP("key", "k", "", "Race key, e.g. human or elf (required)")

	cmd.MarkFlagRequired("draft")
	cmd.MarkFlagRequired("key")

	RootCmd.AddCommand(cmd)
}

func runRace(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")
	key, _ := cmd.Flags().GetString("key")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.SetRace(cmd.Context(), &characterService.SetRaceInput{
		DraftID: draftID,
		RaceKey: key,
	})
	if err != nil {
		exitErr("race", err)
	}

	printJSON(output.Draft)
}
