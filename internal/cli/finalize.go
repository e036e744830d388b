package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "finalize",
		Short: "Finalize a draft into a stored character",
		Long: "Validates that every step is done and every choice resolved, then\n" +
			"stores the finished character and removes the draft. The printed\n" +
			"character ID names the character for show, levelup, and xp.",
		Run: runFinalize,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")

	cmd.MarkFlagRequired("draft")

	RootCmd.AddCommand(cmd)
}

func runFinalize(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.FinalizeDraft(cmd.Context(), &characterService.FinalizeDraftInput{
		DraftID: draftID,
	})
	if err != nil {
		exitErr("finalize", err)
	}

	printJSON(output.Character)
}
