package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a draft and its pending choices",
		Run:   runStatus,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")

	cmd.MarkFlagRequired("draft")

	RootCmd.AddCommand(cmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.GetDraft(cmd.Context(), &characterService.GetDraftInput{
		DraftID: draftID,
	})
	if err != nil {
		exitErr("status", err)
	}

	printJSON(output.Draft)
}
