package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ancestry",
		Short: "Set a draft's ancestry",
		Long:  "Picks an ancestry of the draft's race. The race step must already be done.",
		Run:   runAncestry,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")
	cmd.Flags().StringP("key", "k", "", "Ancestry key, e.g. sylari (required)")

	cmd.MarkFlagRequired("draft")
	cmd.MarkFlagRequired("key")

	RootCmd.AddCommand(cmd)
}

func runAncestry(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")
	key, _ := cmd.Flags().GetString("key")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.SetAncestry(cmd.Context(), &characterService.SetAncestryInput{
		DraftID:     draftID,
		AncestryKey: key,
	})
	if err != nil {
		exitErr("ancestry", err)
	}

	printJSON(output.Draft)
}
