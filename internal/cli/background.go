package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "background",
		Short: "Set a draft's background",
		Run:   runBackground,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")
	cmd.Flags().StringP("key", "k", "", "Background key, e.g. scholar or soldier (required)")

	cmd.MarkFlagRequired("draft")
	cmd.MarkFlagRequired("key")

	RootCmd.AddCommand(cmd)
}

func runBackground(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")
	key, _ := cmd.Flags().GetString("key")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.SetBackground(cmd.Context(), &characterService.SetBackgroundInput{
		DraftID:       draftID,
		BackgroundKey: key,
	})
	if err != nil {
		exitErr("background", err)
	}

	printJSON(output.Draft)
}
