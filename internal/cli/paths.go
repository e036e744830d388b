package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List paths and whether the draft qualifies",
		Long: "Lists every path with its attribute prerequisites and whether the\n" +
			"draft's current scores meet them. Run it after abilities to see\n" +
			"which paths are open before committing to one.",
		Run: runPaths,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")

	cmd.MarkFlagRequired("draft")

	RootCmd.AddCommand(cmd)
}

func runPaths(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.GetAvailablePaths(cmd.Context(), &characterService.GetAvailablePathsInput{
		DraftID: draftID,
	})
	if err != nil {
		exitErr("paths", err)
	}

	printJSON(output.Paths)
}
