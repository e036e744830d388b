package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Set a draft's primary path",
		Long: "Picks the primary path. Paths gate on attribute prerequisites;\n" +
			"--ignore-prereqs overrides the gate for game master rulings.",
		Run: runPath,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")
	cmd.Flags().StringP("key", "k", "", "Path key, e.g. mystic or martial (required)")
	cmd.Flags().Bool("ignore-prereqs", false, "Skip the attribute prerequisite check")

	cmd.MarkFlagRequired("draft")
	cmd.MarkFlagRequired("key")

	RootCmd.AddCommand(cmd)
}

func runPath(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")
	key, _ := cmd.Flags().GetString("key")
	ignore, _ := cmd.Flags().GetBool("ignore-prereqs")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.SetPath(cmd.Context(), &characterService.SetPathInput{
		DraftID:             draftID,
		PathKey:             key,
		IgnorePrerequisites: ignore,
	})
	if err != nil {
		exitErr("path", err)
	}

	printJSON(output.Draft)
}
