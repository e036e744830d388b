package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "profession",
		Short: "Set a draft's profession",
		Long: "Picks a profession. Professions with duties, like warrior, require\n" +
			"--duty; the duty layers its grants on the profession's.",
		Run: runProfession,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")
	cmd.Flags().StringP("key", "k", "", "Profession key, e.g. scholar or warrior (required)")
	cmd.Flags().String("duty", "", "Duty key for professions that require one")

	cmd.MarkFlagRequired("draft")
	cmd.MarkFlagRequired("key")

	RootCmd.AddCommand(cmd)
}

func runProfession(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")
	key, _ := cmd.Flags().GetString("key")
	duty, _ := cmd.Flags().GetString("duty")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.SetProfession(cmd.Context(), &characterService.SetProfessionInput{
		DraftID:       draftID,
		ProfessionKey: key,
		DutyKey:       duty,
	})
	if err != nil {
		exitErr("profession", err)
	}

	printJSON(output.Draft)
}
