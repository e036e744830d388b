package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "xp",
		Short: "Award experience or show the XP standing",
		Long: "With --award, adds experience and reports how many level ups are now\n" +
			"pending. Without it, shows the character's standing on the XP track.",
		Run: runXP,
	}

	cmd.Flags().StringP("id", "i", "", "Character ID (required)")
	cmd.Flags().IntP("award", "a", 0, "Experience points to add")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runXP(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	award, _ := cmd.Flags().GetInt("award")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	if award > 0 {
		output, awardErr := provider.CharacterService.AwardExperience(cmd.Context(), &characterService.AwardExperienceInput{
			CharacterID: id,
			XP:          award,
		})
		if awardErr != nil {
			exitErr("xp", awardErr)
		}
		printJSON(output)
		return
	}

	output, err := provider.CharacterService.GetLevelSummary(cmd.Context(), &characterService.GetLevelSummaryInput{
		CharacterID: id,
	})
	if err != nil {
		exitErr("xp", err)
	}
	printJSON(output.Summary)
}
