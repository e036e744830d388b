package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "abilities",
		Short: "Set a draft's ability scores",
		Long: "Records the six ability scores. The method names how they were\n" +
			"generated: manual (default), roll, point_buy, or standard_array.\n" +
			"Point buy and standard array are checked against their rules.",
		Run: runAbilities,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")
	cmd.Flags().Int("might", 0, "Might score (required)")
	cmd.Flags().Int("agility", 0, "Agility score (required)")
	cmd.Flags().Int("endurance", 0, "Endurance score (required)")
	cmd.Flags().Int("wisdom", 0, "Wisdom score (required)")
	cmd.Flags().Int("intellect", 0, "Intellect score (required)")
	cmd.Flags().Int("charisma", 0, "Charisma score (required)")
	cmd.Flags().StringP("method", "m", "", "Generation method: manual, roll, point_buy, standard_array")

	cmd.MarkFlagRequired("draft")
	cmd.MarkFlagRequired("might")
	cmd.MarkFlagRequired("agility")
	cmd.MarkFlagRequired("endurance")
	cmd.MarkFlagRequired("wisdom")
	cmd.MarkFlagRequired("intellect")
	cmd.MarkFlagRequired("charisma")

	RootCmd.AddCommand(cmd)
}

func runAbilities(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")
	method, _ := cmd.Flags().GetString("method")

	scores := map[shared.Attribute]int{}
	for attr, flag := range map[shared.Attribute]string{
		shared.AttributeMight:     "might",
		shared.AttributeAgility:   "agility",
		shared.AttributeEndurance: "endurance",
		shared.AttributeWisdom:    "wisdom",
		shared.AttributeIntellect: "intellect",
		shared.AttributeCharisma:  "charisma",
	} {
		scores[attr], _ = cmd.Flags().GetInt(flag)
	}

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.SetAbilityScores(cmd.Context(), &characterService.SetAbilityScoresInput{
		DraftID: draftID,
		Scores:  scores,
		Method:  method,
	})
	if err != nil {
		exitErr("abilities", err)
	}

	printJSON(output.Draft)
}
