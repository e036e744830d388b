package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "choose",
		Short: "Resolve a pending choice on a draft",
		Long: "Answers one pending choice. The type matches the choice as shown by\n" +
			"status (skill, language, personality_trait, ...). When two choices\n" +
			"share a type, --source names which grant's choice is being answered.\n" +
			"Repeat --select for choices that take several picks.",
		Run: runChoose,
	}

	cmd.Flags().StringP("draft", "d", "", "Draft ID (required)")
	cmd.Flags().StringP("type", "t", "", "Choice type (required)")
	cmd.Flags().String("source", "", "Source of the choice, e.g. \"Ranger Duty\"")
	cmd.Flags().StringArrayP("select", "s", nil, "Selection; repeat for multi-pick choices (required)")

	cmd.MarkFlagRequired("draft")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("select")

	RootCmd.AddCommand(cmd)
}

func runChoose(cmd *cobra.Command, args []string) {
	draftID, _ := cmd.Flags().GetString("draft")
	choiceType, _ := cmd.Flags().GetString("type")
	source, _ := cmd.Flags().GetString("source")
	selections, _ := cmd.Flags().GetStringArray("select")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.ResolveChoice(cmd.Context(), &characterService.ResolveChoiceInput{
		DraftID:    draftID,
		ChoiceType: character.ChoiceType(choiceType),
		Source:     source,
		Selections: selections,
	})
	if err != nil {
		exitErr("choose", err)
	}

	printJSON(output.Draft)
}
