package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a character draft",
		Long:  "Opens a draft at the ability score step. The draft ID printed here names the draft for every later step.",
		Run:   runCreate,
	}

	cmd.Flags().StringP("owner", "o", "", "Owner ID (required)")
	cmd.Flags().StringP("name", "n", "", "Character name")

	cmd.MarkFlagRequired("owner")

	RootCmd.AddCommand(cmd)
}

func runCreate(cmd *cobra.Command, args []string) {
	owner, _ := cmd.Flags().GetString("owner")
	name, _ := cmd.Flags().GetString("name")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	output, err := provider.CharacterService.StartDraft(cmd.Context(), &characterService.StartDraftInput{
		OwnerID: owner,
		Name:    name,
	})
	if err != nil {
		exitErr("create", err)
	}

	printJSON(output.Draft)
}
