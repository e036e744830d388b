package cli

import (
	"github.com/spf13/cobra"

	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an owner's characters or drafts",
		Run:   runList,
	}

	cmd.Flags().StringP("owner", "o", "", "Owner ID (required)")
	cmd.Flags().Bool("drafts", false, "List live drafts instead of stored characters")

	cmd.MarkFlagRequired("owner")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	owner, _ := cmd.Flags().GetString("owner")
	draftsOnly, _ := cmd.Flags().GetBool("drafts")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	if draftsOnly {
		output, listErr := provider.CharacterService.ListDrafts(cmd.Context(), &characterService.ListDraftsInput{
			OwnerID: owner,
		})
		if listErr != nil {
			exitErr("list", listErr)
		}
		printJSON(output.Drafts)
		return
	}

	output, err := provider.CharacterService.ListCharacters(cmd.Context(), &characterService.ListCharactersInput{
		OwnerID: owner,
	})
	if err != nil {
		exitErr("list", err)
	}
	printJSON(output.Characters)
}
