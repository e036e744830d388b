package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/realm-forge/internal/errors"
	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a stored character or abandon a draft",
		Run:   runDelete,
	}

	cmd.Flags().StringP("id", "i", "", "Character ID")
	cmd.Flags().StringP("draft", "d", "", "Draft ID")

	RootCmd.AddCommand(cmd)
}

func runDelete(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	draftID, _ := cmd.Flags().GetString("draft")

	if (id == "") == (draftID == "") {
		exitErr("delete", errors.InvalidArgument("exactly one of --id or --draft is required"))
	}

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	if draftID != "" {
		if _, err := provider.CharacterService.DeleteDraft(cmd.Context(), &characterService.DeleteDraftInput{
			DraftID: draftID,
		}); err != nil {
			exitErr("delete", err)
		}
		printJSON(map[string]string{"deleted": draftID})
		return
	}

	if _, err := provider.CharacterService.DeleteCharacter(cmd.Context(), &characterService.DeleteCharacterInput{
		CharacterID: id,
	}); err != nil {
		exitErr("delete", err)
	}
	printJSON(map[string]string{"deleted": id})
}
