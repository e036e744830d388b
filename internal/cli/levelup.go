package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/realm-forge/internal/advancement"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
)

func init() {
	cmd := &cobra.Command{
		Use:   "levelup",
		Short: "Level a character up",
		Long: "Takes the next level in one batch: talent purchases, advancement\n" +
			"point purchases, the ability increase at levels that grant one, and\n" +
			"the hit die roll. --options previews the level's budgets without\n" +
			"applying anything. --request takes a full JSON request for cases the\n" +
			"flags do not cover (talent sub-choices); it overrides the other flags.",
		Run: runLevelUp,
	}

	cmd.Flags().StringP("id", "i", "", "Character ID (required)")
	cmd.Flags().Int("target-level", 0, "Level to take (default: current + 1)")
	cmd.Flags().Int("hp-roll", 0, "Hit die result; 0 rolls the die")
	cmd.Flags().StringArray("talent", nil, "Talent purchase as key=rank; repeatable")
	cmd.Flags().StringArray("advance", nil, "Advancement purchase as type=target, e.g. skill_rank=Arcana; repeatable")
	cmd.Flags().StringArray("increase", nil, "Ability increase as attribute=points, e.g. might=2; repeatable")
	cmd.Flags().Bool("options", false, "Show the level's budgets and grants instead of applying")
	cmd.Flags().String("request", "", "Full JSON level up request; overrides the purchase flags")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runLevelUp(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	targetLevel, _ := cmd.Flags().GetInt("target-level")
	hpRoll, _ := cmd.Flags().GetInt("hp-roll")
	talentFlags, _ := cmd.Flags().GetStringArray("talent")
	advanceFlags, _ := cmd.Flags().GetStringArray("advance")
	increaseFlags, _ := cmd.Flags().GetStringArray("increase")
	showOptions, _ := cmd.Flags().GetBool("options")
	requestJSON, _ := cmd.Flags().GetString("request")

	provider, cleanup, err := openProvider()
	if err != nil {
		exitErr("open storage", err)
	}
	defer cleanup()

	if showOptions {
		output, optErr := provider.CharacterService.GetLevelUpOptions(cmd.Context(), &characterService.GetLevelUpOptionsInput{
			CharacterID: id,
			TargetLevel: targetLevel,
		})
		if optErr != nil {
			exitErr("levelup", optErr)
		}
		printJSON(output.Options)
		return
	}

	request := &advancement.LevelUpInput{
		TargetLevel: targetLevel,
		HPRoll:      hpRoll,
	}
	if requestJSON != "" {
		request = &advancement.LevelUpInput{}
		if jsonErr := json.Unmarshal([]byte(requestJSON), request); jsonErr != nil {
			exitErr("levelup", fmt.Errorf("parse --request: %w", jsonErr))
		}
	} else {
		if request.Talents, err = parseTalentFlags(talentFlags); err != nil {
			exitErr("levelup", err)
		}
		if request.Advancements, err = parseAdvanceFlags(advanceFlags); err != nil {
			exitErr("levelup", err)
		}
		if request.AbilityIncrease, err = parseIncreaseFlags(increaseFlags); err != nil {
			exitErr("levelup", err)
		}
	}

	output, err := provider.CharacterService.LevelUp(cmd.Context(), &characterService.LevelUpInput{
		CharacterID: id,
		Request:     request,
	})
	if err != nil {
		exitErr("levelup", err)
	}

	printJSON(output.Result)
}

// parseTalentFlags turns key=rank pairs into purchases. A bare key buys
// rank 1.
func parseTalentFlags(flags []string) ([]advancement.TalentPurchase, error) {
	var purchases []advancement.TalentPurchase
	for _, f := range flags {
		key, rankStr, found := strings.Cut(f, "=")
		rank := 1
		if found {
			parsed, err := strconv.Atoi(rankStr)
			if err != nil {
				return nil, fmt.Errorf("--talent %q: rank must be a number", f)
			}
			rank = parsed
		}
		purchases = append(purchases, advancement.TalentPurchase{
			TalentKey: key,
			NewRank:   rank,
		})
	}
	return purchases, nil
}

// parseAdvanceFlags turns type=target pairs into purchases. Types
// without a target (inherit_gold) take a bare type.
func parseAdvanceFlags(flags []string) ([]advancement.Purchase, error) {
	var purchases []advancement.Purchase
	for _, f := range flags {
		typeStr, target, _ := strings.Cut(f, "=")
		advType := rulebook.AdvancementType(typeStr)
		if !advType.IsValid() {
			return nil, fmt.Errorf("--advance %q: unknown type %q", f, typeStr)
		}
		purchases = append(purchases, advancement.Purchase{
			Type:   advType,
			Target: target,
		})
	}
	return purchases, nil
}

func parseIncreaseFlags(flags []string) (map[shared.Attribute]int, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	increase := make(map[shared.Attribute]int)
	for _, f := range flags {
		name, pointsStr, found := strings.Cut(f, "=")
		if !found {
			return nil, fmt.Errorf("--increase %q: expected attribute=points", f)
		}
		attr := shared.ParseAttribute(name)
		if attr == shared.AttributeNone {
			return nil, fmt.Errorf("--increase %q: unknown attribute %q", f, name)
		}
		points, err := strconv.Atoi(pointsStr)
		if err != nil {
			return nil, fmt.Errorf("--increase %q: points must be a number", f)
		}
		increase[attr] = points
	}
	return increase, nil
}
