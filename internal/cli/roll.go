package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/realm-forge/internal/dice"
)

func init() {
	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll ability scores",
		Long: "Rolls 4d6 drop lowest six times, the classic spread for the roll\n" +
			"method of the abilities step. Feed the scores to the abilities\n" +
			"command in whatever order suits the build.",
		Run: runRoll,
	}

	cmd.Flags().IntP("count", "c", 6, "Number of scores to roll")

	RootCmd.AddCommand(cmd)
}

type rolledScore struct {
	Score int   `json:"score"`
	Rolls []int `json:"rolls"`
}

func runRoll(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt("count")

	roller := dice.NewRandomRoller()
	scores := make([]rolledScore, 0, count)
	for i := 0; i < count; i++ {
		result, err := roller.Roll(4, 6, 0)
		if err != nil {
			exitErr("roll", err)
		}
		scores = append(scores, rolledScore{Score: result.DropLowest(), Rolls: result.Rolls})
	}

	printJSON(scores)
}
