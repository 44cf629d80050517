package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/musclequiz/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz right away, skipping the menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetInt64("seed")
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must be positive, got %d", limit)
		}
		return runApp(cmd, app.Options{
			QuestionLimit: limit,
			Seed:          seed,
			SkipHome:      true,
		})
	},
}

func init() {
	playCmd.Flags().Int64("seed", 0, "Random seed for a reproducible quiz (0 = random)")
	playCmd.Flags().Int("limit", 0, "Questions per quiz (0 = config value)")
}
