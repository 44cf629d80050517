package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/musclequiz/internal/facts"
	factsscreen "github.com/abhisek/musclequiz/internal/screens/facts"
)

var factsCmd = &cobra.Command{
	Use:   "facts [muscle]",
	Short: "Print the muscle fact table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := facts.Default()
		entities := store.Entities()

		if len(args) == 1 {
			var found []facts.Entity
			for _, e := range entities {
				if strings.EqualFold(e.Name, args[0]) {
					found = append(found, e)
				}
			}
			if len(found) == 0 {
				return &facts.NotFoundError{Entity: args[0]}
			}
			entities = found
		}

		width, _ := cmd.Flags().GetInt("width")
		fmt.Fprintln(cmd.OutOrStdout(), factsscreen.Table(entities, width))
		return nil
	},
}

func init() {
	factsCmd.Flags().Int("width", 0, "Maximum table width (0 = natural width)")
}
