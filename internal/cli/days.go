package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc/internal/puzzle/catalog"
)

func daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List available puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			th := defaultTheme()
			w := cmd.OutOrStdout()
			for _, ref := range catalog.Default(nil).Refs() {
				fmt.Fprintf(w, "- %s  %s\n", th.Title.Render(fmt.Sprintf("dec%d", ref.Day)), ref.Title)
			}
			return nil
		},
	}
}
