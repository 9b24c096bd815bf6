package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/inputfile"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/puzzle/catalog"
	"github.com/aalvaropc/aoc/internal/usecase"
)

// ExecuteDay runs a single-puzzle program: read --input, print the part
// two answer, exit 1 on any error.
func ExecuteDay(day int) {
	s := &session{}
	cmd := newDayCmd(day, s)
	err := cmd.Execute()
	s.close()
	if err != nil {
		os.Exit(1)
	}
}

func newDayCmd(day int, s *session) *cobra.Command {
	var input string

	short := fmt.Sprintf("Advent of Code 2024, day %d", day)
	if solver, err := catalog.Default(nil).Lookup(day); err == nil {
		short += ": " + solver.Title()
	}

	cmd := &cobra.Command{
		Use:               fmt.Sprintf("dec%d", day),
		Short:             short,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: s.start,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.L()
			uc := usecase.NewSolvePuzzle(
				catalog.Default(log),
				inputfile.NewReader(),
				usecase.WithLogger(log),
			)

			run, _, err := uc.Execute(cmd.Context(), usecase.SolveRequest{
				Day:       day,
				Part:      domain.PartTwo,
				InputPath: input,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), run.Answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", defaultInput, "Input file.")
	return cmd
}
