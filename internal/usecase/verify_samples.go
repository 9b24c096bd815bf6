package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
	ucassert "github.com/aalvaropc/aoc/internal/usecase/assert"
)

type VerifySamples struct {
	puzzles ports.PuzzleCatalog
}

func NewVerifySamples(puzzles ports.PuzzleCatalog) *VerifySamples {
	return &VerifySamples{puzzles: puzzles}
}

// Execute solves every bundled sample of the given days (all days when
// empty). A failing sample is reported in the results, not as an error.
func (uc *VerifySamples) Execute(ctx context.Context, days []int) ([]domain.CheckResult, error) {
	if len(days) == 0 {
		days = uc.puzzles.Days()
	}

	var out []domain.CheckResult
	for _, day := range days {
		solver, err := uc.puzzles.Lookup(day)
		if err != nil {
			return nil, err
		}

		for i, sm := range solver.Samples() {
			if err := ctx.Err(); err != nil {
				return out, err
			}

			name := fmt.Sprintf("dec%d part %d sample %d", day, int(sm.Part), i+1)
			got, err := solver.Solve(sm.Lines(), sm.Part)
			if err != nil {
				out = append(out, ucassert.Failed(name, err))
				continue
			}
			out = append(out, ucassert.Answer(name, sm.Want, got))
		}
	}
	return out, nil
}

// CountFailed returns how many checks did not pass.
func CountFailed(results []domain.CheckResult) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
