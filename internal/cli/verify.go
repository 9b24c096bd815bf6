package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/puzzle/catalog"
	"github.com/aalvaropc/aoc/internal/usecase"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [day...]",
		Short: "Check every solver against its bundled samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			days := make([]int, 0, len(args))
			for _, a := range args {
				d, err := domain.ParseDay(a)
				if err != nil {
					return err
				}
				days = append(days, d)
			}

			uc := usecase.NewVerifySamples(catalog.Default(logger.L()))
			results, err := uc.Execute(cmd.Context(), days)
			if err != nil {
				return err
			}

			th := defaultTheme()
			w := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(w, "%s %s  %s\n", th.mark(r.Passed), r.Name, th.Faint.Render(r.Message))
			}

			failed := usecase.CountFailed(results)
			logger.L().Info("verify.done", "checks", len(results), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("verify failed (%d of %d sample(s))", failed, len(results))
			}
			fmt.Fprintf(w, "\nOK (%d sample(s))\n", len(results))
			return nil
		},
	}
}
