package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc/internal/buildinfo"
	"github.com/aalvaropc/aoc/internal/infra/logger"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information and the active log file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, buildinfo.String())
			if logger.IsReady() == nil {
				fmt.Fprintf(w, "log: %s (opened %s)\n", logger.Path(), logger.InitTime().Format(time.RFC3339))
			}
		},
	}
}
