package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/infra/workspacefinder"
)

func Execute() {
	s := &session{}
	cmd := newRootCmd(s)
	err := cmd.Execute()
	s.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "aoc",
		Short:             "aoc: Advent of Code 2024 solvers",
		SilenceUsage:      true,
		PersistentPreRunE: s.start,
	}

	cmd.PersistentFlags().BoolVar(&s.debug, "debug", false, "enable verbose logging to .aoc/logs/aoc.log")
	cmd.PersistentFlags().StringVarP(&s.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		solveCmd(s),
		verifyCmd(),
		daysCmd(),
		initCmd(),
		runsCmd(s),
		versionCmd(),
	)
	return cmd
}

// session carries the persistent flags and owns the log file.
type session struct {
	debug     bool
	workspace string
	cleanup   func() error
}

// start sends logs to the workspace log file. Outside a workspace, or
// when -w does not point at one, they are discarded.
func (s *session) start(_ *cobra.Command, _ []string) error {
	logRoot := strings.TrimSpace(s.workspace)
	if logRoot != "" {
		// Leave a mistyped -w untouched; the command reports it.
		if _, err := os.Stat(filepath.Join(logRoot, workspacefinder.ConfigFileName)); err != nil {
			return nil
		}
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil
		}
		root, ferr := workspacefinder.NewFinder().FindRoot(wd)
		if ferr != nil {
			return nil
		}
		logRoot = root
	}

	cleanup, err := logger.Setup(logger.Config{
		Root:  logRoot,
		Debug: s.debug,
	})
	if err == nil {
		s.cleanup = cleanup
	}
	return nil
}

func (s *session) close() {
	if s.cleanup != nil {
		_ = s.cleanup()
		s.cleanup = nil
	}
}
