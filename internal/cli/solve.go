package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/inputfile"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/puzzle/catalog"
	"github.com/aalvaropc/aoc/internal/usecase"
)

func solveCmd(s *session) *cobra.Command {
	var (
		partArg string
		input   string
		save    bool
		format  string
		expect  int
	)

	c := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve one puzzle part and print the answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDay(args[0])
			if err != nil {
				return err
			}
			part, err := domain.ParsePart(partArg)
			if err != nil {
				return err
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := optionalWorkspace(s.workspace)
			if err != nil {
				return err
			}
			if save && ws == nil {
				return fmt.Errorf("--save needs a workspace (tip: run `aoc init`)")
			}

			inputPath, err := resolveInputPath(ws, day, input)
			if err != nil {
				return err
			}

			req := usecase.SolveRequest{Day: day, Part: part, InputPath: inputPath}
			if cmd.Flags().Changed("expect") {
				req.Expected = &expect
			} else if ws != nil {
				if v, ok := ws.cfg.Answer(day, part); ok {
					req.Expected = &v
				}
			}

			log := logger.L()
			opts := []usecase.SolveOption{usecase.WithLogger(log)}
			if save {
				opts = append(opts, usecase.WithStore(ws.store))
			}
			uc := usecase.NewSolvePuzzle(catalog.Default(log), inputfile.NewReader(), opts...)

			run, _, err := uc.Execute(cmd.Context(), req)
			if err != nil {
				if run.Day != 0 {
					// Solved but could not be saved: still show the answer.
					_ = printSolve(cmd.OutOrStdout(), run, format)
				}
				return err
			}

			if err := printSolve(cmd.OutOrStdout(), run, format); err != nil {
				return err
			}
			if run.Failed() {
				return fmt.Errorf("dec%d part %d: answer check failed: %s", day, int(part), run.Check.Message)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&partArg, "part", "p", "2", "Puzzle part: 1|2")
	c.Flags().StringVarP(&input, "input", "i", "", "Input file (default: from aoc.yaml, else input.txt)")
	c.Flags().BoolVar(&save, "save", false, "Save the result under runs/")
	c.Flags().StringVar(&format, "format", "plain", "Output format: plain|pretty|json")
	c.Flags().IntVar(&expect, "expect", 0, "Expected answer to check against (overrides aoc.yaml)")
	return c
}

func checkFormat(format string) error {
	switch format {
	case "plain", "pretty", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected plain|pretty|json)", format)
	}
}

func printSolve(w io.Writer, run domain.RunArtifact, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	case "pretty":
		printPrettySolve(w, run)
		return nil
	default:
		_, err := fmt.Fprintln(w, run.Answer)
		return err
	}
}

func printPrettySolve(w io.Writer, run domain.RunArtifact) {
	th := defaultTheme()

	fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("Day %d: %s (part %d)", run.Day, run.Title, int(run.Part))))
	fmt.Fprintf(w, "Input:    %s (%d lines)\n", run.InputPath, run.Lines)
	fmt.Fprintf(w, "Duration: %s\n", run.EndedAt.Sub(run.StartedAt).Round(time.Microsecond))
	if run.ID != "" {
		fmt.Fprintf(w, "Run ID:   %s\n", run.ID)
	}
	fmt.Fprintf(w, "Answer:   %s\n", th.Answer.Render(fmt.Sprint(run.Answer)))
	if run.Check != nil {
		fmt.Fprintf(w, "Check:    %s %s\n", th.mark(run.Check.Passed), run.Check.Message)
	}
}
