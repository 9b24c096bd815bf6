package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc/internal/usecase/extract"
)

func runsCmd(s *session) *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved run artifacts",
	}

	c.AddCommand(runsListCmd(s), runsShowCmd(s))
	return c
}

func runsListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(s.workspace)
			if err != nil {
				return err
			}

			refs, err := ws.store.ListRuns()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no runs saved)")
				return nil
			}

			th := defaultTheme()
			for _, r := range refs {
				fmt.Fprintf(w, "%s  dec%d part %d  %d  %s\n",
					shortRunID(r.ID),
					r.Day,
					int(r.Part),
					r.Answer,
					th.Faint.Render(r.StartedAt.Format("2006-01-02 15:04:05")),
				)
			}
			return nil
		},
	}
}

func runsShowCmd(s *session) *cobra.Command {
	var field string

	c := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved run (or one field of it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(s.workspace)
			if err != nil {
				return err
			}

			doc, err := ws.store.LoadRun(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if field == "" {
				_, err := w.Write(doc)
				return err
			}

			v, err := extract.Field(doc, field)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, v)
			return nil
		},
	}

	c.Flags().StringVar(&field, "field", "", "JSONPath of a single field to print (e.g. $.answer)")
	return c
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
