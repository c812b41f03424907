package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List recurring failure patterns with remediation advice",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUser(cmd)
		if err != nil {
			return err
		}
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ps, err := rt.engine.Patterns(cmd.Context(), userID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return printJSON(out, ps)
		}
		if len(ps) == 0 {
			fmt.Fprintln(out, "No recurring failure patterns.")
			return nil
		}

		rows := make([][]string, 0, len(ps))
		for _, p := range ps {
			rows = append(rows, []string{
				p.Category,
				strconv.Itoa(p.FailureCount),
				strconv.Itoa(p.OverconfidentCount),
				strconv.Itoa(p.IncorrectCount),
				truncate(strings.Join(p.AffectedObjectives, ", "), 40),
				fmtTime(p.LastFailedAt),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Topic", "Failures", "Overconf.", "Incorrect", "Objectives", "Last failed"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft},
		))

		for _, p := range ps {
			fmt.Fprintf(out, "\n%s\n  %s\n", p.Category, p.Remediation)
		}
		return nil
	},
}
