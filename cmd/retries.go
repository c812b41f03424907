package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var retriesCmd = &cobra.Command{
	Use:   "retries",
	Short: "List controlled-failure retries that are due",
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

		due, err := rt.engine.DueRetries(cmd.Context(), userID, time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return printJSON(out, due)
		}
		if len(due) == 0 {
			fmt.Fprintln(out, "No retries due.")
			return nil
		}
		rows := make([][]string, 0, len(due))
		for _, d := range due {
			rows = append(rows, []string{d.ObjectiveID, d.ChallengeID, strconv.Itoa(d.Stage), fmtTime(d.DueAt)})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Objective", "Challenge", "Stage", "Due"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
		))
		fmt.Fprintln(out, "Run 'calibra challenge <objective>' to retry.")
		return nil
	},
}
