package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show calibration metrics over the learner's history",
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

		m, err := rt.engine.Metrics(cmd.Context(), userID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return printJSON(out, m)
		}
		if m.ResponseCount == 0 {
			fmt.Fprintln(out, "No assessments recorded yet.")
			return nil
		}
		fmt.Fprintln(out, renderPairs([][2]string{
			{"Responses", strconv.Itoa(m.ResponseCount)},
			{"Mean absolute error", fmtOptFloat(m.MeanAbsoluteError, "%.1f")},
			{"Correlation", fmtOptFloat(m.CorrelationCoefficient, "%.2f")},
			{"Overconfident", strconv.Itoa(m.OverconfidentCount)},
			{"Underconfident", strconv.Itoa(m.UnderconfidentCount)},
			{"Calibrated", strconv.Itoa(m.CalibratedCount)},
			{"Trend", string(m.Trend)},
		}))
		return nil
	},
}
