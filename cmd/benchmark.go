package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/calibra/internal/benchmark"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Compare the learner's calibration with opted-in peers",
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

		ctx := cmd.Context()
		if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
			if err := rt.engine.RefreshPool(ctx); err != nil {
				return err
			}
		}

		b, err := rt.engine.Benchmark(ctx, userID)
		switch {
		case errors.Is(err, benchmark.ErrNotOptedIn):
			return fmt.Errorf("%w: run 'calibra optin on' first", err)
		case err != nil:
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return printJSON(out, b)
		}
		d := b.PeerDistribution
		fmt.Fprintln(out, renderPairs([][2]string{
			{"Your correlation", fmtOptFloat(b.UserCorrelation, "%.2f")},
			{"Percentile", fmtOptFloat(b.UserPercentile, "%.0f")},
			{"Band", b.Band.DisplayName()},
			{"Peers", strconv.Itoa(d.PoolSize)},
			{"Peer quartiles", fmt.Sprintf("%.2f / %.2f / %.2f", d.Quartiles[0], d.Quartiles[1], d.Quartiles[2])},
			{"Peer mean", fmt.Sprintf("%.2f", d.Mean)},
			{"Pool refreshed", fmtTime(b.PoolRefreshedAt)},
		}))

		if len(b.CommonOverconfidentTopics) > 0 {
			fmt.Fprintln(out, "\nCommon overconfident topics")
			fmt.Fprintln(out, renderTopics(b.CommonOverconfidentTopics))
		}
		return nil
	},
}

func renderTopics(topics []benchmark.TopicStat) string {
	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, []string{t.Topic, fmt.Sprintf("%.0f%%", t.Prevalence*100), fmt.Sprintf("%+.1f", t.AvgDelta)})
	}
	return renderTable(
		[]string{"Topic", "Prevalence", "Avg delta"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}

func init() {
	benchmarkCmd.Flags().Bool("refresh", false, "Recompute the peer pool before comparing")
}
