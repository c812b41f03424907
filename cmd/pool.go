package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Manage the cached peer comparison pool",
}

var poolRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Recompute the peer pool and persist its statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Refreshing every %s; Ctrl+C to stop.\n", rt.cfg.Benchmark.RefreshInterval)
			rt.engine.StartPoolRefresh(ctx)
			<-ctx.Done()
			return nil
		}

		if err := rt.engine.RefreshPool(cmd.Context()); err != nil {
			return err
		}
		return printPool(cmd, rt)
	},
}

var poolShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the most recently persisted pool statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ok, err := rt.engine.RestorePool(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No pool snapshot yet. Run 'calibra pool refresh'.")
			return nil
		}
		return printPool(cmd, rt)
	},
}

func printPool(cmd *cobra.Command, rt *runtime) error {
	out := cmd.OutOrStdout()
	stats := rt.engine.PoolStats()
	if jsonOutput(cmd) {
		return printJSON(out, stats)
	}
	if stats == nil {
		fmt.Fprintf(out, "Peer pool is below the minimum size of %d.\n", rt.cfg.Benchmark.MinPoolSize)
		return nil
	}

	d := stats.Distribution
	fmt.Fprintln(out, renderPairs([][2]string{
		{"Opted in", strconv.Itoa(stats.OptedInCount)},
		{"With data", strconv.Itoa(d.PoolSize)},
		{"Median", fmt.Sprintf("%.2f", d.Median)},
		{"Mean", fmt.Sprintf("%.2f", d.Mean)},
		{"Refreshed", fmtTime(stats.RefreshedAt)},
		{"Version", stats.Version},
	}))
	if len(stats.Topics) > 0 {
		fmt.Fprintln(out, renderTopics(stats.Topics))
	}
	return nil
}

func init() {
	poolRefreshCmd.Flags().Bool("watch", false, "Keep refreshing on the configured interval")

	poolCmd.AddCommand(poolRefreshCmd)
	poolCmd.AddCommand(poolShowCmd)
}
