package wstats

import (
	"github.com/spf13/cobra"
	"github.com/uyouii/weighted-stats/ingest"
	"github.com/uyouii/weighted-stats/stats"
)

func (a *app) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Moments and quantiles of every method",
		Long:  `The 'describe' command prints the weighted mean, variance and std together with the quantiles of every method. Without probabilities a default set from 0.01 to 0.99 is used.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd)
			if err != nil {
				return err
			}
			summary, err := stats.Describe(cmd.Context(), ingest.Fill(in.Values), ingest.Fill(in.Weights),
				ingest.Fill(in.Probabilities), a.ddof())
			if err != nil {
				return err
			}
			return a.printSummary(cmd.OutOrStdout(), summary)
		},
	}
}
