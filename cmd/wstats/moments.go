package wstats

import (
	"github.com/spf13/cobra"
	"github.com/uyouii/weighted-stats/ingest"
	"github.com/uyouii/weighted-stats/stats"
	"github.com/uyouii/weighted-stats/utils"
	"go.uber.org/zap"
)

func (a *app) newMeanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mean",
		Short: "Weighted mean",
		Long:  `The 'mean' command prints the weighted mean, or null for an empty sample or one without positive weight.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd)
			if err != nil {
				return err
			}
			res, err := stats.WeightedMean(ingest.Fill(in.Values), ingest.Fill(in.Weights))
			if err != nil {
				utils.GetLogger(cmd.Context()).Error("WeightedMean failed", zap.Error(err))
				return err
			}
			return a.printScalar(cmd.OutOrStdout(), "mean", res)
		},
	}
}

func (a *app) newVarianceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variance",
		Short: "Weighted variance",
		Long:  `The 'variance' command prints the weighted variance with --ddof delta degrees of freedom, or null when the effective sample size is not above ddof.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd)
			if err != nil {
				return err
			}
			res, err := stats.WeightedVariance(ingest.Fill(in.Values), ingest.Fill(in.Weights), a.ddof())
			if err != nil {
				utils.GetLogger(cmd.Context()).Error("WeightedVariance failed", zap.Error(err), zap.Int("ddof", a.ddof()))
				return err
			}
			return a.printScalar(cmd.OutOrStdout(), "var", res)
		},
	}
}

func (a *app) newStdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "std",
		Short: "Weighted standard deviation",
		Long:  `The 'std' command prints the square root of the weighted variance with --ddof delta degrees of freedom.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd)
			if err != nil {
				return err
			}
			res, err := stats.WeightedStd(ingest.Fill(in.Values), ingest.Fill(in.Weights), a.ddof())
			if err != nil {
				utils.GetLogger(cmd.Context()).Error("WeightedStd failed", zap.Error(err), zap.Int("ddof", a.ddof()))
				return err
			}
			return a.printScalar(cmd.OutOrStdout(), "stddev", res)
		},
	}
}
