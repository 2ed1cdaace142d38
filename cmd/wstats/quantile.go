package wstats

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/uyouii/weighted-stats/ingest"
	"github.com/uyouii/weighted-stats/quantile"
	"github.com/uyouii/weighted-stats/stats"
	"github.com/uyouii/weighted-stats/utils"
	"go.uber.org/zap"
)

func (a *app) newQuantileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quantile",
		Short: "Weighted quantiles",
		Long:  `The 'quantile' command prints one weighted quantile per probability, estimated with --method (empirical, type7 or harrell-davis).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd)
			if err != nil {
				return err
			}
			if len(in.Probabilities) == 0 {
				return errors.New("no probabilities, set --probs or \"probabilities\" in --file")
			}

			estimator, err := quantile.ByName(a.method())
			if err != nil {
				return err
			}
			res, err := stats.NullableQuantiles(estimator.Name(), in.Values, in.Weights, in.Probabilities)
			if err != nil {
				utils.GetLogger(cmd.Context()).Error("NullableQuantiles failed", zap.Error(err),
					zap.String("method", estimator.Name()))
				return err
			}
			return a.printQuantiles(cmd.OutOrStdout(), estimator.Name(), ingest.Fill(in.Probabilities), res)
		},
	}
}

func (a *app) newMedianCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "median",
		Short: "Weighted median",
		Long:  `The 'median' command prints the empirical weighted quantile at 0.5.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd)
			if err != nil {
				return err
			}
			res, err := stats.WeightedMedian(ingest.Fill(in.Values), ingest.Fill(in.Weights))
			if err != nil {
				utils.GetLogger(cmd.Context()).Error("WeightedMedian failed", zap.Error(err))
				return err
			}
			return a.printQuantiles(cmd.OutOrStdout(), quantile.EmpiricalName, []float64{0.5}, []float64{res})
		},
	}
}
