package stats

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uyouii/weighted-stats/common"
	"github.com/uyouii/weighted-stats/ingest"
	"github.com/uyouii/weighted-stats/model"
	"github.com/uyouii/weighted-stats/moment"
	"github.com/uyouii/weighted-stats/quantile"
	"github.com/uyouii/weighted-stats/sample"
	"github.com/uyouii/weighted-stats/utils"
	"go.uber.org/zap"
)

// Describe computes the moments and every quantile estimator of one sample.
// Empty ps means DefaultDescribeQuantiles.
//
// The input has to pass the moment checks. Nil input, or both arrays empty,
// gives null moments and zero quantiles like Quantiles does. A sample without
// positive weight gets null moments and the quantiles of an all zero sample.
func Describe(ctx context.Context, values []float64, weights []float64,
	ps []float64, ddof int) (summary *model.Summary, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Describe recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("cnt", len(values)))
			summary, err = nil, errors.Errorf("describe panic: %v", r)
		}
	}()

	if len(ps) == 0 {
		ps = DefaultDescribeQuantiles
	}
	probs, err := ingest.Probabilities(ps)
	if err != nil {
		logger.Error("invalid probabilities", zap.Error(err), zap.String("ps", utils.JoinFloats(ps, ",")))
		return nil, err
	}
	if ddof < 0 {
		return nil, errors.Wrapf(common.ErrorInvalidDdof, "ddof = %d", ddof)
	}

	summary = &model.Summary{
		Mean:     model.Null(),
		Variance: model.Null(),
		Stddev:   model.Null(),
		Ddof:     ddof,
	}
	if missing(values, weights) {
		for _, estimator := range quantile.All() {
			setQuantiles(summary, estimator.Name(), make([]float64, len(probs)), probs)
		}
		logger.Debug("describe null sample", zap.Int("cnt", len(values)))
		return summary, nil
	}

	pairs, err := ingest.Strict(values, weights)
	if err != nil {
		logger.Error("invalid sample", zap.Error(err), zap.Int("cnt", len(values)))
		return nil, err
	}

	s := sample.Normalize(pairs)
	summary.Observed = s.Observed
	summary.RawWeight = s.RawWeight
	summary.TotalWeight = s.TotalWeight
	if !s.IsEmpty() {
		summary.Mean = moment.Mean(s)
		summary.Variance = moment.Variance(s, ddof)
		summary.Stddev = moment.Std(s, ddof)
	}

	sorted := quantile.Prepare(s)
	for _, estimator := range quantile.All() {
		setQuantiles(summary, estimator.Name(), quantile.Evaluate(estimator, sorted, probs), probs)
	}

	logger.Debug("describe finished", zap.String("sample", s.DebugString()),
		zap.Stringer("mean", summary.Mean), zap.Stringer("var", summary.Variance))
	return summary, nil
}

func setQuantiles(summary *model.Summary, method string, res []float64, probs []float64) {
	for i, value := range res {
		summary.SetQuantileValue(method, &model.QuantileValue{
			Value:    value,
			Quantile: probs[i],
		})
	}
}
