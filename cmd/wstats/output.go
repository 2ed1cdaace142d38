package wstats

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/uyouii/weighted-stats/model"
	"github.com/uyouii/weighted-stats/quantile"
	"github.com/uyouii/weighted-stats/utils"
	"golang.org/x/exp/maps"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type quantileOutput struct {
	Method    string                 `json:"method"`
	Quantiles []*model.QuantileValue `json:"quantiles"`
}

func (a *app) printScalar(w io.Writer, name string, value model.NullFloat) error {
	value = a.round(value)
	if a.output() == OutputJSON {
		return encode(w, map[string]model.NullFloat{name: value})
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", name, value)
	return err
}

func (a *app) printQuantiles(w io.Writer, method string, ps []float64, res []float64) error {
	res = utils.FormatFloats(res, a.precision())

	out := quantileOutput{Method: method, Quantiles: make([]*model.QuantileValue, len(ps))}
	for i, p := range ps {
		out.Quantiles[i] = &model.QuantileValue{Value: res[i], Quantile: p}
	}
	if a.output() == OutputJSON {
		return encode(w, out)
	}
	return writeQuantiles(w, method, out.Quantiles)
}

func (a *app) printSummary(w io.Writer, summary *model.Summary) error {
	summary.Mean = a.round(summary.Mean)
	summary.Variance = a.round(summary.Variance)
	summary.Stddev = a.round(summary.Stddev)
	for _, values := range summary.Quantiles {
		for _, value := range values {
			value.Value = utils.FormatFloat(value.Value, a.precision())
		}
	}
	if a.output() == OutputJSON {
		return encode(w, summary)
	}

	if _, err := fmt.Fprintf(w, "observed: %d\nraw_weight: %v\ntotal_weight: %v\nddof: %d\nmean: %s\nvar: %s\nstddev: %s\n",
		summary.Observed, summary.RawWeight, summary.TotalWeight, summary.Ddof,
		summary.Mean, summary.Variance, summary.Stddev); err != nil {
		return err
	}
	for _, estimator := range quantile.All() {
		values := maps.Values(summary.Quantiles[estimator.Name()])
		slices.SortFunc(values, func(x, y *model.QuantileValue) int {
			return cmp.Compare(x.Quantile, y.Quantile)
		})
		if err := writeQuantiles(w, estimator.Name(), values); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) round(value model.NullFloat) model.NullFloat {
	if !value.Valid {
		return value
	}
	return model.Float(utils.FormatFloat(value.Value, a.precision()))
}

func writeQuantiles(w io.Writer, method string, values []*model.QuantileValue) error {
	for _, value := range values {
		if _, err := fmt.Fprintf(w, "%s q%v: %v\n", method, value.Quantile, value.Value); err != nil {
			return err
		}
	}
	return nil
}

func encode(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
