package model

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

type QuantileValue struct {
	Value    float64 `json:"v"`
	Quantile float64 `json:"q"`
}

func (q QuantileValue) MarshalJSON() ([]byte, error) {
	value, err := MarshalFloat(q.Value)
	if err != nil {
		return nil, err
	}
	return jsoniter.Marshal(struct {
		Value    jsoniter.RawMessage `json:"v"`
		Quantile float64             `json:"q"`
	}{
		Value:    value,
		Quantile: q.Quantile,
	})
}

func (q *QuantileValue) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value    jsoniter.RawMessage `json:"v"`
		Quantile float64             `json:"q"`
	}
	if err := jsoniter.Unmarshal(data, &raw); err != nil {
		return err
	}
	value, err := UnmarshalFloat(raw.Value)
	if err != nil {
		return err
	}
	q.Value, q.Quantile = value, raw.Quantile
	return nil
}

// Summary collects every statistic of one weighted sample.
type Summary struct {
	Mean     NullFloat `json:"mean"`
	Variance NullFloat `json:"var"`
	Stddev   NullFloat `json:"stddev"`
	Ddof     int       `json:"ddof"`

	Observed    int     `json:"observed"`
	RawWeight   float64 `json:"raw_weight"`
	TotalWeight float64 `json:"total_weight"`

	// Quantiles contains method -> probability key -> quantile, like "type7": {"0.5": ...}
	Quantiles map[string]map[string]*QuantileValue `json:"quantiles,omitempty"`
}

func QuantileKey(p float64) string {
	return fmt.Sprintf("%v", p)
}

func (s *Summary) SetQuantileValue(method string, value *QuantileValue) {
	if s.Quantiles == nil {
		s.Quantiles = map[string]map[string]*QuantileValue{}
	}
	if s.Quantiles[method] == nil {
		s.Quantiles[method] = map[string]*QuantileValue{}
	}
	s.Quantiles[method][QuantileKey(value.Quantile)] = value
}

func (s *Summary) GetQuantileValue(method string, p float64) (*QuantileValue, bool) {
	if s == nil || s.Quantiles == nil {
		return nil, false
	}
	quantile, ok := s.Quantiles[method][QuantileKey(p)]
	return quantile, ok
}
