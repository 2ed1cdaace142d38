package model

import (
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
)

type ValueWeight struct {
	Value  float64
	Weight float64
}

// Sample is a set of positively weighted pairs with a closed probability mass.
type Sample struct {
	// Pairs keeps the input order; the implicit zero pair, if any, is last.
	Pairs []ValueWeight

	// TotalWeight is 1.0 when the implicit zero was added, the raw sum otherwise.
	TotalWeight float64
	RawWeight   float64

	// Observed counts the pairs that came from the input.
	Observed int
	Implicit bool
}

func (s *Sample) DebugString() string {
	res := fmt.Sprintf("pairs: %+v, observed: %+v, rawWeight: %+v, totalWeight: %+v",
		len(s.Pairs), s.Observed, s.RawWeight, s.TotalWeight)
	return res
}

func (s *Sample) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Observed == 0
}

// NullFloat is a scalar result that may be missing.
type NullFloat struct {
	Value float64
	Valid bool
}

func Null() NullFloat {
	return NullFloat{}
}

func Float(value float64) NullFloat {
	return NullFloat{Value: value, Valid: true}
}

func (f NullFloat) String() string {
	if !f.Valid {
		return "null"
	}
	return fmt.Sprintf("%v", f.Value)
}

func (f NullFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return MarshalFloat(f.Value)
}

func (f *NullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = NullFloat{}
		return nil
	}
	value, err := UnmarshalFloat(data)
	if err != nil {
		return err
	}
	*f = Float(value)
	return nil
}

// MarshalFloat encodes NaN and infinities as strings, which plain JSON numbers can't hold.
func MarshalFloat(value float64) ([]byte, error) {
	switch {
	case math.IsNaN(value):
		return []byte(`"NaN"`), nil
	case math.IsInf(value, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(value, -1):
		return []byte(`"-Inf"`), nil
	}
	return jsoniter.Marshal(value)
}

func UnmarshalFloat(data []byte) (float64, error) {
	switch string(data) {
	case `"NaN"`:
		return math.NaN(), nil
	case `"+Inf"`, `"Inf"`:
		return math.Inf(1), nil
	case `"-Inf"`:
		return math.Inf(-1), nil
	}
	var value float64
	if err := jsoniter.Unmarshal(data, &value); err != nil {
		return 0, err
	}
	return value, nil
}
