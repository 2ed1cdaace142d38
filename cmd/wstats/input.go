package wstats

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// input is one sample. A nil slice is a missing array, a nil element a missing value.
type input struct {
	Values        []*float64 `json:"values"`
	Weights       []*float64 `json:"weights"`
	Probabilities []*float64 `json:"probabilities"`
}

// readInput takes the sample from --file when given, from the slice flags otherwise.
// Slice flags that were not set stay nil.
func readInput(cmd *cobra.Command) (*input, error) {
	flags := cmd.Flags()

	file, err := flags.GetString(flagFile)
	if err != nil {
		return nil, err
	}
	if file != "" {
		return readInputFile(cmd, file)
	}

	in := &input{}
	for name, dst := range map[string]*[]*float64{
		flagValues:  &in.Values,
		flagWeights: &in.Weights,
		flagProbs:   &in.Probabilities,
	} {
		if !flags.Changed(name) {
			continue
		}
		fs, err := flags.GetFloat64Slice(name)
		if err != nil {
			return nil, err
		}
		*dst = pointers(fs)
	}
	return in, nil
}

func readInputFile(cmd *cobra.Command, file string) (*input, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read input %s", file)
	}

	in := &input{}
	if err := jsoniter.Unmarshal(data, in); err != nil {
		return nil, errors.Wrapf(err, "decode input %s", file)
	}
	return in, nil
}

func pointers(fs []float64) []*float64 {
	res := make([]*float64, len(fs))
	for i := range fs {
		res[i] = &fs[i]
	}
	return res
}
