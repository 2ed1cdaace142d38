package wstats

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/uyouii/weighted-stats/stats"
	"github.com/uyouii/weighted-stats/utils"
)

// app carries the configuration shared by every subcommand of one root command.
type app struct {
	config *viper.Viper
}

// NewRootCmd builds the wstats command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{config: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "wstats",
		Short: "Weighted statistics over sparse samples",
		Long: `wstats computes weighted mean, variance, standard deviation and quantiles.
Weights summing to less than 1 leave the remaining probability mass on an implicit value 0.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	addConfigFlags(flags)
	addInputFlags(flags)
	for _, key := range []string{keyDdof, keyMethod, keyPrecision, keyOutput, keyLogLevel} {
		if err := a.config.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		a.newMeanCmd(),
		a.newVarianceCmd(),
		a.newStdCmd(),
		a.newQuantileCmd(),
		a.newMedianCmd(),
		a.newDescribeCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String(flagConfig, "", "config file (yaml, json or toml)")
	flags.Int(keyDdof, stats.DefaultDdof, "delta degrees of freedom for variance and std")
	flags.String(keyMethod, stats.DefaultMethod, "quantile method: empirical, type7 or harrell-davis")
	flags.Int(keyPrecision, DefaultPrecision, "decimal places of printed results, negative to keep all")
	flags.String(keyOutput, OutputText, "output format: text or json")
	flags.String(keyLogLevel, DefaultLogLevel, "log level: debug, info, warn or error")
}

func addInputFlags(flags *pflag.FlagSet) {
	flags.Float64Slice(flagValues, nil, "sample values")
	flags.Float64Slice(flagWeights, nil, "sample weights")
	flags.Float64Slice(flagProbs, nil, "probabilities in [0, 1]")
	flags.String(flagFile, "", `JSON input {"values": [...], "weights": [...], "probabilities": [...]}, "-" reads stdin`)
}

func (a *app) init(cmd *cobra.Command) error {
	a.config.SetEnvPrefix(EnvPrefix)
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	if configFile, _ := cmd.Flags().GetString(flagConfig); configFile != "" {
		a.config.SetConfigFile(configFile)
		if err := a.config.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", configFile)
		}
	}

	switch output := a.output(); output {
	case OutputText, OutputJSON:
	default:
		return errors.Errorf("unknown output format %q", output)
	}

	return utils.InitLogger(a.config.GetString(keyLogLevel))
}

func (a *app) ddof() int {
	return a.config.GetInt(keyDdof)
}

func (a *app) method() string {
	return a.config.GetString(keyMethod)
}

func (a *app) precision() int32 {
	return int32(a.config.GetInt(keyPrecision))
}

func (a *app) output() string {
	return strings.ToLower(a.config.GetString(keyOutput))
}
