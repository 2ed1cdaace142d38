package wstats

const (
	OutputText = "text"
	OutputJSON = "json"

	// negative precision prints results unrounded
	DefaultPrecision = -1
	DefaultLogLevel  = "info"

	EnvPrefix = "WSTATS"
)

// keys resolved by viper, flag > env > config file > default
const (
	keyDdof      = "ddof"
	keyMethod    = "method"
	keyPrecision = "precision"
	keyOutput    = "output"
	keyLogLevel  = "log-level"
)

// input flags, read straight from the command line
const (
	flagConfig  = "config"
	flagValues  = "values"
	flagWeights = "weights"
	flagProbs   = "probs"
	flagFile    = "file"
)
