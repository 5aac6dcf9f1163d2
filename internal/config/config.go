// Package config loads the pietvm runtime configuration from YAML.
// Search order: explicit path, then ~/.pietvm/pietvm.yaml, then
// ./pietvm.yaml, then the embedded default.
package config

// Config is the full runtime configuration.
type Config struct {
	Interpreter InterpreterConfig `yaml:"interpreter"`
	Trace       TraceConfig       `yaml:"trace"`
	Storage     StorageConfig     `yaml:"storage"`
}

// InterpreterConfig controls program loading and execution.
type InterpreterConfig struct {
	// CodelSize is the pixel edge length of one codel; 0 auto-detects.
	CodelSize int `yaml:"codel_size"`
	// MaxSteps bounds a run; 0 means unlimited.
	MaxSteps int `yaml:"max_steps"`
	// MissingColor decides what unrecognized colors become:
	// "white" (default) or "black".
	MissingColor string `yaml:"missing_color"`
}

// TraceConfig controls per-step trace output.
type TraceConfig struct {
	Enabled bool `yaml:"enabled"`
	// Level is the log level trace lines are emitted at
	// ("debug" or "info").
	Level string `yaml:"level"`
}

// StorageConfig controls the run-history database.
type StorageConfig struct {
	// DB is the SQLite database path; "~" expands to the home
	// directory. Empty disables run history.
	DB string `yaml:"db"`
}

// MissingBlack reports whether unrecognized colors map to black.
func (c InterpreterConfig) MissingBlack() bool {
	return c.MissingColor == "black"
}

// Default returns the hardcoded fallback configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Interpreter: InterpreterConfig{
			CodelSize:    1,
			MaxSteps:     0,
			MissingColor: "white",
		},
		Trace: TraceConfig{
			Enabled: false,
			Level:   "info",
		},
		Storage: StorageConfig{
			DB: "~/.pietvm/runs.db",
		},
	}
}
