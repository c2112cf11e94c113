package config

const (
	DefaultMaxDepth  = 128
	DefaultVerbosity = 0
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in zero-valued fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Parser.MaxDepth == 0 {
		cfg.Parser.MaxDepth = DefaultMaxDepth
	}
	if cfg.Lint.Rules == nil {
		cfg.Lint.Rules = map[string]string{}
	}
}
