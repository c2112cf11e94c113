// Package config loads cq settings from a `.cq.yaml` file.
//
// A configuration file looks like this:
//
//	parser:
//	  max_depth: 64
//	lint:
//	  rules:
//	    noMixedContainerCombinators: error
//	    noEmptyContainerBlock: off
//	logging:
//	  verbosity: 1
//	  file: /tmp/cq.log
//
// Every field is optional. Loading fills in defaults and validates the
// result; Find locates the file for a directory the way git locates its
// repository.
package config

// FileName is the configuration file looked up by Find.
const FileName = ".cq.yaml"

type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Lint    LintConfig    `yaml:"lint"`
	Logging LoggingConfig `yaml:"logging"`

	// Path is the file the configuration was loaded from, empty for
	// the default configuration.
	Path string `yaml:"-"`
}

type ParserConfig struct {
	// MaxDepth bounds the nesting of parenthesized queries, blocks and
	// functions.
	MaxDepth int `yaml:"max_depth"`
}

type LintConfig struct {
	// Rules maps a rule name to error, warning or off. Rules not listed
	// keep their default severity.
	Rules map[string]string `yaml:"rules"`
}

type LoggingConfig struct {
	// Verbosity is the commonlog level; 0 logs nothing.
	Verbosity int `yaml:"verbosity"`
	// File receives the log instead of stderr when set.
	File string `yaml:"file"`
}
