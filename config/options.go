package config

import (
	"github.com/dhamidi/cq/css/analyzer"
	"github.com/dhamidi/cq/css/parser"
)

// ParserOptions returns the parser options for a file under this
// configuration.
func (c *Config) ParserOptions(file string) []parser.Option {
	return []parser.Option{
		parser.WithFile(file),
		parser.WithMaxDepth(c.Parser.MaxDepth),
	}
}

// Severities converts the configured rule severities. Values were checked
// by Validate; anything unparseable turns the rule off.
func (c *Config) Severities() map[string]analyzer.Severity {
	severities := make(map[string]analyzer.Severity, len(c.Lint.Rules))
	for name, value := range c.Lint.Rules {
		sev, _ := analyzer.ParseSeverity(value)
		severities[name] = sev
	}
	return severities
}

// NewAnalyzer returns an analyzer running the default rules at the
// configured severities.
func (c *Config) NewAnalyzer() *analyzer.Analyzer {
	return analyzer.New(analyzer.WithSeverities(c.Severities()))
}
