// Package logging builds the structured logger shared by the CLI,
// config loader and output sink.
package logging

import "go.uber.org/zap"

// New builds a production zap.Logger unless verbose is set, in which
// case it builds a development logger (human-readable, debug-level).
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
