// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// New creates the logger. Development mode switches to the console
// encoder with human-readable timestamps.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
