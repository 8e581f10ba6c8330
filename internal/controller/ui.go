// Package controller provides output adapters for displaying rewrite progress and results.
package controller

import (
	m "github.com/getcord/importfix/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRewrite StartMode = iota
	ModeEstimate
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to dry-run mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithRewriteMode sets the UI to in-place rewrite mode.
func WithRewriteMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRewrite
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRewrite}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how a run is reported. Implementations must be safe for
// concurrent use since files may be processed by several workers.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish
	DisplayRunInfo(files int, threads int, shardIndex int, shardCount int)
	DisplayUnresolved(file m.Path, spec m.Specifier)
	DisplayFileResult(result m.FileResult)
	DisplaySummary(results m.FileResults, dryRun bool) error
}

// UnresolvedMessage is the diagnostic printed for an import with no candidate file.
func UnresolvedMessage(spec m.Specifier) string {
	return "Could not resolve import: " + string(spec)
}
