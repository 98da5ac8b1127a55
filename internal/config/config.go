// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/bin2hex/internal/hexfile"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateEncoder validates the encoder options and creates the encoder for the chosen addressing mode.
func CreateEncoder(logger *log.Logger, opts hexfile.Options) (*hexfile.Encoder, error) {
	enc, err := hexfile.New(opts)
	if err != nil {
		return nil, fmt.Errorf("creating %s encoder: %w", opts.Mode, err)
	}

	logger.Debug("Created encoder",
		log.String("mode", opts.Mode.String()),
		log.Hex("offset", opts.Offset),
		log.Int("record_length", opts.RecordLength))
	return enc, nil
}
