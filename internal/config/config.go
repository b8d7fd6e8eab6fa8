// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/snesgoanalyzer/internal/snes"
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

// MappingOverride resolves a mapping mode name from the command line.
// A nil result selects auto detection from the internal ROM header.
func MappingOverride(name string) (*snes.MappingMode, error) {
	switch name {
	case "", "auto":
		return nil, nil
	case "lorom":
		mode := snes.LoROM
		return &mode, nil
	case "hirom":
		mode := snes.HiROM
		return &mode, nil
	default:
		return nil, fmt.Errorf("unsupported mapping mode: %s", name)
	}
}
