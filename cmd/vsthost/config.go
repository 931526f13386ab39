//go:build linux || darwin

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// sessionConfig carries the explicit session settings.
type sessionConfig struct {
	SampleRate float64
	BlockSize  int32
	Note       uint8
	Duration   time.Duration
	Verbose    bool
}

// fileConfig is the YAML schema. Fields left out of the file keep their
// command-line values.
type fileConfig struct {
	SampleRate float64 `yaml:"sample_rate"`
	BlockSize  int32   `yaml:"block_size"`
	Note       int     `yaml:"note"`
	DurationMS int     `yaml:"duration_ms"`
	Verbose    bool    `yaml:"verbose"`
}

func (c *sessionConfig) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.SampleRate > 0 {
		c.SampleRate = file.SampleRate
	}
	if file.BlockSize > 0 {
		c.BlockSize = file.BlockSize
	}
	if file.Note > 0 && file.Note < 128 {
		c.Note = uint8(file.Note)
	}
	if file.DurationMS > 0 {
		c.Duration = time.Duration(file.DurationMS) * time.Millisecond
	}
	if file.Verbose {
		c.Verbose = true
	}
	return nil
}
