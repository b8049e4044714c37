// Package config handles citefix configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the defaults used when paths are not given on the command line.
type Config struct {
	PDFName      string `yaml:"pdf_name,omitempty" json:"pdf_name"`           // PDF looked up next to the markdown
	OutputPrefix string `yaml:"output_prefix,omitempty" json:"output_prefix"` // Prepended to the markdown file name
	Heading      string `yaml:"heading,omitempty" json:"heading"`             // Reference section heading
}

const (
	DefaultPDFName      = "gpt.pdf"
	DefaultOutputPrefix = "fixed_"
	DefaultHeading      = "References"
)

// Environment variables that override the config file.
const (
	EnvPDFName      = "CITEFIX_PDF_NAME"
	EnvOutputPrefix = "CITEFIX_OUTPUT_PREFIX"
	EnvHeading      = "CITEFIX_HEADING"
)

// Default returns a config with every field at its default.
func Default() *Config {
	return &Config{
		PDFName:      DefaultPDFName,
		OutputPrefix: DefaultOutputPrefix,
		Heading:      DefaultHeading,
	}
}

// applyDefaults fills empty fields.
func (c *Config) applyDefaults() {
	if c.PDFName == "" {
		c.PDFName = DefaultPDFName
	}
	if c.OutputPrefix == "" {
		c.OutputPrefix = DefaultOutputPrefix
	}
	if c.Heading == "" {
		c.Heading = DefaultHeading
	}
}

// applyEnv overrides fields from the environment.
func (c *Config) applyEnv() {
	c.PDFName = GetConfigValue(EnvPDFName, c.PDFName)
	c.OutputPrefix = GetConfigValue(EnvOutputPrefix, c.OutputPrefix)
	c.Heading = GetConfigValue(EnvHeading, c.Heading)
}

// Validate checks that file name settings are plain names.
func (c *Config) Validate() error {
	if err := validateFileName("pdf_name", c.PDFName); err != nil {
		return err
	}
	// An empty prefix is rejected by validateFileName, so the default
	// output can never overwrite the input.
	if err := validateFileName("output_prefix", c.OutputPrefix); err != nil {
		return err
	}
	if strings.ContainsAny(c.Heading, "\r\n") {
		return fmt.Errorf("invalid heading: must be a single line")
	}
	return nil
}

func validateFileName(key, value string) error {
	if value == "" {
		return fmt.Errorf("invalid %s: must not be empty", key)
	}
	if strings.ContainsRune(value, '/') || strings.ContainsRune(value, filepath.Separator) {
		return fmt.Errorf("invalid %s: %q must not contain a path separator", key, value)
	}
	return nil
}

// GetConfigValue returns the environment variable if set, otherwise the config value.
func GetConfigValue(envKey, configValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return configValue
}
