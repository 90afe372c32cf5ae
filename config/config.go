/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads runtime settings from a .env file, an optional YAML
// file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/suparena/pedigreestore/datastore/ddb"
	"github.com/suparena/pedigreestore/logging"
)

// Storage backends.
const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

// DefaultTable is the table used when none is configured.
const DefaultTable = "pedigree-ai-backend-dev"

// Environment variables read by Load.
const (
	EnvTable     = "PEDIGREE_TABLE"
	EnvStore     = "PEDIGREE_STORE"
	EnvLookup    = "PEDIGREE_LOOKUP"
	EnvIDIndex   = "PEDIGREE_ID_INDEX"
	EnvListen    = "PEDIGREE_LISTEN"
	EnvFunction  = "PEDIGREE_FUNCTION"
	EnvRegion    = "AWS_REGION"
	EnvAccessKey = "AWS_ACCESS_KEY"
	EnvSecretKey = "AWS_SECRET_KEY"
	EnvEndpoint  = "DYNAMODB_ENDPOINT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// Config holds all runtime settings.
type Config struct {
	Table string `yaml:"table"`
	// Store is "dynamodb" or "memory".
	Store string `yaml:"store"`

	AWS     AWSConfig     `yaml:"aws"`
	Lookup  LookupConfig  `yaml:"lookup"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// AWSConfig selects the DynamoDB account and endpoint.
type AWSConfig struct {
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"`
}

// LookupConfig selects how family members are located by id.
type LookupConfig struct {
	Mode  string `yaml:"mode"` // index, scan
	Index string `yaml:"index"`
}

// ServerConfig configures the local HTTP server and the Lambda binding.
type ServerConfig struct {
	Listen   string `yaml:"listen"`
	Function string `yaml:"function"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default settings.
func DefaultConfig() *Config {
	return &Config{
		Table: DefaultTable,
		Store: StoreDynamoDB,
		Lookup: LookupConfig{
			Mode:  string(ddb.LookupIndex),
			Index: ddb.DefaultIDIndex,
		},
		Server: ServerConfig{
			Listen:   ":8080",
			Function: "router",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatJSON,
		},
	}
}

// Load builds the configuration. envFiles are loaded into the process
// environment first without overriding variables that are already set; when
// none are given, ./.env is loaded if it exists. A non-empty path names a
// YAML file whose values replace the defaults. Environment variables win
// over both.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			envFiles = []string{".env"}
		}
	}
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	overrides := []struct {
		env    string
		target *string
	}{
		{EnvTable, &c.Table},
		{EnvStore, &c.Store},
		{EnvLookup, &c.Lookup.Mode},
		{EnvIDIndex, &c.Lookup.Index},
		{EnvListen, &c.Server.Listen},
		{EnvFunction, &c.Server.Function},
		{EnvRegion, &c.AWS.Region},
		{EnvAccessKey, &c.AWS.AccessKey},
		{EnvSecretKey, &c.AWS.SecretKey},
		{EnvEndpoint, &c.AWS.Endpoint},
		{EnvLogLevel, &c.Logging.Level},
		{EnvLogFormat, &c.Logging.Format},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.env); ok && v != "" {
			*o.target = v
		}
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Table) == "" {
		errs = append(errs, errors.New("table name is required"))
	}
	switch c.Store {
	case StoreDynamoDB, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown store %q", c.Store))
	}
	if _, err := ddb.ParseLookupMode(c.Lookup.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.Lookup.Mode == string(ddb.LookupIndex) && c.Lookup.Index == "" {
		errs = append(errs, errors.New("lookup index name is required in index mode"))
	}
	if _, err := zapcore.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// ClientConfig returns the DynamoDB client settings.
func (c *Config) ClientConfig() ddb.ClientConfig {
	return ddb.ClientConfig{
		Region:    c.AWS.Region,
		AccessKey: c.AWS.AccessKey,
		SecretKey: c.AWS.SecretKey,
		Endpoint:  c.AWS.Endpoint,
	}
}

// StoreOptions returns the datastore options for the configured lookup mode.
func (c *Config) StoreOptions() []ddb.Option {
	if c.Lookup.Mode == string(ddb.LookupScan) {
		return []ddb.Option{ddb.WithScanLookup()}
	}
	return []ddb.Option{ddb.WithIDIndex(c.Lookup.Index)}
}
