/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/pedigreestore/datastore/ddb"
)

var allEnv = []string{
	EnvTable, EnvStore, EnvLookup, EnvIDIndex, EnvListen, EnvFunction,
	EnvRegion, EnvAccessKey, EnvSecretKey, EnvEndpoint, EnvLogLevel, EnvLogFormat,
}

// clearEnv blanks every variable Load reads; empty values are ignored.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allEnv {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, "empty.env", "")

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "pedigree-ai-backend-dev", cfg.Table)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "router", cfg.Server.Function)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, "empty.env", "")
	path := writeFile(t, "pedigree.yaml", `
table: pedigree-prod
store: memory
aws:
  region: eu-west-1
lookup:
  mode: scan
logging:
  level: debug
  format: console
`)
	t.Setenv(EnvTable, "pedigree-override")
	t.Setenv(EnvEndpoint, "http://localhost:8000")

	cfg, err := Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, "pedigree-override", cfg.Table)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "http://localhost:8000", cfg.AWS.Endpoint)
	assert.Equal(t, "scan", cfg.Lookup.Mode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Server.Listen, "unset keys keep their defaults")

	cc := cfg.ClientConfig()
	assert.Equal(t, "eu-west-1", cc.Region)
	assert.Equal(t, "http://localhost:8000", cc.Endpoint)
	assert.Len(t, cfg.StoreOptions(), 1)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already present, so drop
	// the blanks for the keys the file sets.
	require.NoError(t, os.Unsetenv(EnvRegion))
	require.NoError(t, os.Unsetenv(EnvLookup))
	t.Cleanup(func() {
		os.Unsetenv(EnvRegion)
		os.Unsetenv(EnvLookup)
	})

	envFile := writeFile(t, "test.env", "AWS_REGION=us-west-2\nPEDIGREE_LOOKUP=scan\n")

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.AWS.Region)
	assert.Equal(t, string(ddb.LookupScan), cfg.Lookup.Mode)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, "empty.env", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), envFile)
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "table: [unterminated"), envFile)
	assert.Error(t, err)

	_, err = Load("", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv(EnvStore, "postgres")
	_, err = Load("", envFile)
	assert.ErrorContains(t, err, `unknown store "postgres"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty table", mutate: func(c *Config) { c.Table = " " }, wantErr: "table name is required"},
		{name: "bad lookup", mutate: func(c *Config) { c.Lookup.Mode = "gsi" }, wantErr: `unknown lookup mode "gsi"`},
		{name: "index without name", mutate: func(c *Config) { c.Lookup.Index = "" }, wantErr: "lookup index name is required"},
		{name: "scan without index name", mutate: func(c *Config) { c.Lookup = LookupConfig{Mode: "scan"} }},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: `invalid log level "loud"`},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: `invalid log format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
