/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/pedigreestore/config"
)

func TestInLambdaRuntime(t *testing.T) {
	t.Setenv(envLambdaRuntime, "")
	assert.False(t, inLambdaRuntime())

	t.Setenv(envLambdaRuntime, "127.0.0.1:9001")
	assert.True(t, inLambdaRuntime())
}

func TestRootWithoutArgumentsPrintsHelp(t *testing.T) {
	t.Setenv(envLambdaRuntime, "")
	t.Setenv(config.EnvStore, config.StoreMemory)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "serve")
	assert.Contains(t, out.String(), "lambda")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "pedigree version")
}
