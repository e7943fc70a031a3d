// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/H0llyW00dzZ/exec-wrapper/src/config"
	"github.com/H0llyW00dzZ/exec-wrapper/src/logger"
	verpkg "github.com/H0llyW00dzZ/exec-wrapper/src/version"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestVersionInit(t *testing.T) {
	assert.NotEmpty(t, version, "version should not be empty after init")
	if version != verpkg.Version {
		t.Logf("version set by ldflags: %s (package version: %s)", version, verpkg.Version)
	}
}

func TestRunReportsErrors(t *testing.T) {
	color.NoColor = true
	t.Setenv(config.EnvConfigFile, "")

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"execwrap", "suffix", "--platform", "plan9"}

	var out, errOut bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&out)
	log.SetErrorOutput(&errOut)

	assert.Equal(t, 1, run(context.Background(), log))
	assert.Contains(t, errOut.String(), "Error: wrapper: unsupported platform")
	assert.Empty(t, out.String())
}
