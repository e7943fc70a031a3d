// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/exec-wrapper/src/cli"
	"github.com/H0llyW00dzZ/exec-wrapper/src/logger"
	verpkg "github.com/H0llyW00dzZ/exec-wrapper/src/version"
	"github.com/fatih/color"
)

var version string // set by ldflags or defaults to imported version

var errorColor = color.New(color.FgRed)

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, log logger.Logger) int {
	if err := cli.Execute(ctx, version, log); err != nil {
		log.Errorf("%s", errorColor.Sprintf("Error: %v", err))
		return 1
	}
	return 0
}

func main() {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, log)
	stop()
	os.Exit(code)
}
