// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper

import (
	"fmt"

	"github.com/H0llyW00dzZ/exec-wrapper/src/wrapper/stub"
)

// Option configures a single Build, Write or Inspect call.
type Option func(*options)

// options is the per-call request state. It is never shared between calls.
type options struct {
	platform     Platform
	interpreter  string
	launcher     []byte
	launcherPath string
	noExec       bool
}

func newOptions(opts []Option) *options {
	o := &options{platform: HostPlatform()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithPlatform builds for p instead of the running host.
func WithPlatform(p Platform) Option {
	return func(o *options) { o.platform = p }
}

// WithInterpreter sets the interpreter named on the Windows shebang line.
// An empty path keeps the default from [DefaultInterpreter].
// POSIX artifacts ignore it.
func WithInterpreter(path string) Option {
	return func(o *options) { o.interpreter = path }
}

// WithLauncher uses blob as the native launcher for Windows artifacts.
// The blob is copied into the artifact, never modified.
func WithLauncher(blob []byte) Option {
	return func(o *options) { o.launcher = blob }
}

// WithLauncherFile reads the native launcher for Windows artifacts from path
// instead of the embedded asset. An empty path keeps the embedded asset.
func WithLauncherFile(path string) Option {
	return func(o *options) { o.launcherPath = path }
}

// WithExecBit sets whether Write adds the executable bits to the written
// file. The last WithExecBit or [WithoutExecBit] given wins.
func WithExecBit(enabled bool) Option {
	return func(o *options) { o.noExec = !enabled }
}

// WithoutExecBit makes Write leave the permission bits of the written file
// alone. It is shorthand for WithExecBit(false).
func WithoutExecBit() Option { return WithExecBit(false) }

// resolveInterpreter returns the configured interpreter or the default one.
func (o *options) resolveInterpreter() string {
	if o.interpreter != "" {
		return o.interpreter
	}
	return DefaultInterpreter()
}

// resolveLauncher returns the launcher blob for Windows artifacts.
func (o *options) resolveLauncher() ([]byte, error) {
	switch {
	case o.launcher != nil:
		return o.launcher, nil
	case o.launcherPath != "":
		blob, err := stub.LoadFile(o.launcherPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load launcher stub: %w", err)
		}
		return blob, nil
	default:
		blob, err := stub.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded launcher stub: %w", err)
		}
		return blob, nil
	}
}
