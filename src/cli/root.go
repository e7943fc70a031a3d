// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/exec-wrapper/src/config"
	"github.com/H0llyW00dzZ/exec-wrapper/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/exec-wrapper/src/logger"
	"github.com/H0llyW00dzZ/exec-wrapper/src/wrapper"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

// targetFlags holds the flags shared by every command that builds a wrapper.
type targetFlags struct {
	platform    string
	interpreter string
	launcher    string
}

// register adds the target flags to cmd.
func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.platform, "platform", "p", "", "target platform: posix, windows or a GOOS name (default: host)")
	cmd.Flags().StringVarP(&f.interpreter, "interpreter", "i", "", "interpreter recorded in Windows launchers")
	cmd.Flags().StringVarP(&f.launcher, "launcher", "l", "", "native launcher stub to use instead of the embedded one")
}

// root carries state shared by the subcommands of one invocation.
type root struct {
	log        logger.Logger
	configPath string
	cfg        *config.Config
}

// options merges configuration defaults with the flags given on cmd.
func (r *root) options(cmd *cobra.Command, f *targetFlags) ([]wrapper.Option, error) {
	opts := r.cfg.Options()

	if cmd.Flags().Changed("platform") {
		p := wrapper.ParsePlatform(f.platform)
		if p == wrapper.Unsupported {
			return nil, fmt.Errorf("%w: %q", wrapper.ErrUnsupportedPlatform, f.platform)
		}
		opts = append(opts, wrapper.WithPlatform(p))
	}
	if f.interpreter != "" {
		opts = append(opts, wrapper.WithInterpreter(f.interpreter))
	}
	if f.launcher != "" {
		opts = append(opts, wrapper.WithLauncherFile(f.launcher))
	}

	return opts, nil
}

// NewRootCommand creates the execwrap command tree. Messages are reported
// through log; artifacts and reports go to the command's output stream.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	r := &root{log: log}

	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName(),
		Short: "Generate launchers that exec another program with fixed arguments",
		Long: `Generates small launcher files that run another program with a
fixed list of leading arguments, followed by whatever arguments the launcher
itself receives.

On POSIX systems the launcher is a bash script. On Windows it is a native
launcher stub followed by a zipped Python forwarding script.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(r.configPath)
			if err != nil {
				return err
			}
			r.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&r.configPath, "config", "c", "", "configuration file (default: $"+config.EnvConfigFile+")")

	rootCmd.AddCommand(
		newBuildCmd(r),
		newWriteCmd(r),
		newSuffixCmd(r),
		newInspectCmd(r),
	)

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}
