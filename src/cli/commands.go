// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/exec-wrapper/src/wrapper"
	"github.com/spf13/cobra"
)

// newBuildCmd creates the build command, which prints the launcher bytes or
// saves them with --output. Saved files are not marked executable.
func newBuildCmd(r *root) *cobra.Command {
	var (
		flags  targetFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "build [flags] -- PROGRAM [ARGS...]",
		Short: "Print the launcher for PROGRAM and its leading arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := r.options(cmd, &flags)
			if err != nil {
				return err
			}

			data, err := wrapper.Build(args, opts...)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o666); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			r.log.Printf("%s", successColor.Sprintf("Built %d bytes into %s", len(data), output))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to OUTPUT_FILE (default: stdout)")

	return cmd
}

// newWriteCmd creates the write command, which installs a launcher at DEST.
func newWriteCmd(r *root) *cobra.Command {
	var (
		flags  targetFlags
		noExec bool
	)

	cmd := &cobra.Command{
		Use:   "write [flags] DEST -- PROGRAM [ARGS...]",
		Short: "Write the launcher for PROGRAM to DEST and mark it executable",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := r.options(cmd, &flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("no-exec") {
				opts = append(opts, wrapper.WithExecBit(!noExec))
			}

			dest := args[0]
			if err := wrapper.Write(dest, args[1:], opts...); err != nil {
				return err
			}

			r.log.Printf("%s %s", successColor.Sprint("Wrote launcher"), identifierColor.Sprint(dest))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noExec, "no-exec", false, "leave the permission bits of DEST unchanged")

	return cmd
}

// newSuffixCmd creates the suffix command.
func newSuffixCmd(r *root) *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "suffix",
		Short: "Print the file suffix launchers need on the target platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := r.cfg.Platform()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("platform") {
				p = wrapper.ParsePlatform(platform)
				if p == wrapper.Unsupported {
					return fmt.Errorf("%w: %q", wrapper.ErrUnsupportedPlatform, platform)
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.ExecutableSuffix())
			return err
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "target platform (default: host)")

	return cmd
}

// newInspectCmd creates the inspect command.
func newInspectCmd(r *root) *cobra.Command {
	var (
		flags  targetFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [flags] -- PROGRAM [ARGS...]",
		Short: "Describe the layout of the launcher for PROGRAM",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := r.options(cmd, &flags)
			if err != nil {
				return err
			}

			report, err := wrapper.Inspect(args, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := report.JSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			_, err = fmt.Fprint(out, report.RenderTable())
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}
