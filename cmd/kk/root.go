package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kk-editor/kk/internal/app"
	"github.com/kk-editor/kk/internal/input/mode"
)

// newRootCmd creates the kk command and its subcommands.
func newRootCmd() *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:           "kk",
		Short:         "A modal terminal editor",
		Long:          `kk is a modal terminal editor whose keys are bound to commands in a TOML or YAML file and reloaded as the file changes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default $KK_CONFIG or the user config dir)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&opts.NoWatch, "no-watch", false, "Do not reload the configuration when it changes")

	rootCmd.AddCommand(newVersionCmd(), newKeysCmd(&opts), newCheckCmd(&opts))
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kk %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built: %s\n", date)
		},
	}
}

// offline loads the editor without a terminal, logging to stderr.
func offline(opts app.Options, stderr io.Writer) (*app.Editor, error) {
	opts.NoWatch = true
	opts.LogOutput = stderr
	if opts.LogLevel == "" {
		opts.LogLevel = "error"
	}
	return app.New(opts)
}

func newKeysCmd(opts *app.Options) *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the loaded key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			modes := mode.All()
			if modeName != "" {
				m, err := mode.Parse(modeName)
				if err != nil {
					return err
				}
				modes = []mode.Mode{m}
			}

			editor, err := offline(*opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer editor.Close()

			out := cmd.OutOrStdout()
			for _, m := range modes {
				fmt.Fprintf(out, "[%s]\n", m)
				for _, line := range editor.Keymap().Bindings(m) {
					fmt.Fprintf(out, "  %s\n", line)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "Only list the bindings of this mode")
	return cmd
}

func newCheckCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and its bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			editor, err := offline(*opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer editor.Close()

			out := cmd.OutOrStdout()
			path := editor.Config().Path()
			if path == "" {
				path = "(defaults)"
			}
			report := editor.Report()
			for _, o := range report.Overrides {
				fmt.Fprintf(out, "override: %s: %s %q: %v replaced by %v\n",
					o.Binding.Source, o.Binding.Mode, o.Binding.Keys, o.Previous, o.Binding.Commands)
			}
			for _, err := range report.Errors {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			if !report.OK() {
				return fmt.Errorf("%s: %d invalid bindings", path, len(report.Errors))
			}
			fmt.Fprintf(out, "%s: ok (%d commands)\n", path, editor.Registry().Count())
			return nil
		},
	}
}
