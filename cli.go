package humps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath string
	verbose    bool
}

// app loads the config and binds the App to the command's streams.
func (g *globalFlags) app(cmd *cobra.Command) (*App, error) {
	app, err := New(cmd.Context(), g.configPath)
	if err != nil {
		return nil, err
	}
	app.stdin = cmd.InOrStdin()
	app.stdout = cmd.OutOrStdout()
	app.stderr = cmd.ErrOrStderr()
	app.verbose = g.verbose
	if g.configPath != "" {
		app.logVerbose("loaded config %s", g.configPath)
	}
	return app, nil
}

// CLI builds and returns the root cobra command.
func CLI() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "humps",
		Short: "Initialism-aware camelCase / snake_case converter for strings and payload keys",
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to config YAML file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose logging output")

	root.AddCommand(
		convertCmd(g),
		keysCmd(g),
		diffCmd(g),
		verifyCmd(g),
		batchExportCmd(g),
		versionCmd(),
	)
	return root
}

func addDocumentFlags(cmd *cobra.Command, input, format *string) {
	cmd.Flags().StringVar(input, "input", "", "Path to the JSON or YAML document (- for stdin, falls back to config input)")
	cmd.Flags().StringVar(format, "format", "", "Document format: json or yaml (default: by file extension)")
}

func convertCmd(g *globalFlags) *cobra.Command {
	var opt ConvertOption
	cmd := &cobra.Command{
		Use:   "convert WORD...",
		Short: "Convert words to the target case style",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			opt.Words = args
			return app.Convert(opt)
		},
	}
	cmd.Flags().StringVar(&opt.To, "to", "", "Target style: camel, pascal, snake or kebab")
	cmd.Flags().BoolVar(&opt.Plain, "plain", false, "Ignore initialisms")
	cmd.Flags().StringVar(&opt.Separator, "separator", "", "Word separator for snake style (default \"_\")")
	return cmd
}

func keysCmd(g *globalFlags) *cobra.Command {
	var opt KeysOption
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Convert every key of a JSON or YAML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			return app.Keys(cmd.Context(), opt)
		},
	}
	addDocumentFlags(cmd, &opt.Input, &opt.Format)
	cmd.Flags().StringVar(&opt.To, "to", "", "Target style: camel, pascal, snake or kebab")
	cmd.Flags().StringVar(&opt.Output, "output", "", "Write the result to this file instead of stdout")
	return cmd
}

func diffCmd(g *globalFlags) *cobra.Command {
	var (
		opt      DiffOption
		colorArg string
	)
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how converting the keys would change a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			switch colorArg {
			case "auto":
				opt.Color = !color.NoColor
			case "always":
				opt.Color = true
			case "never":
				opt.Color = false
			default:
				return usageError("use auto, always or never", "invalid --color %q", colorArg)
			}
			return app.Diff(cmd.Context(), opt)
		},
	}
	addDocumentFlags(cmd, &opt.Input, &opt.Format)
	cmd.Flags().StringVar(&opt.To, "to", "", "Target style: camel, pascal, snake or kebab")
	cmd.Flags().StringVar(&colorArg, "color", "auto", "Colorize the diff: auto, always or never")
	return cmd
}

func verifyCmd(g *globalFlags) *cobra.Command {
	var opt VerifyOption
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every key of a document round-trips through camelCase",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			return app.Verify(cmd.Context(), opt)
		},
	}
	addDocumentFlags(cmd, &opt.Input, &opt.Format)
	return cmd
}

func batchExportCmd(g *globalFlags) *cobra.Command {
	var opt ExportOption
	cmd := &cobra.Command{
		Use:   "batch-export",
		Short: "Export an AWS Batch job definition with its keys converted",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := g.app(cmd)
			if err != nil {
				return err
			}
			return app.Export(cmd.Context(), opt)
		},
	}
	cmd.Flags().StringVar(&opt.JobDefinitionName, "job-definition-name", "", "Name of the AWS Batch job definition to fetch")
	cmd.Flags().StringVar(&opt.Region, "region", "", "AWS region (falls back to config, then AWS_REGION)")
	cmd.Flags().StringVar(&opt.To, "to", "", "Target style (default camel)")
	cmd.Flags().StringVar(&opt.Output, "output", "", "Write the result to this file instead of stdout")
	_ = cmd.MarkFlagRequired("job-definition-name")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "humps %s\n", Version)
		},
	}
}

// Run executes the CLI with signal handling.
func Run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := CLI()
	cmd.SetContext(ctx)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return exitCode(cmd.ExecuteContext(ctx), cmd.ErrOrStderr())
}

// exitCode reports err on w and maps it to a process exit code.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	var derr *DiffError
	if errors.As(err, &derr) {
		return 1
	}
	var cerr CommandError
	if errors.As(err, &cerr) {
		fmt.Fprintf(w, "Error: %s\n", strings.TrimSpace(err.Error()))
		if cerr.Suggestion != "" {
			fmt.Fprintln(w, formatSuggestion(cerr.Suggestion))
		}
		return cerr.ExitStatus()
	}
	fmt.Fprintf(w, "Error: %s\n", err)
	return 1
}
