// Package main provides the CLI entry point for xltex.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ukaji3/xltex-go/internal/config"
	"github.com/ukaji3/xltex-go/pkg/xltex"
	"github.com/ukaji3/xltex-go/pkg/xltex/latex"
	"github.com/ukaji3/xltex-go/pkg/xltex/output"
	"github.com/ukaji3/xltex-go/pkg/xltex/parser"
)

var (
	// Version is set at build time
	Version = "dev"
)

var (
	configPath string
	outputPath string
	sheetName  string
	rangeRef   string
	printArea  bool
	variant    string
	envName    string
	blankCell  string
	escape     bool
	format     string
	pretty     bool
	copyOut    bool
	gridInput  bool
	debug      bool
	interval   string
	noColor    bool
)

var (
	colorError = color.New(color.FgRed, color.Bold)
	colorMuted = color.New(color.FgWhite, color.Faint)
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xltex [input.xlsx|grid.json|grid.yaml]",
		Short: "Render a spreadsheet selection as a LaTeX table",
		Long: `xltex reads a range of cells from an Excel file, including bold, italic,
color, strikethrough, sub/superscript and underline formatting, and prints
it as a LaTeX tabular or array environment.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultConfigPath(), "Config file path")
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&sheetName, "sheet", "", "Sheet to read (default: active sheet)")
	flags.StringVarP(&rangeRef, "range", "r", "", "Selection in A1 notation (default: data region)")
	flags.BoolVar(&printArea, "print-area", false, "Use the sheet's print area when no range is given")
	flags.StringVar(&variant, "variant", "text", "Rendering variant: text, math, preview")
	flags.StringVar(&envName, "env", "", "Table environment: tabular, array (default: from variant)")
	flags.StringVar(&blankCell, "blank", "", "Text for empty cells (default: from variant)")
	flags.BoolVar(&escape, "escape", false, "Escape LaTeX special characters in cell text")
	flags.StringVar(&format, "format", "text", "Output format: text, json, yaml")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVar(&copyOut, "copy", false, "Copy the rendered output to the clipboard")
	flags.BoolVar(&gridInput, "grid", false, "Treat the input as a JSON/YAML grid document")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored messages")

	watchCmd := &cobra.Command{
		Use:   "watch [input.xlsx]",
		Short: "Re-render whenever the workbook changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&interval, "interval", "1s", "Polling interval")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xltex %s\n", Version)
		},
	}

	rootCmd.AddCommand(watchCmd, versionCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := buildOptions(cmd, cfg)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())

	var result *xltex.Result
	if gridInput {
		result, err = renderGrid(inputPath, opts)
	} else {
		result, err = xltex.Render(inputPath, opts)
	}
	if err != nil {
		return err
	}
	logger.Debug("rendered selection", "sheet", result.SheetName, "rows", len(result.Document.Rows))

	return emit(cmd.OutOrStdout(), result, cfg, logger)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := buildOptions(cmd, cfg)
	if err != nil {
		return err
	}
	every, err := cfg.WatchInterval()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := &xltex.Watcher{
		Path:     args[0],
		Options:  opts,
		Interval: every,
		Logger:   logger,
		OnRender: func(r *xltex.Result) {
			if err := emit(cmd.OutOrStdout(), r, cfg, logger); err != nil {
				reportError(cmd.ErrOrStderr(), err)
			}
		},
		OnError: func(err error) {
			reportError(cmd.ErrOrStderr(), err)
		},
	}

	logger.Info("watching workbook", "path", args[0], "interval", every)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Render.Variant = variant
	}
	if flags.Changed("env") {
		cfg.Render.Environment = envName
	}
	if flags.Changed("blank") {
		cfg.Render.BlankCell = &blankCell
	}
	if flags.Changed("escape") {
		cfg.Render.Escape = escape
	}
	if flags.Changed("print-area") {
		cfg.Render.PrintArea = printArea
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty = pretty
	}
	if flags.Changed("copy") {
		cfg.Output.Copy = copyOut
	}
	if flags.Changed("interval") {
		cfg.Watch.Interval = interval
	}
	if noColor {
		color.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func buildOptions(cmd *cobra.Command, cfg *config.Config) (xltex.Options, error) {
	v, err := xltex.ParseVariant(cfg.Render.Variant)
	if err != nil {
		return xltex.Options{}, err
	}

	opts := xltex.Options{
		Variant:      v,
		Sheet:        sheetName,
		Range:        rangeRef,
		UsePrintArea: cfg.Render.PrintArea,
		BlankCell:    cfg.Render.BlankCell,
		Escape:       cfg.Render.Escape,
	}
	if cfg.Render.Environment != "" {
		env, ok := latex.ParseEnvironment(cfg.Render.Environment)
		if !ok {
			return xltex.Options{}, fmt.Errorf("invalid environment: %s (must be tabular or array)", cfg.Render.Environment)
		}
		opts.Environment = env
	}
	return opts, nil
}

func renderGrid(path string, opts xltex.Options) (*xltex.Result, error) {
	gridFormat, err := parser.GridFormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", xltex.ErrFileNotFound, path)
		}
		return nil, err
	}
	grid, err := parser.DecodeGrid(data, gridFormat)
	if err != nil {
		return nil, err
	}
	return xltex.RenderGrid(grid, opts), nil
}

// emit writes the result in the configured format and copies it when asked.
func emit(w io.Writer, result *xltex.Result, cfg *config.Config, logger *slog.Logger) error {
	var data []byte
	var err error
	switch cfg.Output.Format {
	case "json":
		data, err = output.ToJSON(result, cfg.Output.Pretty)
	case "yaml":
		data, err = output.ToYAML(result)
	default:
		data = []byte(result.Output)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprintln(w, string(data))
	}

	if cfg.Output.Copy {
		if err := output.Copy(result.Output); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		logger.Info("copied to clipboard", "bytes", len(result.Output))
	}
	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// reportError prints err, with a dedicated message for selections that
// are not a single rectangular range.
func reportError(w io.Writer, err error) {
	if xltex.IsInvalidSelection(err) {
		colorError.Fprintln(w, "Please select a single range")
		colorMuted.Fprintln(w, err.Error())
		return
	}
	colorError.Fprintf(w, "error: %v\n", err)
}
