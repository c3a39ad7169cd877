package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexiusacademia/gosbeam/internal/config"
	"github.com/alexiusacademia/gosbeam/internal/version"
	"github.com/alexiusacademia/gosbeam/internal/watch"
)

var (
	cfg      = config.Default
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gosbeam",
	Short: "Simple Beam Statics Solver",
	Long: `gosbeam - Go Simple Beam Statics Solver

A CLI tool for the analysis of single-span beams on two supports.

This tool helps structural engineers compute:
  - Support reactions from point loads, couples, uniform and
    trapezoidal distributed loads
  - Shear force and bending moment at any section
  - Shear and moment diagrams (terminal, PNG, SVG, PDF)
  - Governing NSCP 2015 load combination

Beams are described in JSON or YAML files. See 'gosbeam solve --help'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			level, err := config.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			c.LogLevel = level
		}
		cfg = c

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosbeam v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Simple Beam Statics Solver                           ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Reactions, shear force and bending moment diagrams for")
		fmt.Println("  single-span beams on two supports.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Point loads, couples, uniform and trapezoidal loads")
		fmt.Println("    • Shear and moment at any section")
		fmt.Println("    • Terminal and image diagrams")
		fmt.Println("    • NSCP 2015 load combinations")
		fmt.Println()
		fmt.Println("  Use 'gosbeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
}

// defaultFloat sets a float flag from the configuration unless the user gave it
func defaultFloat(flags *pflag.FlagSet, name string, dst *float64, v float64) {
	if !flags.Changed(name) {
		*dst = v
	}
}

// defaultInt sets an int flag from the configuration unless the user gave it
func defaultInt(flags *pflag.FlagSet, name string, dst *int, v int) {
	if !flags.Changed(name) {
		*dst = v
	}
}

// runWatched runs fn once and, when watching, again after every change to
// path until interrupted. Failures while watching are reported and the
// watch goes on.
func runWatched(cmd *cobra.Command, path string, watching bool, fn func() error) error {
	if !watching {
		return fn()
	}
	if err := fn(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "  Watching %s for changes (Ctrl+C to stop)\n", path)
	return watch.File(cmd.Context(), path, watch.DefaultDebounce, fn)
}
