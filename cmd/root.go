package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bmatsuo/tlisp/lisp"
	"github.com/bmatsuo/tlisp/lisp/lisplib"
	"github.com/bmatsuo/tlisp/parser"
	"github.com/spf13/cobra"
)

var (
	rootDebug    bool
	rootNoStdlib bool
	rootLogLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tlisp",
	Short: "A small lisp interpreter",
	Long: `A small lisp interpreter with curried closures and concurrent
evaluation of isolated programs.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false,
		"Print values in debug form, tagged with their types")
	rootCmd.PersistentFlags().BoolVar(&rootNoStdlib, "no-stdlib", false,
		"Do not load the standard library")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "warn",
		"Minimum level of diagnostic logs written to stderr (debug, info, warn, error)")
}

// newInterpreter returns an interpreter configured by the persistent flags.
func newInterpreter() (*lisp.Interpreter, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(rootLogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level: %q", rootLogLevel)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if rootNoStdlib {
		return lisp.NewInterpreter(
			lisp.WithReader(parser.NewReader()),
			lisp.WithLogger(logger),
		), nil
	}
	return lisplib.NewInterpreter(lisp.WithLogger(logger)), nil
}
