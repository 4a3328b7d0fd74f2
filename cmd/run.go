package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file ...]",
	Short: "Run lisp code",
	Long: `Run lisp code supplied via the command line or a file.

Files are split into their top-level forms which are evaluated in order.  An
error in one form is reported and evaluation continues with the next form.
Text outside of any form is ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ip, err := newInterpreter()
		if err != nil {
			return err
		}
		if !runExpression {
			for _, path := range args {
				if err := ip.LoadScript(path); err != nil {
					return err
				}
			}
			return nil
		}
		failed := false
		for _, expr := range args {
			v, err := ip.EvalString(expr)
			if err != nil {
				ip.PrintError(err)
				failed = true
				continue
			}
			if runPrint {
				fmt.Println(ip.Format(v, rootDebug))
			}
		}
		if failed {
			return errors.New("evaluation failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
