package cmd

import (
	"github.com/bmatsuo/tlisp/repl"
	"github.com/spf13/cobra"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ip, err := newInterpreter()
		if err != nil {
			return err
		}
		return repl.RunRepl(ip, replPrompt, repl.WithDebug(rootDebug))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "> ",
		"Prompt printed before each line of input")
}
