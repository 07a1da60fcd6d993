// Package cli is the host boundary of vitrix: it decodes bond matrices,
// calls the dynamics engine, and translates engine errors into records and
// exit codes.
package cli

import (
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	input     string
	output    string
	precision int
	logFile   string
	verbose   bool
}

// NewRootCmd creates the vitrix command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "vitrix",
		Short: "Local affine and non-affine strain of particle neighborhoods",
		Long: `vitrix computes the best-fit affine tensor J and the non-affine residual
D²_min of particle neighborhoods from bond vectors at two times.

Input is a stream of JSON objects, one per neighborhood:

  {"id": "p17", "initial": [[1,0],[0,1],[1,1]], "final": [[2,0],[0,2],[2,2]]}

One JSON result object is written per input object.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.input, "input", "i", "-", "input file of JSON neighborhoods (- for stdin)")
	flags.StringVarP(&opts.output, "output", "o", "-", "output file for JSON results (- for stdout)")
	flags.IntVar(&opts.precision, "precision", 64, "floating-point precision of the computation (32 or 64)")
	flags.StringVar(&opts.logFile, "log-file", "", "also write logs to this rotating file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(newOperationCmd(opts, opAffine))
	rootCmd.AddCommand(newOperationCmd(opts, opNonaffine))
	rootCmd.AddCommand(newOperationCmd(opts, opStrain))

	return rootCmd
}
