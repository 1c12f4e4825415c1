// Package main provides the CLI entry point for fastaheader.
package main

import (
	"io"
	"os"

	"fastaheader/internal/config"
	"fastaheader/internal/orchestrator"
	"fastaheader/internal/output"

	"github.com/spf13/cobra"
)

// version can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

const longHelp = `Rename fasta headers of assembly.fasta files created by Unicycler
following MSP's style.

Headers are renamed following the next style:
SWXXXX_method_length_topology.
The "method" tag provides information regarding the methodology used in
the lab for the assembly. An example of a header's name following MSP's
style is the following:

 isolate                           length  topology
 |----|                            |-----| |------|
>SW2315_n2760-R136-NB73-L1000-96NB_5000000_circular
        |---------method---------|

Notice that the information provided by method is connected with dashes.

Isolate's name and method are provided by the name of the directory that
contains assembly.fasta. The length and topology are obtained from the
original header created by Unicycler. The renamed fasta sequences are saved
in a file that follows the next style: SWXXXX_method_assembly.fasta. For
example, the above header would be in a file named as follows:

SW2315_n2760-R136-NB73-L1000-96NB_assembly.fasta

If no output path is given, the directory of the input fasta file is used.`

func newRootCmd(outCfg output.Config) *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:           "fastaheader -i <assembly.fasta> [-o <output-dir>]",
		Short:         "Rename Unicycler assembly headers to the MSP naming style",
		Long:          longHelp,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outCfg.Verbose = opts.Verbose
			out := output.New(outCfg)

			summary, err := orchestrator.Run(opts, out)
			if err != nil {
				return err
			}

			out.Info("%s", summary.PrintSummary())
			return nil
		},
	}

	cmd.SetOut(outCfg.Writer)
	cmd.SetErr(outCfg.ErrWriter)

	flags := cmd.Flags()
	flags.StringVarP(&opts.InputPath, "input", "i", "", "Path to input fasta file (required)")
	flags.StringVarP(&opts.OutputDir, "output", "o", "", "Path to output directory")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log the derived prefix and header counts")
	flags.BoolVarP(&opts.DryRun, "dry-run", "n", false, "Report the output file and header count without writing")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// run executes the command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	outCfg := output.Config{
		Writer:    stdout,
		ErrWriter: stderr,
		IsTTY:     output.IsTerminal(stderr),
	}

	cmd := newRootCmd(outCfg)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		output.New(outCfg).Error("Error: %v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
