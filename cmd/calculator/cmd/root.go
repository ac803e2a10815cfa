package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/oshokin/examples/internal/service/calculator"
	"github.com/oshokin/examples/internal/service/common"
	"github.com/oshokin/examples/internal/version"
)

var (
	// options collects flag values for the calculator.
	options calculator.Options

	// rootCmd represents the base command for the calculator demo.
	rootCmd = &cobra.Command{
		Use:   "calculator",
		Short: "Print a report of 3D vector and matrix operations.",
		Long: heredoc.Doc(`
			Demonstrates the linalg package: vector arithmetic, dot and cross
			products, matrix products, transpose, determinant, inverse, trace,
			norm and the eigenvalues of a random matrix.

			Progress is logged by the MathCalculator logger to the console and
			to MathCalculator.log. Exits with status 1 if the logger cannot be created.`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options.Stdout = cmd.OutOrStdout()
			options.Stderr = cmd.ErrOrStderr()

			return calculator.Run(ctx, &options)
		},
	}
)

// Execute runs the calculator CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	common.BindLogFlags(rootCmd.Flags(), &options.LogOptions)
}
