package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/oshokin/examples/internal/service/common"
	"github.com/oshokin/examples/internal/service/logdemo"
	"github.com/oshokin/examples/internal/version"
)

var (
	// options collects flag values for the demo.
	options logdemo.Options

	// rootCmd represents the base command for the logging demo.
	rootCmd = &cobra.Command{
		Use:   "log-demo",
		Short: "Log messages at every level to the console and LogDemo.log.",
		Long: heredoc.Doc(`
			Creates a logger named LogDemo with a colorized console sink and a file
			sink (LogDemo.log, truncated on every run), then logs one message per
			level, a formatted message and a few simulated work items.

			Errors and critical messages are flushed to the file immediately.
			Exits with status 1 if the logger cannot be created.`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options.Stdout = cmd.OutOrStdout()
			options.Stderr = cmd.ErrOrStderr()

			return logdemo.Run(ctx, &options)
		},
	}
)

// Execute runs the log-demo CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	common.BindLogFlags(rootCmd.Flags(), &options.LogOptions)
	rootCmd.Flags().DurationVar(&options.ItemDelay, "item-delay", logdemo.DefaultItemDelay,
		"pause between simulated work items")
}
