package logdemo

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/oshokin/examples/internal/logger"
	"github.com/oshokin/examples/internal/service/common"
	"github.com/oshokin/examples/internal/version"
)

// Options controls the logging demo.
type Options struct {
	common.LogOptions

	// ItemDelay is the pause between simulated work items.
	ItemDelay time.Duration
}

const (
	// LoggerName names the demo logger and its log file.
	LoggerName = "LogDemo"

	// DefaultItemDelay is the pause between simulated work items.
	DefaultItemDelay = 100 * time.Millisecond

	// itemCount is the number of simulated work items.
	itemCount = 5
	// specialItem is the item that triggers a warning.
	specialItem = 3
)

// Run creates the demo logger and emits messages at every level.
func Run(ctx context.Context, opts *Options) (err error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.ItemDelay <= 0 {
		opts.ItemDelay = DefaultItemDelay
	}

	registry, level, err := common.OpenRegistry(&opts.LogOptions, logger.DebugLevel)
	if err != nil {
		return err
	}

	log, err := registry.Create(level, LoggerName)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	defer func() {
		err = multierr.Append(err, registry.Close())
	}()

	ctx = logger.ToContext(ctx, log.SugaredLogger)

	if err = printBanner(opts.Stdout, log.Path()); err != nil {
		return err
	}

	logger.DebugKV(ctx, "Build information", version.KV()...)

	logger.Debug(ctx, "This is a debug message")
	logger.Info(ctx, "Application started successfully")
	logger.Warn(ctx, "This is a warning message")
	logger.Error(ctx, "This is an error message")
	logger.Critical(ctx, "This is a critical message")

	logger.Infof(ctx, "Formatted message: value=%d, pi=%.2f, greeting='Hello %s'", 42, 3.14159, "World")

	for i := 1; i <= itemCount; i++ {
		logger.Infof(ctx, "Processing item %d/%d", i, itemCount)

		select {
		case <-ctx.Done():
			logger.Warn(ctx, "Context canceled, exiting")
			return nil
		case <-time.After(opts.ItemDelay):
		}

		if i == specialItem {
			logger.Warnf(ctx, "Item %d required special handling", i)
		}
	}

	logger.Info(ctx, "Demo completed successfully")

	return nil
}

func printBanner(w io.Writer, path string) error {
	title := fmt.Sprintf("Logging Demo - messages will appear in console and %s", path)

	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", len(title))); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}

	return nil
}
