package calculator

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"go.uber.org/multierr"

	"github.com/oshokin/examples/internal/linalg"
	"github.com/oshokin/examples/internal/logger"
	"github.com/oshokin/examples/internal/service/common"
)

// Options controls the calculator demo.
type Options struct {
	common.LogOptions

	// RandSource seeds the random matrix. Nil uses the global source.
	RandSource rand.Source
}

// LoggerName names the calculator logger and its log file.
const LoggerName = "MathCalculator"

// Run creates the calculator logger and prints the vector and matrix report.
func Run(ctx context.Context, opts *Options) (err error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	registry, level, err := common.OpenRegistry(&opts.LogOptions, logger.InfoLevel)
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

	logger.Info(ctx, "Math Utils Calculator started")

	p := &printer{w: opts.Stdout}
	p.printf("Math Utils Calculator Demo\n")
	p.printf("==========================\n\n")

	if err = vectorReport(ctx, p); err != nil {
		return err
	}

	if err = matrixReport(ctx, p, linalg.RandomFrom(opts.RandSource)); err != nil {
		return err
	}

	if p.err != nil {
		return fmt.Errorf("write report: %w", p.err)
	}

	logger.Info(ctx, "Math Utils Calculator completed successfully")

	return nil
}

func vectorReport(ctx context.Context, p *printer) error {
	logger.Info(ctx, "Starting vector operations")

	v1 := linalg.NewVector3(1, 2, 3)
	v2 := linalg.NewVector3(4, 5, 6)

	logger.DebugKV(ctx, "Created vectors for demonstration", "v1", v1, "v2", v2)

	unit, err := v1.Normalized()
	if err != nil {
		return fmt.Errorf("normalize v1: %w", err)
	}

	p.printf("Vector Operations:\n")
	p.printf("v1 = %s\n", v1)
	p.printf("v2 = %s\n", v2)
	p.printf("v1 + v2 = %s\n", v1.Add(v2))
	p.printf("v1 - v2 = %s\n", v1.Sub(v2))
	p.printf("v1 * 2.0 = %s\n", v1.Scale(2))
	p.printf("|v1| = %.6g\n", v1.Magnitude())
	p.printf("v1 / |v1| = %s\n", unit)
	p.printf("v1 . v2 = %.6g\n", v1.Dot(v2))
	p.printf("v1 x v2 = %s\n", v1.Cross(v2))
	p.printf("|v1|^2 = %.6g\n", v1.SquaredNorm())
	p.printf("v1 .* v2 = %s\n\n", v1.CwiseProduct(v2))

	return nil
}

func matrixReport(ctx context.Context, p *printer, random linalg.Matrix3) error {
	logger.Info(ctx, "Starting matrix operations")

	v1 := linalg.NewVector3(1, 2, 3)
	identity := linalg.Identity()
	custom := linalg.NewMatrix3([3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	p.printf("Matrix Operations:\n")
	p.printf("Identity matrix:\n%s\n", identity)
	p.printf("Custom matrix:\n%s\n", custom)
	p.printf("Matrix * Vector:\n%s\n", custom.MulVec(v1))
	p.printf("Matrix transpose:\n%s\n", custom.Transpose())
	p.printf("Matrix determinant: %.6g\n", custom.Determinant())
	p.printf("Matrix trace: %.6g\n", custom.Trace())
	p.printf("Matrix norm: %.6g\n\n", custom.Norm())

	if _, err := custom.Inverse(); err != nil {
		logger.WarnKV(ctx, "Custom matrix has no inverse", "error", err)
	}

	invertible := linalg.Identity().Scale(2)

	inverse, err := invertible.Inverse()
	if err != nil {
		return fmt.Errorf("invert matrix: %w", err)
	}

	p.printf("Invertible matrix:\n%s\n", invertible)
	p.printf("Its inverse:\n%s\n", inverse)

	p.printf("Random Matrix:\n%s\n", random)
	p.printf("Random matrix eigenvalues:\n")

	values, err := random.Eigenvalues()
	if err != nil {
		logger.Errorf(ctx, "Error computing eigenvalues: %v", err)
		p.printf("Error computing eigenvalues: %v\n", err)

		return nil
	}

	for i, v := range values {
		p.printf("  λ%d = %.6g\n", i+1, v)
	}

	// Only real parts are printed; say so when that hides something.
	if complexValues, err := random.ComplexEigenvalues(); err == nil {
		for i, v := range complexValues {
			if imag(v) != 0 {
				logger.WarnKV(ctx, "Eigenvalue has an imaginary part", "index", i+1, "imag", imag(v))
			}
		}
	}

	return nil
}

// printer remembers the first write error so the report can be written without per-line checks.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
