package leastsquares

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-leastsquares/format"
	"github.com/aouyang1/go-leastsquares/metrics"
	"github.com/aouyang1/go-leastsquares/solver"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidPrecision     = errors.New("precision must not be negative")
	ErrInvalidOutlierFactor = errors.New("outlier factor must not be negative")
)

// Options configures an Engine.
type Options struct {
	// Precision is the number of decimal places of every number in the trace and equation.
	// Zero selects format.DefaultPrecision.
	Precision int

	// Solver solves the polynomial and multiple normal equations. Defaults to solver.Gauss.
	Solver solver.Solver

	// UnifiedLinear routes the simple linear fit through Solver instead of the closed form.
	UnifiedLinear bool

	// CrossCheck refits every model with QR on the design matrix and records the largest
	// coefficient difference in Result.CrossCheckDelta.
	CrossCheck bool

	// OutlierFactor enables residual outlier detection when positive. A residual is flagged when it
	// lies more than OutlierFactor interquartile ranges outside the residual quartiles.
	OutlierFactor float64

	// Logger receives debug events for every fit. Defaults to a disabled logger.
	Logger *zerolog.Logger

	// Metrics records fit counts and durations when set.
	Metrics *metrics.Collector
}

// NewDefaultOptions returns six decimal places, Gaussian elimination and the closed form simple
// linear fit.
func NewDefaultOptions() *Options {
	nop := zerolog.Nop()
	return &Options{
		Precision: format.DefaultPrecision,
		Solver:    solver.NewGauss(),
		Logger:    &nop,
	}
}

// Validate fills in defaults and returns a copy that is safe to keep.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.Precision < 0 {
		return nil, fmt.Errorf("got %d, %w", o.Precision, ErrInvalidPrecision)
	}

	if o.OutlierFactor < 0 {
		return nil, fmt.Errorf("got %f, %w", o.OutlierFactor, ErrInvalidOutlierFactor)
	}

	opt := *o
	if opt.Precision == 0 {
		opt.Precision = format.DefaultPrecision
	}
	if opt.Solver == nil {
		opt.Solver = solver.NewGauss()
	}
	if opt.Logger == nil {
		nop := zerolog.Nop()
		opt.Logger = &nop
	}
	return &opt, nil
}
