// Package linearmodel fits ordinary least squares directly on the design matrix with a QR
// factorization. It never forms the normal equations, which makes it an independent check on them.
package linearmodel

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/family"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// OLSOptions represents input options to run the OLS Regression
type OLSOptions struct {
	// FitIntercept adds a constant 1.0 feature as the first column if set to true
	FitIntercept bool
}

// Validate runs basic validation on OLS options
func (o *OLSOptions) Validate() (*OLSOptions, error) {
	if o == nil {
		o = NewDefaultOLSOptions()
	}
	return o, nil
}

// NewDefaultOLSOptions returns a default set of OLS Regression options
func NewDefaultOLSOptions() *OLSOptions {
	return &OLSOptions{
		FitIntercept: true,
	}
}

// OLSRegression computes ordinary least squares using QR factorization
type OLSRegression struct {
	opt       *OLSOptions
	coef      []float64
	intercept float64
}

// NewOLSRegression initializes an ordinary least squares model ready for fitting
func NewOLSRegression(opt *OLSOptions) (*OLSRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &OLSRegression{
		opt: opt,
	}, nil
}

// Design builds the feature matrix of a family without the intercept column, x for linear,
// x and x² for polynomial, x1 and x2 for multiple, along with the response column.
func Design[P dataset.Observation](points []P, kind family.Kind) (*mat.Dense, *mat.Dense, error) {
	if len(points) == 0 {
		return nil, nil, dataset.ErrEmptyInput
	}
	if !kind.Valid() {
		return nil, nil, fmt.Errorf("%s, %w", kind, family.ErrUnknownFamily)
	}
	nFeat := kind.Coefficients() - 1
	x := mat.NewDense(len(points), nFeat, nil)
	y := mat.NewDense(len(points), 1, nil)
	for i, p := range points {
		x1, x2, yi := p.Coords()
		x.Set(i, 0, x1)
		switch kind {
		case family.Polynomial:
			x.Set(i, 1, x1*x1)
		case family.Multiple:
			x.Set(i, 1, x2)
		}
		y.Set(i, 0, yi)
	}
	return x, y, nil
}

// Fit the model according to the given training data
func (o *OLSRegression) Fit(x, y mat.Matrix) error {
	if o.opt == nil {
		return ErrNoOptions
	}
	if x == nil {
		return ErrNoTrainingMatrix
	}
	if y == nil {
		return ErrNoTargetMatrix
	}
	m, n := x.Dims()

	ym, _ := y.Dims()
	if ym != m {
		return fmt.Errorf("training data has %d rows and target has %d row, %w", m, ym, ErrTargetLenMismatch)
	}

	if o.opt.FitIntercept {
		x = withOnes(x)
		_, n = x.Dims()
	}
	if m < n {
		return fmt.Errorf("%d observations for %d features, %w", m, n, ErrRankDeficient)
	}

	qr := new(mat.QR)
	qr.Factorize(x)

	c := mat.NewDense(n, 1, nil)
	if err := qr.SolveTo(c, false, y); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return fmt.Errorf("condition number %g, %w", float64(cond), ErrRankDeficient)
		}
		return err
	}
	coef := mat.Col(nil, 0, c)

	if o.opt.FitIntercept {
		o.intercept = coef[0]
		o.coef = coef[1:]
	} else {
		o.coef = coef
	}
	return nil
}

// Coefficients returns the intercept followed by the coefficients, a0..a(k-1).
func (o *OLSRegression) Coefficients() []float64 {
	c := make([]float64, 0, len(o.coef)+1)
	if o.opt.FitIntercept {
		c = append(c, o.intercept)
	}
	return append(c, o.coef...)
}

func withOnes(x mat.Matrix) *mat.Dense {
	m, n := x.Dims()
	ones := make([]float64, m)
	floats.AddConst(1.0, ones)

	out := mat.NewDense(m, n+1, nil)
	out.SetCol(0, ones)
	out.Slice(0, m, 1, n+1).(*mat.Dense).Copy(x)
	return out
}
