// Package leastsquares fits simple linear, degree two polynomial and two predictor linear models by
// solving the least squares normal equations, recording every formula and substitution on the way.
package leastsquares

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/family"
	"github.com/aouyang1/go-leastsquares/linearmodel"
	mat_ "github.com/aouyang1/go-leastsquares/mat"
	"github.com/aouyang1/go-leastsquares/normaleq"
	"github.com/aouyang1/go-leastsquares/score"
	"github.com/aouyang1/go-leastsquares/stats"
	"github.com/aouyang1/go-leastsquares/sums"
	"github.com/aouyang1/go-leastsquares/trace"
	"gonum.org/v1/gonum/floats"
)

const (
	outlierLowerPerc = 0.25
	outlierUpperPerc = 0.75
)

// Engine runs fits and keeps the derivation of the most recent one. An Engine must not be used
// by concurrent fit calls; use one Engine per goroutine.
type Engine struct {
	opt    *Options
	steps  trace.Trace
	result *Result
}

// New creates an engine from the given options. A nil opt uses NewDefaultOptions.
func New(opt *Options) (*Engine, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Engine{opt: opt}, nil
}

// FitLinear fits y = a0 + a1·x and returns [a0, a1].
func (e *Engine) FitLinear(points []dataset.Point2D) ([]float64, error) {
	return fitPoints(e, family.Linear, points)
}

// FitPolynomial fits y = a0 + a1·x + a2·x² and returns [a0, a1, a2].
func (e *Engine) FitPolynomial(points []dataset.Point2D) ([]float64, error) {
	return fitPoints(e, family.Polynomial, points)
}

// FitMultiple fits y = a0 + a1·x1 + a2·x2 and returns [a0, a1, a2].
func (e *Engine) FitMultiple(points []dataset.Point3D) ([]float64, error) {
	return fitPoints(e, family.Multiple, points)
}

// Fit converts raw rows, 2 columns for linear and polynomial or 3 for multiple, and runs the
// family's fit.
func (e *Engine) Fit(kind family.Kind, rows [][]float64) ([]float64, error) {
	if e == nil || e.opt == nil {
		return nil, ErrNoOptions
	}
	e.steps = nil
	e.result = nil

	start := time.Now()
	switch kind {
	case family.Linear, family.Polynomial:
		points, err := dataset.NewPoints2D(rows)
		if err != nil {
			err = fmt.Errorf("unable to read %s points, %w", kind, err)
			e.opt.Metrics.Observe(kind.String(), start, err)
			return nil, err
		}
		return fitPoints(e, kind, points)
	case family.Multiple:
		points, err := dataset.NewPoints3D(rows)
		if err != nil {
			err = fmt.Errorf("unable to read %s points, %w", kind, err)
			e.opt.Metrics.Observe(kind.String(), start, err)
			return nil, err
		}
		return fitPoints(e, kind, points)
	default:
		return nil, fmt.Errorf("got %s, %w", kind, family.ErrUnknownFamily)
	}
}

// Trace returns the rendered derivation of the last fit. A failed fit leaves the steps taken
// before the failure.
func (e *Engine) Trace() string {
	if e == nil || e.opt == nil {
		return ""
	}
	return e.steps.Render(e.opt.Precision)
}

// Steps returns a copy of the structured derivation of the last fit.
func (e *Engine) Steps() trace.Trace {
	if e == nil {
		return nil
	}
	return slices.Clone(e.steps)
}

// Result returns the last successful fit.
func (e *Engine) Result() (*Result, error) {
	if e == nil || e.result == nil {
		return nil, ErrNoResult
	}
	return e.result, nil
}

func fitPoints[P dataset.Observation](e *Engine, kind family.Kind, points []P) ([]float64, error) {
	if e == nil || e.opt == nil {
		return nil, ErrNoOptions
	}
	e.steps = nil
	e.result = nil

	start := time.Now()
	res, err := derive(e.opt, kind, points, &e.steps)
	e.opt.Metrics.Observe(kind.String(), start, err)
	if err != nil {
		return nil, err
	}
	e.result = res
	return slices.Clone(res.Coefficients), nil
}

// derive runs one fit, appending every step to tr.
func derive[P dataset.Observation](opt *Options, kind family.Kind, points []P, tr *trace.Trace) (*Result, error) {
	n := len(points)
	if err := dataset.Validate(n, kind.MinPoints()); err != nil {
		return nil, fmt.Errorf("unable to fit %s model, %w", kind, err)
	}
	opt.Logger.Debug().Str("model", kind.String()).Int("n", n).Msg("fitting least squares model")

	tbl, err := sums.Accumulate(points, sums.Required(kind))
	if err != nil {
		return nil, fmt.Errorf("unable to accumulate sums, %w", err)
	}
	traceSums(tr, kind, tbl, n)

	var coef []float64
	if kind == family.Linear && !opt.UnifiedLinear {
		coef, err = closedForm(tr, tbl, n)
	} else {
		coef, err = solveSystem(opt, tr, kind, tbl, n)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		Model:        kind,
		N:            n,
		Precision:    opt.Precision,
		Coefficients: coef,
		Steps:        *tr,
	}

	fitted := make([]float64, n)
	x1s := make([]float64, n)
	x2s := make([]float64, n)
	for i, p := range points {
		x1s[i], x2s[i], _ = p.Coords()
		fitted[i] = res.evaluate(x1s[i], x2s[i])
	}
	observed := dataset.Responses(points)
	res.Scores, err = score.NewScores(fitted, observed)
	if err != nil {
		return nil, fmt.Errorf("unable to score %s fit, %w", kind, err)
	}

	if opt.OutlierFactor > 0 {
		residuals := floats.SubTo(make([]float64, n), observed, fitted)
		res.Outliers = stats.Outliers(residuals, outlierLowerPerc, outlierUpperPerc, opt.OutlierFactor)
	}
	if kind == family.Multiple {
		vif, err := stats.VarianceInflation(x1s, x2s)
		if err == nil && !math.IsInf(vif, 0) {
			res.VIF = vif
		}
	}

	if opt.CrossCheck {
		delta, err := crossCheck(kind, points, coef)
		if err != nil {
			opt.Logger.Debug().Err(err).Str("model", kind.String()).Msg("skipping qr cross check")
		} else {
			res.CrossCheckDelta = &delta
		}
	}

	opt.Logger.Debug().
		Str("model", kind.String()).
		Floats64("coefficients", coef).
		Msg("fit complete")
	return res, nil
}

func traceSums(tr *trace.Trace, kind family.Kind, tbl sums.Table, n int) {
	tr.Append(trace.Text("Sums of the points:"), trace.Blank())
	for _, k := range sums.Required(kind) {
		tr.Append(trace.Value(k.String(), tbl[k]))
	}
	tr.Append(trace.Substitution(normaleq.Count, "%s", trace.Int(n)), trace.Blank())
}

// closedForm solves the simple linear fit directly, tracing each formula before its substitution.
func closedForm(tr *trace.Trace, tbl sums.Table, n int) ([]float64, error) {
	sx, sy, sxy, sxx := tbl[sums.X], tbl[sums.Y], tbl[sums.XY], tbl[sums.XSq]

	tr.Append(
		trace.Text("Substituting into the equations for a1 and a0:"),
		trace.Blank(),
		trace.Formula("a1", "[n(Σxy) - (Σx)(Σy)] / [n(Σx²) - (Σx)²]"),
		trace.Substitution("a1", "[%s(%s) - (%s)(%s)] / [%s(%s) - (%s)²]",
			trace.Int(n), trace.Num(sxy), trace.Num(sx), trace.Num(sy),
			trace.Int(n), trace.Num(sxx), trace.Num(sx)),
	)

	sol, err := normaleq.SolveLinear(tbl, n)
	if err != nil {
		return nil, fmt.Errorf("unable to solve linear model, %w", err)
	}

	tr.Append(
		trace.Value("a1", sol.A1),
		trace.Blank(),
		trace.Formula("a0", "(Σy/n) - a1(Σx/n)"),
		trace.Substitution("a0", "(%s/%s) - %s(%s/%s)",
			trace.Num(sy), trace.Int(n), trace.Num(sol.A1), trace.Num(sx), trace.Int(n)),
		trace.Value("a0", sol.A0),
	)
	return sol.Coefficients(), nil
}

// solveSystem builds the augmented normal equations and hands them to the configured solver.
func solveSystem(opt *Options, tr *trace.Trace, kind family.Kind, tbl sums.Table, n int) ([]float64, error) {
	system, err := normaleq.Build(kind, tbl, n)
	if err != nil {
		return nil, fmt.Errorf("unable to build normal equations, %w", err)
	}

	k := kind.Coefficients()
	tr.Append(trace.Text("System of equations for "+joinLabels(k, " and ")+":"), trace.Blank())
	for _, row := range normaleq.Layout(kind) {
		tr.Append(trace.Text(symbolicEquation(row)))
	}
	tr.Append(trace.Blank(), trace.Matrix(mat_.ToArray(system)), trace.Blank())
	tr.Append(trace.Text("Solving the system of equations for "+joinLabels(k, ", ")+":"), trace.Blank())

	coef, err := opt.Solver.Solve(system)
	if err != nil {
		return nil, fmt.Errorf("unable to solve %s normal equations, %w", kind, err)
	}
	for i, c := range coef {
		tr.Append(trace.Value(coefficientLabel(i), c))
	}
	return coef, nil
}

func crossCheck[P dataset.Observation](kind family.Kind, points []P, coef []float64) (float64, error) {
	x, y, err := linearmodel.Design(points, kind)
	if err != nil {
		return 0, err
	}
	model, err := linearmodel.NewOLSRegression(nil)
	if err != nil {
		return 0, err
	}
	if err := model.Fit(x, y); err != nil {
		return 0, err
	}
	return floats.Distance(coef, model.Coefficients(), math.Inf(1)), nil
}

func coefficientLabel(i int) string {
	return "a" + strconv.Itoa(i)
}

// joinLabels lists a0..a(k-1), using last before the final label.
func joinLabels(k int, last string) string {
	labels := make([]string, k)
	for i := range labels {
		labels[i] = coefficientLabel(i)
	}
	if k < 2 {
		return strings.Join(labels, "")
	}
	return strings.Join(labels[:k-1], ", ") + last + labels[k-1]
}

// symbolicEquation renders one layout row as "a0·n + a1·Σx = Σy".
func symbolicEquation(row []string) string {
	lhs := row[:len(row)-1]
	terms := make([]string, len(lhs))
	for i, sym := range lhs {
		terms[i] = coefficientLabel(i) + "·" + sym
	}
	return strings.Join(terms, " + ") + " = " + row[len(row)-1]
}
