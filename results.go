package leastsquares

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/aouyang1/go-leastsquares/family"
	"github.com/aouyang1/go-leastsquares/format"
	"github.com/aouyang1/go-leastsquares/score"
	"github.com/aouyang1/go-leastsquares/trace"
	"github.com/cespare/xxhash/v2"
)

// Result is a serializeable record of one fit, its coefficients, derivation and scores.
type Result struct {
	Model        family.Kind   `json:"model"`
	N            int           `json:"n"`
	Precision    int           `json:"precision"`
	Coefficients []float64     `json:"coefficients"`
	Steps        trace.Trace   `json:"steps"`
	Scores       *score.Scores `json:"scores,omitempty"`

	// CrossCheckDelta is the largest absolute difference between the normal equation coefficients
	// and a QR fit of the design matrix. Nil unless Options.CrossCheck was set.
	CrossCheckDelta *float64 `json:"cross_check_delta,omitempty"`

	// Outliers indexes the points whose residuals fall outside the Tukey fences.
	Outliers []int `json:"outliers,omitempty"`

	// VIF is the variance inflation factor of the two predictors of a multiple fit.
	VIF float64 `json:"vif,omitempty"`
}

// Trace renders the derivation with the result's precision.
func (r *Result) Trace() string {
	if r == nil {
		return ""
	}
	return r.Steps.Render(r.Precision)
}

// Equation renders the fitted equation, e.g. y = 1.000000 + 2.000000x.
func (r *Result) Equation() (string, error) {
	if r == nil {
		return "", ErrNoResult
	}
	return format.Equation(r.Coefficients, r.Model, r.Precision)
}

// Predict evaluates the fitted equation. Linear and polynomial models take x, multiple takes x1, x2.
func (r *Result) Predict(x ...float64) (float64, error) {
	if r == nil {
		return 0, ErrNoResult
	}
	if len(r.Coefficients) != r.Model.Coefficients() {
		return 0, fmt.Errorf("%s model has %d coefficients, %w", r.Model, len(r.Coefficients), format.ErrCoefficientCount)
	}
	if len(x) != r.Model.Predictors() {
		return 0, fmt.Errorf("expected %d but got %d, %w", r.Model.Predictors(), len(x), ErrPredictorCount)
	}
	var x2 float64
	if len(x) > 1 {
		x2 = x[1]
	}
	return r.evaluate(x[0], x2), nil
}

func (r *Result) evaluate(x1, x2 float64) float64 {
	c := r.Coefficients
	switch r.Model {
	case family.Polynomial:
		return c[0] + c[1]*x1 + c[2]*x1*x1
	case family.Multiple:
		return c[0] + c[1]*x1 + c[2]*x2
	default:
		return c[0] + c[1]*x1
	}
}

// Fingerprint hashes the model, the rendered derivation and the exact coefficient bits. Two fits of
// identical points produce the same fingerprint.
func (r *Result) Fingerprint() uint64 {
	if r == nil {
		return 0
	}
	d := xxhash.New()
	_, _ = d.WriteString(r.Model.String())
	_, _ = d.WriteString(r.Trace())

	buf := make([]byte, 0, 8*len(r.Coefficients))
	for _, c := range r.Coefficients {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c))
	}
	_, _ = d.Write(buf)
	return d.Sum64()
}

// TablePrint writes a summary of the fit with each line starting with prefix and nested sections
// indented by indent.
func (r *Result) TablePrint(w io.Writer, prefix, indent string) error {
	if r == nil {
		return ErrNoResult
	}
	eq, err := r.Equation()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%sLeast Squares Fit:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sModel: %s\n", prefix, indentExpand(indent, 1), r.Model); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sPoints: %d\n", prefix, indentExpand(indent, 1), r.N); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sEquation: %s\n", prefix, indentExpand(indent, 1), eq); err != nil {
		return err
	}
	if r.CrossCheckDelta != nil {
		if _, err := fmt.Fprintf(w, "%s%sQR Delta: %.3e\n", prefix, indentExpand(indent, 1), *r.CrossCheckDelta); err != nil {
			return err
		}
	}
	if r.VIF > 0 {
		if _, err := fmt.Fprintf(w, "%s%sVIF: %.3f\n", prefix, indentExpand(indent, 1), r.VIF); err != nil {
			return err
		}
	}
	if len(r.Outliers) > 0 {
		if _, err := fmt.Fprintf(w, "%s%sOutliers: %v\n", prefix, indentExpand(indent, 1), r.Outliers); err != nil {
			return err
		}
	}

	if r.Scores != nil {
		if _, err := fmt.Fprintf(w, "%s%sScores:\n", prefix, indentExpand(indent, 0)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			prefix, indentExpand(indent, 1),
			r.Scores.MAPE,
			r.Scores.MSE,
			r.Scores.R2,
		); err != nil {
			return err
		}
	}

	return r.coefficientsTablePrint(w, prefix, indent)
}

func (r *Result) coefficientsTablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sCoefficients:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sLabel\tValue\t\n", prefix, indentExpand(indent, 1)); err != nil {
		return err
	}
	for i, c := range r.Coefficients {
		if _, err := fmt.Fprintf(tbl, "%s%s%s\t%s\t\n",
			prefix, indentExpand(indent, 1),
			coefficientLabel(i), format.Float(c, r.Precision)); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
