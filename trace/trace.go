// Package trace records the derivation of a fit as structured entries and renders them as text.
// Entries carry raw numbers; formatting only happens in Render.
package trace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aouyang1/go-leastsquares/format"
)

// Type selects how an entry is rendered.
type Type string

const (
	// TypeText is a literal line, an empty text renders a blank line
	TypeText Type = "text"
	// TypeFormula is a symbolic formula, "label = template"
	TypeFormula Type = "formula"
	// TypeSubstitution is a formula with its numbers filled in, "label = template % args"
	TypeSubstitution Type = "substitution"
	// TypeValue is a named result, "label = value"
	TypeValue Type = "value"
	// TypeMatrix is a numeric matrix, one tab separated line per row
	TypeMatrix Type = "matrix"
)

// Arg is one number substituted into a template.
type Arg struct {
	Value   float64 `json:"value"`
	Integer bool    `json:"integer,omitempty"`
}

// Num is a real valued argument rendered with the trace precision.
func Num(v float64) Arg {
	return Arg{Value: v}
}

// Int is a count rendered without decimals.
func Int(n int) Arg {
	return Arg{Value: float64(n), Integer: true}
}

func (a Arg) render(precision int) string {
	if a.Integer {
		return strconv.FormatInt(int64(a.Value), 10)
	}
	return format.Float(a.Value, precision)
}

// Entry is one step of a derivation.
type Entry struct {
	Type     Type        `json:"type"`
	Label    string      `json:"label,omitempty"`
	Template string      `json:"template,omitempty"`
	Args     []Arg       `json:"args,omitempty"`
	Value    float64     `json:"value,omitempty"`
	Matrix   [][]float64 `json:"matrix,omitempty"`
}

func Text(s string) Entry {
	return Entry{Type: TypeText, Template: s}
}

func Blank() Entry {
	return Entry{Type: TypeText}
}

func Formula(label, formula string) Entry {
	return Entry{Type: TypeFormula, Label: label, Template: formula}
}

// Substitution fills each %s of template with the matching argument.
func Substitution(label, template string, args ...Arg) Entry {
	return Entry{Type: TypeSubstitution, Label: label, Template: template, Args: args}
}

func Value(label string, v float64) Entry {
	return Entry{Type: TypeValue, Label: label, Value: v}
}

// Matrix copies rows so later changes to the source do not leak into the trace.
func Matrix(rows [][]float64) Entry {
	cp := make([][]float64, len(rows))
	for i, row := range rows {
		cp[i] = append([]float64(nil), row...)
	}
	return Entry{Type: TypeMatrix, Matrix: cp}
}

// Render writes the entry, newline terminated.
func (e Entry) Render(precision int) string {
	switch e.Type {
	case TypeText:
		return e.Template + "\n"
	case TypeFormula:
		return e.Label + " = " + e.Template + "\n"
	case TypeSubstitution:
		args := make([]any, len(e.Args))
		for i, a := range e.Args {
			args[i] = a.render(precision)
		}
		return e.Label + " = " + fmt.Sprintf(e.Template, args...) + "\n"
	case TypeValue:
		return e.Label + " = " + format.Float(e.Value, precision) + "\n"
	case TypeMatrix:
		var sb strings.Builder
		for _, row := range e.Matrix {
			for _, v := range row {
				sb.WriteString(format.Float(v, precision))
				sb.WriteByte('\t')
			}
			sb.WriteByte('\n')
		}
		return sb.String()
	default:
		return ""
	}
}

// Trace is an ordered derivation.
type Trace []Entry

// Append adds entries to the end of the trace.
func (t *Trace) Append(entries ...Entry) {
	*t = append(*t, entries...)
}

// Render concatenates every entry.
func (t Trace) Render(precision int) string {
	var sb strings.Builder
	for _, e := range t {
		sb.WriteString(e.Render(precision))
	}
	return sb.String()
}

// Lookup returns the value of the last TypeValue entry with the given label.
func (t Trace) Lookup(label string) (float64, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Type == TypeValue && t[i].Label == label {
			return t[i].Value, true
		}
	}
	return 0, false
}
