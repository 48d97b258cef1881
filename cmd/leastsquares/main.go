// Command leastsquares fits a least squares model to a point file and prints the per point table,
// the derivation and the fitted equation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	leastsquares "github.com/aouyang1/go-leastsquares"
	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/family"
	"github.com/aouyang1/go-leastsquares/format"
	"github.com/aouyang1/go-leastsquares/solver"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	model      string
	input      string
	format     string
	solver     string
	plot       string
	precision  int
	outliers   float64
	asJSON     bool
	unified    bool
	crossCheck bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("leastsquares", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.StringVar(&cfg.model, "model", family.Linear.String(), "model family: linear, polynomial or multiple")
	fs.StringVar(&cfg.input, "input", "-", "point file, - reads stdin")
	fs.StringVar(&cfg.format, "format", "", "input format json, yaml or csv, defaults to the file extension")
	fs.StringVar(&cfg.solver, "solver", "gauss", "normal equation solver: gauss or lu")
	fs.StringVar(&cfg.plot, "plot", "", "optional html file to plot observed against fitted values")
	fs.IntVar(&cfg.precision, "precision", format.DefaultPrecision, "decimal places of every printed number")
	fs.Float64Var(&cfg.outliers, "outliers", 0, "flag residuals this many interquartile ranges outside the quartiles, 0 disables")
	fs.BoolVar(&cfg.asJSON, "json", false, "print the fit result as json")
	fs.BoolVar(&cfg.unified, "unified", false, "solve the simple linear model through the solver")
	fs.BoolVar(&cfg.crossCheck, "crosscheck", false, "compare the coefficients against a QR fit")
	fs.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	kind, err := family.Parse(cfg.model)
	if err != nil {
		return err
	}
	slv, err := solver.New(cfg.solver)
	if err != nil {
		return err
	}
	inputFormat, err := detectFormat(cfg.format, cfg.input)
	if err != nil {
		return err
	}

	in, err := openInput(cfg.input)
	if err != nil {
		return err
	}
	rows, err := loadRows(in, inputFormat, kind)
	in.Close()
	if err != nil {
		return fmt.Errorf("unable to load %s, %w", cfg.input, err)
	}
	logger.Debug().Str("input", cfg.input).Str("format", inputFormat).Int("rows", len(rows)).Msg("loaded points")

	e, err := leastsquares.New(&leastsquares.Options{
		Precision:     cfg.precision,
		Solver:        slv,
		UnifiedLinear: cfg.unified,
		CrossCheck:    cfg.crossCheck,
		OutlierFactor: cfg.outliers,
		Logger:        &logger,
	})
	if err != nil {
		return err
	}

	if _, err := e.Fit(kind, rows); err != nil {
		if trace := e.Trace(); trace != "" && !cfg.asJSON {
			fmt.Fprint(stdout, trace)
		}
		return err
	}
	res, err := e.Result()
	if err != nil {
		return err
	}

	if cfg.plot != "" {
		if err := writePlot(cfg.plot, res, rows); err != nil {
			return err
		}
		logger.Debug().Str("file", cfg.plot).Msg("wrote plot")
	}

	if cfg.asJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(out))
		return err
	}
	return printReport(stdout, res, kind, rows)
}

func writePlot(path string, res *leastsquares.Result, rows [][]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return leastsquares.PlotFit(file, res, rows)
}

func printReport(w io.Writer, res *leastsquares.Result, kind family.Kind, rows [][]float64) error {
	var grid *format.Grid
	switch kind {
	case family.Multiple:
		points, err := dataset.NewPoints3D(rows)
		if err != nil {
			return err
		}
		if grid, err = format.Table(points, kind, res.Precision); err != nil {
			return err
		}
	default:
		points, err := dataset.NewPoints2D(rows)
		if err != nil {
			return err
		}
		if grid, err = format.Table(points, kind, res.Precision); err != nil {
			return err
		}
	}
	grid.Render(w)

	eq, err := format.EquationTitled(res.Coefficients, kind, res.Precision)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", res.Trace(), eq); err != nil {
		return err
	}
	return res.TablePrint(w, "", "  ")
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("unable to fit points")
		os.Exit(1)
	}
}
