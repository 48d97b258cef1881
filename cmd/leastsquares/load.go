package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/family"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

var ErrUnknownFormat = errors.New("unknown input format")

// detectFormat resolves the input format from the flag or, when empty, the file extension.
func detectFormat(name, path string) (string, error) {
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch strings.ToLower(name) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatCSV, "", "txt":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("got %q, %w", name, ErrUnknownFormat)
	}
}

// loadRows reads raw observation rows. JSON and YAML accept either a list of number lists or a list
// of objects keyed x, y or x1, x2, y. CSV skips a leading header line.
func loadRows(r io.Reader, format string, kind family.Kind) ([][]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return decodeRows(data, kind, json.Unmarshal)
	case FormatYAML:
		return decodeRows(data, kind, yaml.Unmarshal)
	case FormatCSV:
		return readCSV(data)
	default:
		return nil, fmt.Errorf("got %q, %w", format, ErrUnknownFormat)
	}
}

func decodeRows(data []byte, kind family.Kind, unmarshal func([]byte, any) error) ([][]float64, error) {
	var rows [][]float64
	if err := unmarshal(data, &rows); err == nil {
		return rows, nil
	}

	if kind == family.Multiple {
		var points []dataset.Point3D
		if err := unmarshal(data, &points); err != nil {
			return nil, fmt.Errorf("unable to decode points, %w", err)
		}
		rows = make([][]float64, 0, len(points))
		for _, p := range points {
			rows = append(rows, []float64{p.X1, p.X2, p.Y})
		}
		return rows, nil
	}

	var points []dataset.Point2D
	if err := unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("unable to decode points, %w", err)
	}
	rows = make([][]float64, 0, len(points))
	for _, p := range points {
		rows = append(rows, []float64{p.X, p.Y})
	}
	return rows, nil
}

func readCSV(data []byte) ([][]float64, error) {
	rd := csv.NewReader(bytes.NewReader(data))
	rd.TrimLeadingSpace = true
	rd.FieldsPerRecord = -1
	rd.Comment = '#'

	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read csv, %w", err)
	}

	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				if i == 0 {
					row = nil
					break
				}
				return nil, fmt.Errorf("line %d column %d, %w", i+1, j+1, err)
			}
			row[j] = v
		}
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
