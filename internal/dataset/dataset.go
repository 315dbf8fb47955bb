// internal/dataset/dataset.go
// Package dataset loads benchmark tables from delimited text files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mwiater/benchplot/internal/speedup"
)

// Load reads the CSV file at path into a table named after the file.
func Load(path string) (speedup.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return speedup.Table{}, err
	}
	defer file.Close()

	return Read(file, filepath.Base(path))
}

// Read parses comma-separated benchmark data with a header row. Columns the
// table needs but the header lacks are left for speedup.CheckSchema to report.
func Read(r io.Reader, name string) (speedup.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return speedup.Table{}, fmt.Errorf("%s: empty file", name)
		}
		return speedup.Table{}, fmt.Errorf("%s: read header: %w", name, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := speedup.Table{Name: name, Columns: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return speedup.Table{}, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := reader.FieldPos(0)
		row, err := parseRow(header, record)
		if err != nil {
			return speedup.Table{}, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func parseRow(header, record []string) (speedup.Row, error) {
	var row speedup.Row
	for i, col := range header {
		value := strings.TrimSpace(record[i])
		switch col {
		case speedup.ColumnMethod:
			row.Method = value
		case speedup.ColumnNbProc:
			n, err := parseProcCount(value)
			if err != nil {
				return speedup.Row{}, fmt.Errorf("column %q: %w", col, err)
			}
			row.NbProc = n
		case speedup.ColumnTime:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return speedup.Row{}, fmt.Errorf("column %q: %w", col, err)
			}
			row.Time = f
		default:
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[col] = value
		}
	}
	return row, nil
}

// parseProcCount accepts integers and integral floats such as "4.0".
func parseProcCount(value string) (int, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid process count %q", value)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("process count %q is not an integer", value)
	}
	return int(f), nil
}

// Discover returns the sorted paths of the .csv files directly inside dir.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to read data dir %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
