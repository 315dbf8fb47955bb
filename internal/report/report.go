// internal/report/report.go
// Package report drives chart generation over a directory of benchmark files.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/k0kubun/pp"
	"github.com/mwiater/benchplot/internal/chart"
	"github.com/mwiater/benchplot/internal/dataset"
	"github.com/mwiater/benchplot/internal/logging"
	"github.com/mwiater/benchplot/internal/speedup"
	"golang.org/x/sync/errgroup"
)

// Outcome statuses.
const (
	StatusSaved   = "saved"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Options captures the inputs for a report run.
type Options struct {
	DataDir      string
	ImgDir       string
	Kinds        []string
	GroupBy      string
	Workers      int
	AnalysisPath string
	Chart        chart.Options
	Debug        bool
}

// Outcome is the result of rendering one chart kind for one file (or group).
type Outcome struct {
	File   string `json:"file"`
	Group  string `json:"group,omitempty"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
	Output string `json:"output,omitempty"`
	Err    error  `json:"-"`
}

// Summary collects every outcome of a run in discovery order.
type Summary struct {
	Files    []string
	Outcomes []Outcome
	Analysis Analysis
}

// Count returns how many outcomes carry status.
func (s Summary) Count(status string) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

type fileResult struct {
	outcomes []Outcome
	analysis []FileAnalysis
}

// Generate renders the requested chart kinds for every CSV file in
// opts.DataDir. A file that cannot be charted is reported and skipped; only
// failures to prepare the output directory or read the data directory abort
// the run.
func Generate(ctx context.Context, opts Options, out io.Writer) (Summary, error) {
	if len(opts.Kinds) == 0 {
		opts.Kinds = chart.Kinds
	}
	for _, kind := range opts.Kinds {
		if kind != chart.KindSpeedup && kind != chart.KindTimes {
			return Summary{}, fmt.Errorf("unknown chart kind %q", kind)
		}
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Chart.Format == "" {
		opts.Chart.Format = chart.DefaultOptions().Format
	}

	if err := os.MkdirAll(opts.ImgDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("unable to create image dir %s: %w", opts.ImgDir, err)
	}

	files, err := dataset.Discover(opts.DataDir)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No CSV files found in %s\n", opts.DataDir)
		logging.LogEvent("[REPORT] no CSV files found in %s", opts.DataDir)
		return Summary{}, nil
	}

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = fileResult{outcomes: []Outcome{{File: filepath.Base(path), Status: StatusFailed, Err: err}}}
				return nil
			}
			results[i] = processFile(path, opts)
			return nil
		})
	}
	_ = g.Wait()

	summary := Summary{Files: files}
	for i, path := range files {
		name := filepath.Base(path)
		fmt.Fprintf(out, "Processing %s...\n", name)
		for _, o := range results[i].outcomes {
			printOutcome(out, o)
		}
		summary.Outcomes = append(summary.Outcomes, results[i].outcomes...)
		summary.Analysis.Files = append(summary.Analysis.Files, results[i].analysis...)
	}

	if opts.AnalysisPath != "" {
		if err := writeAnalysisJSON(opts.AnalysisPath, summary.Analysis); err != nil {
			return summary, err
		}
		fmt.Fprintf(out, "Analysis JSON written to %s\n", opts.AnalysisPath)
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func processFile(path string, opts Options) fileResult {
	name := filepath.Base(path)
	logging.LogFileEvent("processing", name, "", path)

	table, err := dataset.Load(path)
	if err != nil {
		logging.LogFileEvent("error", name, "", err)
		return fileResult{outcomes: []Outcome{{File: name, Status: StatusFailed, Err: err}}}
	}

	groups, err := speedup.Partition(table, opts.GroupBy)
	if err != nil {
		return fileResult{outcomes: []Outcome{classify(name, "", "", err)}}
	}

	var res fileResult
	for _, group := range groups {
		suffix := ""
		if group.Column != "" {
			suffix = fmt.Sprintf("%s-%s", group.Column, group.Value)
		}
		for _, kind := range opts.Kinds {
			outcome, fa := renderKind(name, suffix, kind, group.Table, opts)
			res.outcomes = append(res.outcomes, outcome)
			if fa != nil {
				res.analysis = append(res.analysis, *fa)
			}
		}
	}
	return res
}

func renderKind(name, suffix, kind string, table speedup.Table, opts Options) (Outcome, *FileAnalysis) {
	title := chart.Title(name)
	if suffix != "" {
		title = fmt.Sprintf("%s (%s)", title, suffix)
	}
	output := chart.OutputPath(opts.ImgDir, name, kind, suffix, opts.Chart.Format)

	var fa *FileAnalysis
	var renderErr error
	switch kind {
	case chart.KindSpeedup:
		speedups, err := speedup.Compute(table)
		if err != nil {
			return classify(name, suffix, kind, err), nil
		}
		if opts.Debug {
			logging.LogDebug("%s %s speedups:\n%s", name, suffix, pp.Sprint(speedups))
		}
		base, _ := speedup.Baseline(table)
		fa = &FileAnalysis{File: name, Group: suffix, Baseline: base.Time, Speedups: speedups}

		p, err := chart.SpeedupChart(title, table, speedups)
		if err == nil {
			err = chart.Save(p, output, opts.Chart)
		}
		renderErr = err
	case chart.KindTimes:
		series, err := speedup.TimeSeries(table)
		if err != nil {
			return classify(name, suffix, kind, err), nil
		}
		var baseline *speedup.Row
		if base, err := speedup.Baseline(table); err == nil {
			baseline = &base
		}
		p, err := chart.TimesChart(title, table, series, baseline)
		if err == nil {
			err = chart.Save(p, output, opts.Chart)
		}
		renderErr = err
	}

	if renderErr != nil {
		logging.LogFileEvent("error", name, kind, renderErr)
		return Outcome{File: name, Group: suffix, Kind: kind, Status: StatusFailed, Err: renderErr}, fa
	}
	logging.LogFileEvent("saved", name, kind, output)
	return Outcome{File: name, Group: suffix, Kind: kind, Status: StatusSaved, Output: output}, fa
}

func classify(name, group, kind string, err error) Outcome {
	status := StatusFailed
	stage := "error"
	if speedup.IsSkippable(err) {
		status = StatusSkipped
		stage = "skip"
	}
	logging.LogFileEvent(stage, name, kind, err)
	return Outcome{File: name, Group: group, Kind: kind, Status: status, Err: err}
}
