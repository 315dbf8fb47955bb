// internal/chart/chart.go
// Package chart renders speedup and performance line charts with gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/benchplot/internal/speedup"
	"github.com/mwiater/benchplot/internal/util"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	// KindSpeedup selects the speedup chart.
	KindSpeedup = "speedup"
	// KindTimes selects the raw timing chart.
	KindTimes = "times"

	baseDPI = 96
)

// Kinds lists every chart kind in rendering order.
var Kinds = []string{KindTimes, KindSpeedup}

// Options controls image size and encoding.
type Options struct {
	Width  vg.Length
	Height vg.Length
	Scale  float64
	Format string
}

// DefaultOptions mirrors a 700x500 canvas exported at scale 3.
func DefaultOptions() Options {
	return Options{
		Width:  7 * vg.Inch,
		Height: 5 * vg.Inch,
		Scale:  3,
		Format: "png",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	o.Format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(o.Format), "."))
	if o.Format == "" {
		o.Format = def.Format
	}
	return o
}

// Title turns "matrix_power2.csv" into "Matrix Power2".
func Title(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	return util.TitleCase(strings.ReplaceAll(base, "_", " "))
}

// OutputPath names the image for csvName. suffix distinguishes groups of a
// partitioned table and is empty otherwise.
func OutputPath(imgDir, csvName, kind, suffix, format string) string {
	base := strings.TrimSuffix(filepath.Base(csvName), filepath.Ext(csvName))
	if suffix != "" {
		base += "_" + suffix
	}
	if kind == KindSpeedup {
		base += "_speedup"
	}
	if format == "" {
		format = DefaultOptions().Format
	}
	return filepath.Join(imgDir, base+"."+format)
}

// SpeedupChart plots one speedup curve per parallel method against the ideal
// linear speedup.
func SpeedupChart(title string, table speedup.Table, speedups map[string][]speedup.Point) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("Speedup: %s", title), "Speedup (T_seq / T_parallel)")

	lo, hi := speedup.ProcRange(table)
	ideal, err := plotter.NewLine(plotter.XYs{
		{X: float64(lo), Y: float64(lo)},
		{X: float64(hi), Y: float64(hi)},
	})
	if err != nil {
		return nil, err
	}
	ideal.Color = color.Black
	ideal.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(ideal)
	p.Legend.Add("Ideal Speedup", ideal)

	for i, method := range table.ParallelMethods() {
		points := speedups[method]
		pts := make(plotter.XYs, len(points))
		for j, pt := range points {
			pts[j] = plotter.XY{X: float64(pt.NbProc), Y: pt.Speedup}
		}
		if err := addSeries(p, i, method, pts); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// TimesChart plots the raw timings of every parallel method. When baseline is
// non-nil a horizontal reference line marks the sequential time.
func TimesChart(title string, table speedup.Table, series map[string][]speedup.TimePoint, baseline *speedup.Row) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("Performance: %s", title), "Time (s)")

	if baseline != nil {
		lo, hi := speedup.ProcRange(table)
		seq, err := plotter.NewLine(plotter.XYs{
			{X: float64(lo), Y: baseline.Time},
			{X: float64(hi), Y: baseline.Time},
		})
		if err != nil {
			return nil, err
		}
		seq.Color = color.RGBA{R: 220, A: 255}
		seq.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(seq)
		p.Legend.Add("Sequential", seq)
	}

	for i, method := range table.ParallelMethods() {
		points := series[method]
		pts := make(plotter.XYs, len(points))
		for j, pt := range points {
			pts[j] = plotter.XY{X: float64(pt.NbProc), Y: pt.Time}
		}
		if err := addSeries(p, i, method, pts); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Save writes p to path, creating parent directories as needed. PNG output is
// rasterized at the scaled DPI; other formats are chosen by file extension.
func Save(p *plot.Plot, path string, opts Options) error {
	opts = opts.withDefaults()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("unable to create directory for %s: %w", path, err)
	}

	if opts.Format != "png" {
		if err := p.Save(opts.Width, opts.Height, path); err != nil {
			return fmt.Errorf("unable to save chart %s: %w", path, err)
		}
		return nil
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(opts.Width, opts.Height),
		vgimg.UseDPI(int(baseDPI*opts.Scale)),
	)
	p.Draw(draw.New(canvas))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create chart %s: %w", path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("unable to encode chart %s: %w", path, err)
	}
	return file.Close()
}

func newPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Number of Processes"
	p.Y.Label.Text = yLabel
	p.BackgroundColor = color.White
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())
	return p
}

func addSeries(p *plot.Plot, i int, name string, pts plotter.XYs) error {
	if len(pts) == 0 {
		return nil
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("series %s: %w", name, err)
	}
	line.Color = plotutil.Color(i)
	points.Shape = plotutil.Shape(i)
	points.Color = line.Color
	p.Add(line, points)
	p.Legend.Add(name, line, points)
	return nil
}
