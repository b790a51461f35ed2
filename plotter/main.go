package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mwindels/magnet-solver/shared/geom"
	"github.com/mwindels/magnet-solver/shared/grid"
	"github.com/mwindels/magnet-solver/shared/scene"
)

// renderHeatMap writes a standalone HTML heat map of the sampled field
// magnitudes to path.
func renderHeatMap(res *grid.Result, path string) error {
	g := res.Grid

	xs := make([]string, g.Nx)
	for i := range xs {
		xs[i] = fmt.Sprintf("%.3g", g.Point(i, 0).X)
	}
	ys := make([]string, g.Ny)
	for j := range ys {
		ys[j] = fmt.Sprintf("%.3g", g.Point(0, j).Y)
	}

	peak := 0.0
	data := make([]opts.HeatMapData, 0, g.Nx*g.Ny)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			magnitude := res.At(i, j).B.Len()
			if magnitude > peak {
				peak = magnitude
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, magnitude}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Field Magnitude"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(peak),
		}),
	)
	hm.SetXAxis(xs).AddSeries("field", data)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %q: %w", path, err)
	}
	defer out.Close()
	return hm.Render(out)
}

// exportWorkbook writes the raw samples to an .xlsx workbook at path,
// one row per grid point.
func exportWorkbook(res *grid.Result, path string) error {
	g := res.Grid

	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"x", "y", "Bx", "By", "magnitude", "singular"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Sheet1", cell, header); err != nil {
			return err
		}
	}

	row := 2
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			p, sample := g.Point(i, j), res.At(i, j)
			values := []interface{}{p.X, p.Y, sample.B.X, sample.B.Y, sample.B.Len(), sample.Singular}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue("Sheet1", cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	return nil
}

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene file")
	outPath := flag.String("out", "field.html", "path of the HTML heat map to write")
	xlsxPath := flag.String("xlsx", "", "optional path of an .xlsx workbook to export")
	minX := flag.Float64("min-x", -5.0, "lower x bound of the sampled region")
	minY := flag.Float64("min-y", -5.0, "lower y bound of the sampled region")
	maxX := flag.Float64("max-x", 5.0, "upper x bound of the sampled region")
	maxY := flag.Float64("max-y", 5.0, "upper y bound of the sampled region")
	nx := flag.Int("nx", 101, "sample count along x")
	ny := flag.Int("ny", 101, "sample count along y")
	workers := flag.Int("workers", 0, "worker goroutines (0 means one per CPU)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if *scenePath == "" {
		log.Fatal("A scene file is required (-scene).")
	}

	s, err := scene.FromFile(*scenePath)
	if err != nil {
		log.Fatalf("Could not read in scene %q: %v.", *scenePath, err)
	}

	g, err := grid.New(geom.Vector2{X: *minX, Y: *minY}, geom.Vector2{X: *maxX, Y: *maxY}, *nx, *ny)
	if err != nil {
		log.Fatalf("Could not build grid: %v.", err)
	}

	res, err := g.MapParallel(context.Background(), s, *workers)
	if err != nil {
		log.Fatalf("Could not evaluate field: %v.", err)
	}
	log.Infow("field evaluated", "scene", *scenePath, "magnets", s.Size(), "points", len(res.Samples))

	if err := renderHeatMap(res, *outPath); err != nil {
		log.Fatalf("Could not render heat map: %v.", err)
	}
	log.Infow("heat map written", "path", *outPath)

	if *xlsxPath != "" {
		if err := exportWorkbook(res, *xlsxPath); err != nil {
			log.Fatalf("Could not export workbook: %v.", err)
		}
		log.Infow("workbook written", "path", *xlsxPath)
	}
}
