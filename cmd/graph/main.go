// Command graph renders the sessions exported by cmd/bench as a plot of
// throughput versus queue capacity, one line per engine.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BenchmarkResult mirrors the schema written by cmd/bench.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Capacity       int     `json:"capacity"`
	NumPushed      int64   `json:"num_pushed"`
	NumPopped      int64   `json:"num_popped"`
	TestDuration   string  `json:"test_duration"`
	ActualElapsed  string  `json:"actual_elapsed"`
	Throughput     float64 `json:"throughput_ops_sec"`
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// SystemInfo mirrors the schema written by cmd/bench.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete test session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// capacityStats holds min / median / max throughput for one capacity rung.
type capacityStats struct {
	x      float64 // category index on the X axis
	orig   float64 // original capacity value
	min    float64
	median float64
	max    float64
}

// statsPoints implements XYer and YErrorer so lines, scatter points and
// error bars can share one data source.
type statsPoints []capacityStats

func (s statsPoints) Len() int                { return len(s) }
func (s statsPoints) XY(i int) (x, y float64) { return s[i].x, s[i].median }
func (s statsPoints) YError(i int) (low, high float64) {
	return s[i].median - s[i].min, s[i].max - s[i].median
}

// categoryTicks implements a categorical X-axis: 0,1,2,... => capacity labels.
type categoryTicks struct {
	positions []float64
	labels    []string
}

func (ct categoryTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, pos := range ct.positions {
		if pos >= min && pos <= max {
			ticks = append(ticks, plot.Tick{Value: pos, Label: ct.labels[i]})
		}
	}
	return ticks
}

func main() {
	jsonFile := flag.String("jsonfile", "test-results.json", "Path to JSON file containing test sessions")
	output := flag.String("out", "benchmark_graph.png", "Output graph image filename")
	flag.Parse()

	data, err := os.ReadFile(*jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON file: %v\n", err)
		os.Exit(1)
	}

	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshalling JSON: %v\n", err)
		os.Exit(1)
	}

	// Group data by Implementation -> capacity -> throughput samples.
	points := make(map[string]map[float64][]float64)
	for _, session := range sessions {
		for _, b := range session.Benchmarks {
			if _, ok := points[b.Implementation]; !ok {
				points[b.Implementation] = make(map[float64][]float64)
			}
			x := float64(b.Capacity)
			points[b.Implementation][x] = append(points[b.Implementation][x], b.Throughput)
		}
	}
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, "No benchmark rows found in JSON.")
		os.Exit(1)
	}

	p := plot.New()
	p.Title.Text = "Queue throughput vs. capacity (min / median / max)"
	p.X.Label.Text = "Capacity"
	p.Y.Label.Text = "Throughput (ops/sec)"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	// Build the union of capacity values as X categories.
	capSet := make(map[float64]struct{})
	for _, byCap := range points {
		for c := range byCap {
			capSet[c] = struct{}{}
		}
	}
	var caps []float64
	for c := range capSet {
		caps = append(caps, c)
	}
	sort.Float64s(caps)

	capIndex := make(map[float64]float64)
	var positions []float64
	var labels []string
	for i, c := range caps {
		capIndex[c] = float64(i)
		positions = append(positions, float64(i))
		labels = append(labels, strconv.FormatFloat(c, 'f', -1, 64))
	}
	p.X.Tick.Marker = categoryTicks{positions: positions, labels: labels}

	// Sort implementations alphabetically for consistent legend ordering.
	var implNames []string
	for name := range points {
		implNames = append(implNames, name)
	}
	sort.Strings(implNames)

	colors := plotutil.SoftColors
	shapes := []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
	}

	for i, name := range implNames {
		stats := buildStats(points[name], capIndex)
		if len(stats) == 0 {
			continue
		}
		sp := statsPoints(stats)

		line, err := plotter.NewLine(sp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating line: %v\n", err)
			continue
		}
		line.Color = colors[i%len(colors)]

		scatter, err := plotter.NewScatter(sp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating scatter: %v\n", err)
			continue
		}
		scatter.Color = colors[i%len(colors)]
		scatter.Shape = shapes[i%len(shapes)]
		scatter.GlyphStyle.Radius = vg.Points(4)

		errBars, err := plotter.NewYErrorBars(sp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating error bars: %v\n", err)
			continue
		}
		errBars.Color = colors[i%len(colors)]

		p.Add(line, scatter, errBars)
		p.Legend.Add(name, line, scatter)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Graph saved to %s\n", *output)
}

// buildStats computes min, median and max throughput per capacity rung.
func buildStats(byCap map[float64][]float64, capIndex map[float64]float64) []capacityStats {
	var out []capacityStats
	for c, vals := range byCap {
		if len(vals) == 0 {
			continue
		}
		sort.Float64s(vals)
		out = append(out, capacityStats{
			x:      capIndex[c],
			orig:   c,
			min:    vals[0],
			median: median(vals),
			max:    vals[len(vals)-1],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].x < out[j].x })
	return out
}

func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}
