// Command bench measures the sequential push/pop throughput of both queue
// engines across a ladder of capacities and optionally exports the results
// as JSON sessions for cmd/graph.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/unixisevil/queue/internal/testbench"
	"github.com/unixisevil/queue/pkg/bound"
	"github.com/unixisevil/queue/pkg/config"
	"github.com/unixisevil/queue/pkg/queue"
	"github.com/unixisevil/queue/pkg/unbound"
)

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Capacity       int     `json:"capacity"`
	NumPushed      int64   `json:"num_pushed"`
	NumPopped      int64   `json:"num_popped"`
	TestDuration   string  `json:"test_duration"`       // e.g. "2s"
	ActualElapsed  string  `json:"actual_elapsed"`      // measured time
	Throughput     float64 `json:"throughput_ops_sec"`  // based on popped count
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// SystemInfo holds system information.
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

// Implementation represents a queue engine under test.
type Implementation struct {
	name        string
	pkgName     string
	description string
	features    []string
	newQueue    func(capacity int) queue.Queue[*int]
}

// outputMarkdownTable loads the JSON file and outputs a Markdown table.
func outputMarkdownTable(jsonFile string) {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON file %q: %v\n", jsonFile, err)
		os.Exit(1)
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshalling JSON: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "No sessions found in JSON.")
		os.Exit(1)
	}
	// Use the last session for the table.
	lastSession := sessions[len(sessions)-1]
	implMetaMap := make(map[string]Implementation)
	for _, impl := range getImplementations() {
		implMetaMap[impl.name] = impl
	}
	type tableRow struct {
		implementation string
		pkgName        string
		features       string
		capacity       int
		throughput     float64
	}
	var rows []tableRow
	for _, bench := range lastSession.Benchmarks {
		meta := implMetaMap[bench.Implementation]
		rows = append(rows, tableRow{
			implementation: bench.Implementation,
			pkgName:        meta.pkgName,
			features:       strings.Join(meta.features, ", "),
			capacity:       bench.Capacity,
			throughput:     bench.Throughput,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].throughput > rows[j].throughput
	})
	fmt.Println("## Last Session Benchmark Summary")
	fmt.Println()
	fmt.Println("| Implementation   | Package   | Features            | Capacity | Throughput (ops/sec) |")
	fmt.Println("|------------------|-----------|---------------------|----------|----------------------|")
	for _, r := range rows {
		fmt.Printf("| %-16s | %-9s | %-19s | %8d | %20.0f |\n",
			r.implementation, r.pkgName, r.features, r.capacity, r.throughput)
	}
}

func main() {
	// Flags.
	testIterations := flag.Int("iter", 5, "Number of test iterations per capacity setting")
	testDurationFlag := flag.Duration("duration", 2*time.Second, "Duration of each timed run")
	jsonExport := flag.Bool("json", false, "Export results as JSON to test-results.json")
	markdownTable := flag.Bool("markdown-table", false, "Output markdown table from test-results.json and exit")
	jsonFileForMarkdown := flag.String("jsonfile", "test-results.json", "Path to JSON file for markdown table")
	progressFlag := flag.Bool("progress", false, "Display a progress bar with ETA")
	flag.Parse()

	if *markdownTable {
		outputMarkdownTable(*jsonFileForMarkdown)
		return
	}

	// Capacity ladder. The unbounded engine ignores the value but is run
	// at each rung so every result row stays comparable.
	capacities := []int{16, 256, 4096, 65536}

	impls := getImplementations()
	totalTests := len(capacities) * (*testIterations) * len(impls)

	var bar *progressbar.ProgressBar
	if *progressFlag {
		bar = progressbar.NewOptions(totalTests,
			progressbar.OptionSetDescription("benchmarking"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
		)
	}

	sysInfo := gatherSystemInfo()
	var results []BenchmarkResult

	for _, capacity := range capacities {
		fmt.Printf("\n=============================\n")
		fmt.Printf("Capacity = %d\n", capacity)
		fmt.Printf("=============================\n")

		cfg := config.Config{Capacity: capacity, Warmup: 1024}

		for iteration := 1; iteration <= *testIterations; iteration++ {
			fmt.Printf("  iteration %d/%d\n", iteration, *testIterations)
			for _, impl := range impls {
				runtime.GC()
				q := impl.newQueue(capacity)

				pushed, popped, actualTime := testbench.RunTimedTest(
					q,
					cfg,
					*testDurationFlag,
					func(i int) *int {
						v := i
						return &v
					},
				)
				throughput := float64(popped) / actualTime.Seconds()

				fmt.Printf("    %s => pushed=%d, popped=%d, throughput=%.0f ops/s, took=%v\n",
					impl.name, pushed, popped, throughput, actualTime)

				results = append(results, BenchmarkResult{
					Implementation: impl.name,
					Capacity:       capacity,
					NumPushed:      pushed,
					NumPopped:      popped,
					TestDuration:   testDurationFlag.String(),
					ActualElapsed:  actualTime.String(),
					Throughput:     throughput,
					Timestamp:      time.Now().Unix(),
					GoVersion:      runtime.Version(),
				})

				if bar != nil {
					bar.Add(1)
				}
			}
		}
	}

	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	if *jsonExport {
		const filename = "test-results.json"
		var previous []FullReport
		if _, err := os.Stat(filename); err == nil {
			data, err := os.ReadFile(filename)
			if err == nil && len(data) > 0 {
				json.Unmarshal(data, &previous)
			}
		}
		updated := append(previous, FullReport{
			SessionTime: time.Now().Format(time.RFC3339),
			SystemInfo:  sysInfo,
			Benchmarks:  results,
		})
		data, err := json.MarshalIndent(updated, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error marshalling JSON:", err)
			os.Exit(1)
		}
		if err = os.WriteFile(filename, data, 0644); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing JSON file:", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote results to %s\n", filename)
	}
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() SystemInfo {
	var cpuModel string
	var cpuSpeed float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
		cpuSpeed = infos[0].Mhz
	}

	var totalMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalMemory = vm.Total
	}

	return SystemInfo{
		NumCPU:      runtime.NumCPU(),
		CPUModel:    cpuModel,
		CPUSpeedMHz: cpuSpeed,
		GOARCH:      runtime.GOARCH,
		TotalMemory: totalMemory,
	}
}

// getImplementations enumerates the queue engines.
func getImplementations() []Implementation {
	return []Implementation{
		{
			name:        "BoundQueue",
			pkgName:     "bound",
			description: "Fixed-capacity ring buffer over a contiguous slot array with one reserved slot.",
			features:    []string{"FIFO", "Bounded", "Zero-Alloc-Per-Op"},
			newQueue: func(capacity int) queue.Queue[*int] {
				return bound.New[*int](capacity)
			},
		},
		{
			name:        "UnboundQueue",
			pkgName:     "unbound",
			description: "Unbounded singly-linked chain with O(1) tail append, one allocation per element.",
			features:    []string{"FIFO", "Unbounded"},
			newQueue: func(capacity int) queue.Queue[*int] {
				return unbound.New[*int]()
			},
		},
	}
}
