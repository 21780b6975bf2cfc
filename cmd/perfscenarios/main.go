// Package main benchmarks a synthetic entity-integration workload
// across configurable scenario sizes and writes the timings to CSV.
// The kernel is deterministic for a given scenario, so the checksum
// column doubles as a regression guard on the arithmetic.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	stdmath "math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// Scenario sizes one benchmark workload.
type Scenario struct {
	Name       string `yaml:"name"`
	Entities   int    `yaml:"entities"`
	Steps      int    `yaml:"steps"`
	Complexity int    `yaml:"complexity"`
}

// Result is one scenario's aggregated timings.
type Result struct {
	Scenario
	NsPerStepMin    float64
	NsPerStepMedian float64
	NsPerStepMax    float64
	Checksum        uint64
}

var (
	flagScenarioFile = flag.String("scenario-file", "perf/scenarios.yaml", "Scenario file")
	flagOutput       = flag.String("output", "perf_results.csv", "Output CSV")
	flagRepeats      = flag.Int("repeats", 3, "Measurements per scenario")
	flagWarmup       = flag.Int("warmup", 1, "Warmup runs per scenario")
)

func main() {
	flag.Parse()

	if *flagRepeats < 1 {
		fmt.Fprintln(os.Stderr, "--repeats must be >= 1")
		os.Exit(2)
	}

	scenarios, err := readScenarios(*flagScenarioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading scenarios: %v\n", err)
		os.Exit(1)
	}
	if len(scenarios) == 0 {
		fmt.Fprintln(os.Stderr, "no scenarios found")
		os.Exit(1)
	}

	results := make([]Result, 0, len(scenarios))
	for _, scenario := range scenarios {
		if scenario.Entities < 1 || scenario.Steps < 1 {
			fmt.Fprintf(os.Stderr, "skipping %q: entities and steps must be >= 1\n", scenario.Name)
			continue
		}
		for i := 0; i < *flagWarmup; i++ {
			runScenario(scenario)
		}

		samples := make([]float64, 0, *flagRepeats)
		var checksum uint64
		for i := 0; i < *flagRepeats; i++ {
			nsPerStep, runChecksum := runScenario(scenario)
			samples = append(samples, nsPerStep)
			checksum ^= runChecksum
		}
		sort.Float64s(samples)

		result := Result{
			Scenario:        scenario,
			NsPerStepMin:    samples[0],
			NsPerStepMedian: samples[len(samples)/2],
			NsPerStepMax:    samples[len(samples)-1],
			Checksum:        checksum,
		}
		results = append(results, result)

		fmt.Printf("%18s: median=%10.2f ns/step, min=%10.2f, max=%10.2f\n",
			result.Name, result.NsPerStepMedian, result.NsPerStepMin, result.NsPerStepMax)
	}

	if err := writeCSV(*flagOutput, results); err != nil {
		fmt.Fprintf(os.Stderr, "writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to %s\n", *flagOutput)
}

// defaultScenarios covers a small, a broad and a deep workload.
func defaultScenarios() []Scenario {
	return []Scenario{
		{Name: "baseline", Entities: 256, Steps: 2048, Complexity: 4},
		{Name: "wide", Entities: 4096, Steps: 512, Complexity: 4},
		{Name: "deep", Entities: 256, Steps: 512, Complexity: 64},
	}
}

// readScenarios loads the scenario file, writing the default set there
// first when it does not exist yet.
func readScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		scenarios := defaultScenarios()
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		out, err := yaml.Marshal(scenarios)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return nil, err
		}
		fmt.Printf("Scenario file created: %s\n", path)
		return scenarios, nil
	}
	if err != nil {
		return nil, err
	}

	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

func writeCSV(path string, results []Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{
		"name", "entities", "steps", "complexity",
		"ns_per_step_min", "ns_per_step_median", "ns_per_step_max", "checksum",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Name,
			strconv.Itoa(r.Entities),
			strconv.Itoa(r.Steps),
			strconv.Itoa(r.Complexity),
			strconv.FormatFloat(r.NsPerStepMin, 'f', 4, 64),
			strconv.FormatFloat(r.NsPerStepMedian, 'f', 4, 64),
			strconv.FormatFloat(r.NsPerStepMax, 'f', 4, 64),
			strconv.FormatUint(r.Checksum, 10),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// runScenario integrates the synthetic entity field and reports the
// wall time per step plus a checksum over probed positions.
func runScenario(scenario Scenario) (float64, uint64) {
	posX := make([]float32, 0, scenario.Entities)
	posY := make([]float32, 0, scenario.Entities)
	velX := make([]float32, 0, scenario.Entities)
	velY := make([]float32, 0, scenario.Entities)

	seed := uint64(0x9E3779B97F4A7C15) ^ uint64(scenario.Entities) ^ uint64(scenario.Steps)
	for i := 0; i < scenario.Entities; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407

		x := float32(seed>>16) * (1.0 / float32(^uint32(0)))
		y := float32(seed>>40) * (1.0 / float32(^uint32(0)))

		posX = append(posX, x)
		posY = append(posY, y)
		velX = append(velX, (x-0.5)*0.1)
		velY = append(velY, (y-0.5)*0.1)
	}

	start := time.Now()
	var checksum uint64

	for step := 0; step < scenario.Steps; step++ {
		timeTerm := math32.Sin(float32(step) * 0.0001)

		for i := 0; i < scenario.Entities; i++ {
			x := posX[i]
			y := posY[i]
			vx := velX[i]
			vy := velY[i]

			for inner := 0; inner < scenario.Complexity; inner++ {
				wobble := math32.Cos(float32(i+inner+step)*0.00031) * 0.0007
				vx += (y*0.001+timeTerm)*0.1 + wobble
				vy += (x*0.001-timeTerm)*0.1 - wobble

				x += vx
				y += vy

				if x > 1.0 || x < -1.0 {
					vx = -vx * 0.97
				}
				if y > 1.0 || y < -1.0 {
					vy = -vy * 0.97
				}
			}

			posX[i] = x
			posY[i] = y
			velX[i] = vx
			velY[i] = vy
		}

		probe := step % scenario.Entities
		checksum ^= uint64(stdmath.Float32bits(posX[probe])) << 1
		checksum ^= uint64(stdmath.Float32bits(posY[probe]))
	}

	elapsed := time.Since(start)
	nsPerStep := float64(elapsed.Nanoseconds()) / float64(scenario.Steps)

	return nsPerStep, checksum
}
