// Command logincheck benchmarks the membership strategies against a login
// corpus and reports timings, comparison counts and hit rates, optionally
// saving a JSON report and PNG charts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kwertop/logincheck/bench"
	"github.com/kwertop/logincheck/logins"
)

func main() {
	var sizesFlag = flag.String("sizes", "100,500,1000,2000,5000", "comma separated trial sizes")
	var lookupsFlag = flag.Int("lookups", 0, "lookups per trial (0 runs as many as the trial size)")
	var algosFlag = flag.String("algos", "", "comma separated strategies to run (default all)")
	var dataFlag = flag.String("data", "", "login corpus file, one login per line (default synthetic userN corpus)")
	var jsonFlag = flag.String("json", "", "write the full report to this JSON file")
	var plotsFlag = flag.Bool("plots", false, "render performance and comparison charts")
	var outFlag = flag.String("out", "img", "directory for rendered charts")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatal(err)
	}
	kinds := bench.Kinds()
	if *algosFlag != "" {
		kinds = splitList(*algosFlag)
	}
	corpus, err := loadCorpus(*dataFlag, maxSize(sizes))
	if err != nil {
		log.Fatal(err)
	}

	results, err := bench.Matrix(sizes, *lookupsFlag, kinds, corpus)
	if err != nil {
		log.Fatal(err)
	}
	for _, result := range results {
		fmt.Print(bench.Format(result))
	}

	if *jsonFlag != "" {
		report := bench.NewReport(results)
		if err := report.WriteJSON(*jsonFlag); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nReport %s saved to %s\n", report.ID, *jsonFlag)
	}
	if *plotsFlag {
		if err := renderCharts(results, kinds, *outFlag); err != nil {
			log.Fatal(err)
		}
	}
}

func parseSizes(value string) ([]int, error) {
	parts := splitList(value)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no trial sizes given")
	}
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.Atoi(part)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid trial size %q", part)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func splitList(value string) []string {
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// loadCorpus reads the corpus file, or falls back to the synthetic userN
// corpus sized for the largest trial. A file shorter than the largest
// trial would silently shrink it, so that is an error instead.
func loadCorpus(path string, needed int) ([]string, error) {
	if path == "" {
		return logins.Sequential(needed), nil
	}
	corpus, err := logins.Load(path)
	if err != nil {
		return nil, err
	}
	if len(corpus) < needed {
		return nil, fmt.Errorf("corpus %s holds %d logins, the largest trial needs %d", path, len(corpus), needed)
	}
	return corpus, nil
}

func maxSize(sizes []int) int {
	largest := 0
	for _, size := range sizes {
		if size > largest {
			largest = size
		}
	}
	return largest
}

func withoutLinear(kinds []string) []string {
	fast := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		if kind != "linear" {
			fast = append(fast, kind)
		}
	}
	return fast
}

func renderCharts(results []bench.Result, kinds []string, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	fast := withoutLinear(kinds)

	performance := filepath.Join(dir, "login_checker_performance.png")
	if err := bench.PlotTimes(results, kinds, "", performance); err != nil {
		return err
	}
	fmt.Printf("\nFull plot saved to %s\n", performance)

	performanceZoomed := filepath.Join(dir, "login_checker_performance_zoomed.png")
	if err := bench.PlotTimes(results, fast, " (Zoomed - Fast Algorithms Only)", performanceZoomed); err != nil {
		return err
	}
	fmt.Printf("Zoomed plot saved to %s\n", performanceZoomed)

	comparisons := filepath.Join(dir, "login_checker_comparisons.png")
	if err := bench.PlotComparisons(results, kinds, " (Theoretical Complexity)", comparisons); err != nil {
		return err
	}
	fmt.Printf("Comparison count plot saved to %s\n", comparisons)

	comparisonsZoomed := filepath.Join(dir, "login_checker_comparisons_zoomed.png")
	if err := bench.PlotComparisons(results, fast, " (Zoomed - Fast Algorithms)", comparisonsZoomed); err != nil {
		return err
	}
	fmt.Printf("Zoomed comparison count plot saved to %s\n", comparisonsZoomed)
	return nil
}
