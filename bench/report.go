package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report collects the results of one benchmark run under a fresh run
// identifier.
type Report struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Results   []Result  `json:"results"`
}

// NewReport wraps _results_ with a run identifier and timestamp.
func NewReport(results []Result) *Report {
	return &Report{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Results:   results,
	}
}

// WriteJSON saves the report to _path_ as indented JSON.
func (report *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("bench: marshalling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("bench: writing report: %w", err)
	}
	return nil
}

// Format renders _result_ as the per-trial text block the benchmark
// prints. Comparison counts are thousands-separated; the per-operation
// averages are not.
func Format(result Result) string {
	printer := message.NewPrinter(language.English)
	var block strings.Builder
	fmt.Fprintf(&block, "\n%s\n", result.Algorithm)
	fmt.Fprintf(&block, "Size: %d\n", result.NumLogins)
	fmt.Fprintf(&block, "Add time: %.4fs\n", result.AddTime.Seconds())
	fmt.Fprintf(&block, "Add comparisons: %s (avg %.1f)\n", printer.Sprintf("%d", result.AddComparisons), average(result.AddComparisons, result.NumLogins))
	fmt.Fprintf(&block, "Lookup time: %.4fs\n", result.LookupTime.Seconds())
	fmt.Fprintf(&block, "Lookup comparisons: %s (avg %.1f)\n", printer.Sprintf("%d", result.LookupComparisons), average(result.LookupComparisons, result.NumLookups))
	return block.String()
}

func average(comparisons uint64, operations int) float64 {
	if operations == 0 {
		return 0
	}
	return float64(comparisons) / float64(operations)
}
