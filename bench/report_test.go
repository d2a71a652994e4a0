package bench

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestReportRoundTrip(t *testing.T) {
	results := []Result{
		{
			Algorithm:         "hash",
			NumLogins:         3,
			NumLookups:        6,
			AddTime:           12 * time.Microsecond,
			AddComparisons:    3,
			LookupTime:        9 * time.Microsecond,
			LookupComparisons: 6,
			LookupsFound:      3,
		},
		{
			Algorithm:         "linear",
			NumLogins:         3,
			NumLookups:        6,
			AddTime:           15 * time.Microsecond,
			AddComparisons:    3,
			LookupTime:        21 * time.Microsecond,
			LookupComparisons: 27,
			LookupsFound:      3,
		},
	}
	report := NewReport(results)
	if report.ID == uuid.Nil {
		t.Error("report should carry a run identifier")
	}
	if report.CreatedAt.IsZero() {
		t.Error("report should carry a timestamp")
	}
	path := filepath.Join(t.TempDir(), "report.json")
	if err := report.WriteJSON(path); err != nil {
		t.Fatalf("error %v while writing report", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("error %v while reading report back", err)
	}
	if !strings.Contains(string(data), "\"algorithm\": \"hash\"") {
		t.Error("report json should carry the snake case field tags")
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("error %v while unmarshalling report", err)
	}
	if decoded.ID != report.ID {
		t.Errorf("report id should round trip as %v, instead found %v", report.ID, decoded.ID)
	}
	if !reflect.DeepEqual(decoded.Results, results) {
		t.Errorf("report results should round trip as %v, instead found %v", results, decoded.Results)
	}
}

func TestFormatSeparatesThousands(t *testing.T) {
	result := Result{
		Algorithm:         "linear",
		NumLogins:         1000,
		NumLookups:        1000,
		AddTime:           1500 * time.Millisecond,
		AddComparisons:    1234567,
		LookupTime:        250 * time.Millisecond,
		LookupComparisons: 2000,
		LookupsFound:      500,
	}
	block := Format(result)
	if !strings.Contains(block, "linear") {
		t.Error("formatted block should name the algorithm")
	}
	if !strings.Contains(block, "Size: 1000") {
		t.Errorf("formatted block should state the trial size, instead found %q", block)
	}
	if !strings.Contains(block, "Add time: 1.5000s") {
		t.Errorf("formatted block should state the add time, instead found %q", block)
	}
	if !strings.Contains(block, "Add comparisons: 1,234,567 (avg 1234.6)") {
		t.Errorf("comparison counts should be thousands separated, instead found %q", block)
	}
	if !strings.Contains(block, "Lookup comparisons: 2,000 (avg 2.0)") {
		t.Errorf("lookup counts should be thousands separated, instead found %q", block)
	}
}

func TestFormatEmptyTrial(t *testing.T) {
	block := Format(Result{Algorithm: "hash"})
	if !strings.Contains(block, "(avg 0.0)") {
		t.Errorf("empty trial averages should be zero, instead found %q", block)
	}
}
