package bench

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func plotFixture() []Result {
	var results []Result
	for _, size := range []int{100, 500, 1000} {
		for i, kind := range []string{"linear", "hash"} {
			results = append(results, Result{
				Algorithm:         kind,
				NumLogins:         size,
				NumLookups:        size,
				AddTime:           time.Duration(size*(i+1)) * time.Microsecond,
				AddComparisons:    uint64(size * (i + 1)),
				LookupTime:        time.Duration(size) * time.Microsecond,
				LookupComparisons: uint64(size),
				LookupsFound:      size / 2,
			})
		}
	}
	return results
}

func assertPNG(path string, t *testing.T) {
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("error %v while reading chart %s", err, path)
	}
	if len(data) < len(pngMagic) || !bytes.Equal(data[:len(pngMagic)], pngMagic) {
		t.Errorf("chart %s should be a png image", path)
	}
}

func TestPlotTimesWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.png")
	if err := PlotTimes(plotFixture(), []string{"linear", "hash"}, "", path); err != nil {
		t.Fatalf("error %v while plotting times", err)
	}
	assertPNG(path, t)
}

func TestPlotComparisonsWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparisons.png")
	if err := PlotComparisons(plotFixture(), []string{"linear", "hash"}, " (Zoomed)", path); err != nil {
		t.Fatalf("error %v while plotting comparisons", err)
	}
	assertPNG(path, t)
}

func TestPlotSkipsAbsentKinds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.png")
	if err := PlotTimes(plotFixture(), []string{"hash", "bloom"}, "", path); err != nil {
		t.Fatalf("kinds without results should be skipped, instead found error %v", err)
	}
	assertPNG(path, t)
}
