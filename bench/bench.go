// Package bench times the membership strategies against login corpora and
// renders the collected results as text, JSON and line charts.
package bench

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kwertop/logincheck"
)

// Result holds the metrics of a single trial: one strategy fed one corpus,
// then probed with one lookup batch.
type Result struct {
	Algorithm         string        `json:"algorithm"`
	NumLogins         int           `json:"num_logins"`
	NumLookups        int           `json:"num_lookups"`
	AddTime           time.Duration `json:"add_time"`
	AddComparisons    uint64        `json:"add_comparisons"`
	LookupTime        time.Duration `json:"lookup_time"`
	LookupComparisons uint64        `json:"lookup_comparisons"`
	LookupsFound      int           `json:"lookups_found"`
}

// Kinds returns the registered strategy kinds in benchmark order.
func Kinds() []string {
	return []string{"linear", "binary", "hash", "bloom", "cuckoo"}
}

// NewChecker builds a fresh checker of the given _kind_ with its default
// parameters. The kind strings are the checker names reported by Kinds.
func NewChecker(kind string) (logincheck.LoginChecker, error) {
	switch kind {
	case "linear":
		return logincheck.NewLinearSearchChecker(), nil
	case "binary":
		return logincheck.NewBinarySearchChecker(), nil
	case "hash":
		return logincheck.NewHashTableChecker(), nil
	case "bloom":
		return logincheck.NewBloomFilterChecker(), nil
	case "cuckoo":
		return logincheck.NewCuckooFilterChecker(), nil
	}
	return nil, fmt.Errorf("bench: unknown checker kind %q", kind)
}

// RunTrial feeds _logins_ to _checker_, resets the comparison counter, then
// runs _numLookups_ membership probes alternating logins known to be present
// with names known to be absent. Both phases are timed and their comparison
// counts recorded separately. A structural error from the checker aborts
// the trial.
func RunTrial(checker logincheck.LoginChecker, logins []string, numLookups int) (Result, error) {
	start := time.Now()
	for _, login := range logins {
		if _, err := checker.AddLogin(login); err != nil {
			return Result{}, fmt.Errorf("bench: adding %s to %s checker: %w", login, checker.Name(), err)
		}
	}
	addTime := time.Since(start)
	addComparisons := checker.Comparisons()
	checker.ResetComparisons()

	lookupNames := make([]string, numLookups)
	for i := 0; i < numLookups; i++ {
		if i%2 == 0 && i/2 < len(logins) {
			lookupNames[i] = logins[i/2]
		} else {
			lookupNames[i] = "nonexistent" + strconv.Itoa(i)
		}
	}

	found := 0
	start = time.Now()
	for _, name := range lookupNames {
		if checker.CheckExists(name) {
			found++
		}
	}
	lookupTime := time.Since(start)

	return Result{
		Algorithm:         checker.Name(),
		NumLogins:         len(logins),
		NumLookups:        numLookups,
		AddTime:           addTime,
		AddComparisons:    addComparisons,
		LookupTime:        lookupTime,
		LookupComparisons: checker.Comparisons(),
		LookupsFound:      found,
	}, nil
}

// Matrix runs one trial per (size, kind) pair over _corpus_ and returns the
// results in run order, sizes outermost. Sizes beyond the corpus length are
// clamped to it. A _numLookups_ of zero or less runs as many lookups as the
// trial has logins.
func Matrix(sizes []int, numLookups int, kinds []string, corpus []string) ([]Result, error) {
	results := make([]Result, 0, len(sizes)*len(kinds))
	for _, size := range sizes {
		if size > len(corpus) {
			size = len(corpus)
		}
		lookups := numLookups
		if lookups <= 0 {
			lookups = size
		}
		for _, kind := range kinds {
			checker, err := NewChecker(kind)
			if err != nil {
				return nil, err
			}
			result, err := RunTrial(checker, corpus[:size], lookups)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}
