package logincheck

// Default dimensions of the bloom filter fronting a BloomFilterChecker,
// sized for a million-login registry at one false positive per thousand
// probes.
const (
	defaultBloomCapacity  = 1000000
	defaultBloomErrorRate = 0.001
)

// BloomFilterChecker fronts an exact backing set with a bloom filter. The
// filter settles "definitely absent" probes without touching the backing
// set; a positive filter verdict costs a second comparison to verify
// against the set, so the answers returned to callers are always exact.
type BloomFilterChecker struct {
	filter *BloomFilter
	logins stringSet
	*baseChecker
}

// NewBloomFilterChecker creates a new BloomFilterChecker with the default
// filter dimensions
func NewBloomFilterChecker() *BloomFilterChecker {
	checker, _ := NewBloomFilterCheckerWithParameters(defaultBloomCapacity, defaultBloomErrorRate)
	return checker
}

// NewBloomFilterCheckerWithParameters creates a new BloomFilterChecker
// whose filter is sized for _capacity_ logins at false positive rate
// _errorRate_
func NewBloomFilterCheckerWithParameters(capacity uint, errorRate float64) (*BloomFilterChecker, error) {
	filter, err := NewBloomFilter(capacity, errorRate)
	if err != nil {
		return nil, err
	}
	return &BloomFilterChecker{
		filter:      filter,
		logins:      newStringSet(),
		baseChecker: makeBaseChecker("bloom"),
	}, nil
}

// AddLogin records _login_ unless the two step probe proves it is already
// registered. A filter verdict of "maybe" alone never rejects a login;
// only the backing set confirms a duplicate.
func (checker *BloomFilterChecker) AddLogin(login string) (bool, error) {
	if checker.probeFilter(login) && checker.probeBackingSet(login) {
		return false, nil
	}
	checker.filter.InsertString(login)
	checker.logins.add(login)
	checker.loginCount++
	return true, nil
}

// CheckExists runs the two step probe for _login_. A negative filter
// verdict is final since the filter never under-reports; a positive one
// is settled by the backing set.
func (checker *BloomFilterChecker) CheckExists(login string) bool {
	if !checker.probeFilter(login) {
		return false
	}
	return checker.probeBackingSet(login)
}

// probeFilter asks the filter whether _login_ might be present, charging
// one comparison.
func (checker *BloomFilterChecker) probeFilter(login string) bool {
	checker.comparisons++
	return checker.filter.LookupString(login)
}

// probeBackingSet asks the backing set for the exact answer, charging one
// comparison.
func (checker *BloomFilterChecker) probeBackingSet(login string) bool {
	checker.comparisons++
	return checker.logins.has(login)
}
