package logincheck

// Default dimensions of the cuckoo filter fronting a CuckooFilterChecker:
// ten thousand buckets of four byte-wide fingerprints.
const (
	defaultCuckooTableSize       = 10000
	defaultCuckooBucketSize      = 4
	defaultCuckooFingerprintBits = 8
)

// CuckooFilterChecker fronts an exact backing set with a cuckoo filter,
// running the same two step probe protocol as BloomFilterChecker behind a
// filter that can also drop entries again. A full filter surfaces
// ErrFilterFull from AddLogin; a duplicate login is an ordinary rejection,
// never an error.
type CuckooFilterChecker struct {
	filter *CuckooFilter
	logins stringSet
	*baseChecker
}

// NewCuckooFilterChecker creates a new CuckooFilterChecker with the
// default filter dimensions
func NewCuckooFilterChecker() *CuckooFilterChecker {
	checker, _ := NewCuckooFilterCheckerWithParameters(defaultCuckooTableSize, defaultCuckooBucketSize, defaultCuckooFingerprintBits)
	return checker
}

// NewCuckooFilterCheckerWithParameters creates a new CuckooFilterChecker
// whose filter holds _tableSize_ buckets of _bucketSize_ fingerprints of
// _fingerprintBits_ bits each
func NewCuckooFilterCheckerWithParameters(tableSize, bucketSize, fingerprintBits uint64) (*CuckooFilterChecker, error) {
	filter, err := NewCuckooFilter(tableSize, bucketSize, fingerprintBits)
	if err != nil {
		return nil, err
	}
	return &CuckooFilterChecker{
		filter:      filter,
		logins:      newStringSet(),
		baseChecker: makeBaseChecker("cuckoo"),
	}, nil
}

// AddLogin records _login_ unless the two step probe proves it is already
// registered. When both candidate buckets of _login_ are occupied the
// filter insert fails and the error is returned with nothing recorded, so
// a capacity failure is never misread as a duplicate.
func (checker *CuckooFilterChecker) AddLogin(login string) (bool, error) {
	if checker.probeFilter(login) && checker.probeBackingSet(login) {
		return false, nil
	}
	if err := checker.filter.InsertString(login); err != nil {
		return false, err
	}
	checker.logins.add(login)
	checker.loginCount++
	return true, nil
}

// CheckExists runs the two step probe for _login_. A negative filter
// verdict is final since the filter never under-reports; a positive one
// is settled by the backing set.
func (checker *CuckooFilterChecker) CheckExists(login string) bool {
	if !checker.probeFilter(login) {
		return false
	}
	return checker.probeBackingSet(login)
}

// probeFilter asks the filter whether _login_ might be present, charging
// one comparison.
func (checker *CuckooFilterChecker) probeFilter(login string) bool {
	checker.comparisons++
	return checker.filter.LookupString(login)
}

// probeBackingSet asks the backing set for the exact answer, charging one
// comparison.
func (checker *CuckooFilterChecker) probeBackingSet(login string) bool {
	checker.comparisons++
	return checker.logins.has(login)
}
