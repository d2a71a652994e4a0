/*
Package logincheck provides membership checkers for login name registries
and the instrumentation needed to compare them.

Five strategies implement the same LoginChecker contract. Three are exact
containers: a slice scanned linearly, a sorted slice probed with binary
search, and a hash table. The other two place a probabilistic filter in
front of an exact backing set, using the filter to answer "definitely
absent" cheaply and the set to settle "maybe present", so no strategy ever
reports a wrong answer.

A Bloom filter is a space-efficient probabilistic data structure that is used to test
whether an element is a member of a set.
Refer: https://web.stanford.edu/~balaji/papers/bloom.pdf

A Cuckoo filter is a data structure used for approximate set membership queries, similar to a
Bloom filter, with support for removal of elements.
Refer: https://www.cs.cmu.edu/~dga/papers/cuckoo-conext2014.pdf
*/
package logincheck

// LoginChecker is the contract shared by all membership strategies.
// Implementations count every probe of their underlying containers so that
// the work done by each strategy is observable.
type LoginChecker interface {
	// AddLogin registers _login_ and returns true if it was absent, false
	// if it was already registered. Strategies with bounded storage return
	// an error when the login cannot be stored.
	AddLogin(login string) (bool, error)

	// CheckExists returns true if _login_ was previously registered.
	CheckExists(login string) bool

	// Comparisons returns the number of membership probes charged since
	// construction or the last ResetComparisons.
	Comparisons() uint64

	// ResetComparisons zeroes the comparison counter. The login count is
	// left untouched.
	ResetComparisons()

	// LoginCount returns the number of distinct logins registered.
	LoginCount() uint64

	// Name returns the strategy identifier used in reports.
	Name() string
}

// baseChecker carries the bookkeeping common to every strategy. Concrete
// checkers embed it and bump the counters inline from their own methods.
type baseChecker struct {
	name        string
	comparisons uint64
	loginCount  uint64
}

func makeBaseChecker(name string) *baseChecker {
	base := &baseChecker{}
	base.name = name
	return base
}

// Comparisons returns the probes charged since the last reset.
func (checker *baseChecker) Comparisons() uint64 {
	return checker.comparisons
}

// ResetComparisons zeroes the comparison counter only.
func (checker *baseChecker) ResetComparisons() {
	checker.comparisons = 0
}

// LoginCount returns the number of distinct logins registered so far.
func (checker *baseChecker) LoginCount() uint64 {
	return checker.loginCount
}

// Name returns the strategy identifier of the checker.
func (checker *baseChecker) Name() string {
	return checker.name
}
