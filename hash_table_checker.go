package logincheck

// HashTableChecker stores logins in a hash table, giving O(1) average case
// membership probes.
// Each probe of the table charges exactly one comparison regardless of the
// number of registered logins.
type HashTableChecker struct {
	logins stringSet
	*baseChecker
}

// NewHashTableChecker creates a new HashTableChecker
func NewHashTableChecker() *HashTableChecker {
	return &HashTableChecker{logins: newStringSet(), baseChecker: makeBaseChecker("hash")}
}

// AddLogin probes the table for _login_ and stores it if absent.
// Returns false if the login was already registered.
func (checker *HashTableChecker) AddLogin(login string) (bool, error) {
	checker.comparisons++
	if checker.logins.has(login) {
		return false, nil
	}
	checker.logins.add(login)
	checker.loginCount++
	return true, nil
}

// CheckExists probes the table for _login_
func (checker *HashTableChecker) CheckExists(login string) bool {
	checker.comparisons++
	return checker.logins.has(login)
}
