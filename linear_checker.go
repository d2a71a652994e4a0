package logincheck

// LinearSearchChecker keeps logins in arrival order and scans the whole
// slice on every probe. It is the baseline the other strategies are
// measured against.
// Every element inspected during a scan charges one comparison.
type LinearSearchChecker struct {
	logins []string
	*baseChecker
}

// NewLinearSearchChecker creates a new LinearSearchChecker
func NewLinearSearchChecker() *LinearSearchChecker {
	return &LinearSearchChecker{baseChecker: makeBaseChecker("linear")}
}

// AddLogin scans the slice for _login_ and appends it if absent.
// Returns false if the login was already registered.
func (checker *LinearSearchChecker) AddLogin(login string) (bool, error) {
	for _, existing := range checker.logins {
		checker.comparisons++
		if existing == login {
			return false, nil
		}
	}
	checker.logins = append(checker.logins, login)
	checker.loginCount++
	return true, nil
}

// CheckExists scans the slice for _login_
func (checker *LinearSearchChecker) CheckExists(login string) bool {
	for _, existing := range checker.logins {
		checker.comparisons++
		if existing == login {
			return true
		}
	}
	return false
}
