package logincheck

// BinarySearchChecker keeps logins in a sorted slice and locates them with
// binary search. Lookups inspect O(log n) elements while insertions still
// pay O(n) for shifting the tail of the slice.
// Every iteration of the bisection loop charges one comparison.
type BinarySearchChecker struct {
	logins []string
	*baseChecker
}

// NewBinarySearchChecker creates a new BinarySearchChecker
func NewBinarySearchChecker() *BinarySearchChecker {
	return &BinarySearchChecker{baseChecker: makeBaseChecker("binary")}
}

// AddLogin bisects to the position of _login_ and splices it in if absent,
// keeping the slice sorted. Returns false if the login was already
// registered.
func (checker *BinarySearchChecker) AddLogin(login string) (bool, error) {
	left, right := 0, len(checker.logins)-1
	for left <= right {
		checker.comparisons++
		mid := (left + right) / 2
		if checker.logins[mid] == login {
			return false, nil
		} else if checker.logins[mid] < login {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	checker.logins = append(checker.logins, "")
	copy(checker.logins[left+1:], checker.logins[left:])
	checker.logins[left] = login
	checker.loginCount++
	return true, nil
}

// CheckExists bisects the sorted slice for _login_
func (checker *BinarySearchChecker) CheckExists(login string) bool {
	left, right := 0, len(checker.logins)-1
	for left <= right {
		checker.comparisons++
		mid := (left + right) / 2
		if checker.logins[mid] == login {
			return true
		} else if checker.logins[mid] < login {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return false
}
