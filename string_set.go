package logincheck

// stringSet is an exact set of strings backed by the built-in map. It is
// the backing store of the hash table strategy and of both filter-fronted
// strategies.
type stringSet map[string]struct{}

func newStringSet() stringSet {
	return make(stringSet)
}

func (set stringSet) add(s string) {
	set[s] = struct{}{}
}

func (set stringSet) has(s string) bool {
	_, ok := set[s]
	return ok
}
