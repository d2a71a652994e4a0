package logincheck

// bucket holds a fixed number of fingerprint slots of the cuckoo filter.
// The zero fingerprint marks an empty slot, so stored fingerprints are
// always non-zero.
type bucket struct {
	fingerprints []uint16
	length       uint64
	size         uint64
}

func newBucket(size uint64) *bucket {
	return &bucket{fingerprints: make([]uint16, size), size: size}
}

// isFree returns true if there is room for more fingerprints in the bucket,
// otherwise false.
func (b *bucket) isFree() bool {
	return b.length < b.size
}

// nextSlot returns the first empty slot in the bucket, -1 if it is full
func (b *bucket) nextSlot() int64 {
	return b.indexOf(0)
}

// at returns the fingerprint stored at _index_
func (b *bucket) at(index uint64) uint16 {
	return b.fingerprints[index]
}

// add stores _fingerprint_ in the next available slot
func (b *bucket) add(fingerprint uint16) bool {
	if fingerprint == 0 || !b.isFree() {
		return false
	}
	b.fingerprints[b.nextSlot()] = fingerprint
	b.length++
	return true
}

// remove deletes one copy of _fingerprint_ from the bucket
func (b *bucket) remove(fingerprint uint16) bool {
	index := b.indexOf(fingerprint)
	if index <= -1 {
		return false
	}
	b.fingerprints[index] = 0
	b.length--
	return true
}

// lookup returns true if _fingerprint_ is present in the bucket, otherwise false
func (b *bucket) lookup(fingerprint uint16) bool {
	return b.indexOf(fingerprint) > -1
}

// equals checks if two buckets hold the same fingerprints in the same slots
func (b *bucket) equals(other *bucket) bool {
	if b.size != other.size || b.length != other.length {
		return false
	}
	for index, val := range b.fingerprints {
		if other.fingerprints[index] != val {
			return false
		}
	}
	return true
}

func (b *bucket) indexOf(fingerprint uint16) int64 {
	for index, val := range b.fingerprints {
		if val == fingerprint {
			return int64(index)
		}
	}
	return -1
}
