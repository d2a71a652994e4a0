package logincheck

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Configuration and capacity errors reported by the cuckoo filter.
var (
	ErrFilterFull             = errors.New("logincheck: cannot insert element, cuckoo filter is full")
	ErrZeroTableSize          = errors.New("logincheck: cuckoo filter table size must be greater than zero")
	ErrZeroBucketSize         = errors.New("logincheck: cuckoo filter bucket size must be greater than zero")
	ErrInvalidFingerprintBits = errors.New("logincheck: cuckoo filter fingerprint must be between 1 and 16 bits")
)

// CuckooFilter is a probabilistic membership filter storing small
// fingerprints of the inserted elements.
// _buckets_ is the slice of fingerprint buckets
// _length_ represents the number of entries present in the filter
// Every element maps to two candidate buckets. Insertion is relocation
// free: when both candidates are full the filter reports ErrFilterFull
// instead of evicting entries, so an insert never disturbs fingerprints
// already stored.
type CuckooFilter struct {
	buckets         []bucket
	length          uint64
	size            uint64
	bucketSize      uint64
	fingerprintBits uint64
}

// NewCuckooFilter creates a new CuckooFilter
// _size_ is the number of buckets in the filter
// _bucketSize_ is the number of fingerprint slots in each bucket
// _fingerprintBits_ is the width of the stored fingerprints, between 1 and 16
func NewCuckooFilter(size, bucketSize, fingerprintBits uint64) (*CuckooFilter, error) {
	if size == 0 {
		return nil, ErrZeroTableSize
	}
	if bucketSize == 0 {
		return nil, ErrZeroBucketSize
	}
	if fingerprintBits == 0 || fingerprintBits > 16 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidFingerprintBits, fingerprintBits)
	}
	buckets := make([]bucket, size)
	for i := range buckets {
		buckets[i] = *newBucket(bucketSize)
	}
	return &CuckooFilter{
		buckets:         buckets,
		size:            size,
		bucketSize:      bucketSize,
		fingerprintBits: fingerprintBits,
	}, nil
}

// Size returns the number of buckets of the Cuckoo Filter
func (cuckooFilter *CuckooFilter) Size() uint64 {
	return cuckooFilter.size
}

// BucketSize returns the number of fingerprint slots per bucket
func (cuckooFilter *CuckooFilter) BucketSize() uint64 {
	return cuckooFilter.bucketSize
}

// FingerprintBits returns the width of the stored fingerprints
func (cuckooFilter *CuckooFilter) FingerprintBits() uint64 {
	return cuckooFilter.fingerprintBits
}

// CellSize returns the overall number of slots of the Cuckoo Filter - _size_ * _bucketSize_
func (cuckooFilter *CuckooFilter) CellSize() uint64 {
	return cuckooFilter.size * cuckooFilter.bucketSize
}

// Length returns the current number of entries present in the Cuckoo Filter
func (cuckooFilter *CuckooFilter) Length() uint64 {
	return cuckooFilter.length
}

// CuckooPositiveRate returns the false positive error rate of the filter
func (cuckooFilter *CuckooFilter) CuckooPositiveRate() float64 {
	return math.Pow(2, math.Log2(float64(2*cuckooFilter.bucketSize))-float64(cuckooFilter.fingerprintBits))
}

// Insert writes the _data_ in the Cuckoo Filter for future lookup.
// It returns ErrFilterFull when both candidate buckets of _data_ are
// already occupied.
func (cuckooFilter *CuckooFilter) Insert(data []byte) error {
	fingerprint, firstIndex, secondIndex := cuckooFilter.getPositions(data)
	if cuckooFilter.buckets[firstIndex].isFree() {
		cuckooFilter.buckets[firstIndex].add(fingerprint)
	} else if cuckooFilter.buckets[secondIndex].isFree() {
		cuckooFilter.buckets[secondIndex].add(fingerprint)
	} else {
		return ErrFilterFull
	}
	cuckooFilter.length++
	return nil
}

// Lookup returns true if the _data_ is present in the Cuckoo Filter, else false
func (cuckooFilter *CuckooFilter) Lookup(data []byte) bool {
	fingerprint, firstIndex, secondIndex := cuckooFilter.getPositions(data)
	return cuckooFilter.buckets[firstIndex].lookup(fingerprint) ||
		cuckooFilter.buckets[secondIndex].lookup(fingerprint)
}

// Remove deletes one copy of the fingerprint of _data_ from the Cuckoo Filter
func (cuckooFilter *CuckooFilter) Remove(data []byte) bool {
	fingerprint, firstIndex, secondIndex := cuckooFilter.getPositions(data)
	if cuckooFilter.buckets[firstIndex].remove(fingerprint) {
		cuckooFilter.length--
		return true
	}
	if cuckooFilter.buckets[secondIndex].remove(fingerprint) {
		cuckooFilter.length--
		return true
	}
	return false
}

// InsertString accepts string value as _data_ for inserting into the Cuckoo filter
func (cuckooFilter *CuckooFilter) InsertString(data string) error {
	return cuckooFilter.Insert([]byte(data))
}

// LookupString accepts string value as _data_ to lookup the Cuckoo filter
func (cuckooFilter *CuckooFilter) LookupString(data string) bool {
	return cuckooFilter.Lookup([]byte(data))
}

// RemoveString accepts string value as _data_ for removing from the Cuckoo filter
func (cuckooFilter *CuckooFilter) RemoveString(data string) bool {
	return cuckooFilter.Remove([]byte(data))
}

// getPositions derives the fingerprint and the two candidate bucket indexes
// of _data_. The second index is obtained by folding the hash of the
// fingerprint into the first, so lookups and removals recompute the same
// pair the insert used.
func (cuckooFilter *CuckooFilter) getPositions(data []byte) (uint16, uint64, uint64) {
	hash := xxhash.Sum64(data)
	fingerprint := cuckooFilter.fingerprintOf(hash)
	firstIndex := hash % cuckooFilter.size
	secondIndex := (firstIndex ^ fingerprintHash(fingerprint)) % cuckooFilter.size
	return fingerprint, firstIndex, secondIndex
}

// fingerprintOf keeps the top fingerprintBits bits of _hash_, bumping a
// zero fingerprint to 1 so it never collides with the empty slot marker.
func (cuckooFilter *CuckooFilter) fingerprintOf(hash uint64) uint16 {
	fingerprint := uint16(hash >> (64 - cuckooFilter.fingerprintBits))
	if fingerprint == 0 {
		fingerprint = 1
	}
	return fingerprint
}

func fingerprintHash(fingerprint uint16) uint64 {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], fingerprint)
	return xxhash.Sum64(buf[:])
}
