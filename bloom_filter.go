package logincheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/dgryski/go-metro"

	"github.com/kwertop/logincheck/internal/util"
)

// Configuration errors reported by NewBloomFilter.
var (
	ErrZeroCapacity     = errors.New("logincheck: bloom filter capacity must be greater than zero")
	ErrInvalidErrorRate = errors.New("logincheck: bloom filter error rate must lie in (0, 1)")
)

// The BloomFilter data structure. It mainly has two fields: _size_ and _numHashes_
// _size_ denotes the number of bits in the filter
// _numHashes_ denotes the number of hashing functions applied on the entrant element
// during insertion or lookup.
// _filter_ is the bitset backing the bloom filter.
// The filter never reports a false negative; false positives occur at
// roughly the configured error rate once the filter holds the number of
// entries it was sized for.
type BloomFilter struct {
	size      uint
	numHashes uint
	filter    *bitset.BitSet
}

// NewBloomFilter creates and returns a new BloomFilter sized for _numItems_
// entries at false positive rate _errorRate_
// _numItems_ is the number of items for which the bloom filter has to be checked for validation
// _errorRate_ is the acceptable false positive error rate
// Based upon the above two parameters passed, the size of the bloom filter is calculated
func NewBloomFilter(numItems uint, errorRate float64) (*BloomFilter, error) {
	if numItems == 0 {
		return nil, ErrZeroCapacity
	}
	if errorRate <= 0 || errorRate >= 1 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidErrorRate, errorRate)
	}
	size := util.Max(util.CalculateFilterSize(numItems, errorRate), 1)
	numHashes := util.Max(util.CalculateNumHashes(size, numItems), 1)
	return &BloomFilter{
		size:      size,
		numHashes: numHashes,
		filter:    bitset.New(size),
	}, nil
}

// Insert writes new _data_ in the bloom filter
func (bloomFilter *BloomFilter) Insert(data []byte) *BloomFilter {
	hashes := getHashes(data)
	for i := uint(0); i < bloomFilter.numHashes; i++ {
		bloomFilter.filter.Set(bloomFilter.getIndex(hashes, i))
	}
	return bloomFilter
}

// Lookup returns true if the corresponding bits in the bitset for _data_ are
// set, otherwise false
func (bloomFilter *BloomFilter) Lookup(data []byte) bool {
	hashes := getHashes(data)
	for i := uint(0); i < bloomFilter.numHashes; i++ {
		if !bloomFilter.filter.Test(bloomFilter.getIndex(hashes, i)) {
			return false
		}
	}
	return true
}

// InsertString accepts string value as _data_ for inserting into the Bloom filter
func (bloomFilter *BloomFilter) InsertString(data string) *BloomFilter {
	return bloomFilter.Insert([]byte(data))
}

// LookupString accepts string value as _data_ to lookup the Bloom filter
func (bloomFilter *BloomFilter) LookupString(data string) bool {
	return bloomFilter.Lookup([]byte(data))
}

// GetCap returns the number of bits of the bloom filter
func (bloomFilter *BloomFilter) GetCap() uint {
	return bloomFilter.size
}

// GetNumHashes returns the number of hash functions used in the bloom filter
func (bloomFilter *BloomFilter) GetNumHashes() uint {
	return bloomFilter.numHashes
}

// BloomPositiveRate returns the false positive error rate of the filter
// given its current fill
func (bloomFilter *BloomFilter) BloomPositiveRate() float64 {
	length := bloomFilter.filter.Count()
	return math.Pow(1-math.Exp(-float64(length)/float64(bloomFilter.size)), float64(bloomFilter.numHashes))
}

// Equals checks if two BloomFilter's are equal
func (aFilter *BloomFilter) Equals(bFilter *BloomFilter) bool {
	if aFilter.size != bFilter.size || aFilter.numHashes != bFilter.numHashes {
		return false
	}
	return aFilter.filter.Equal(bFilter.filter)
}

func getHashes(data []byte) [2]uint64 {
	hash1, hash2 := metro.Hash128(data, 1373)
	return [2]uint64{hash1, hash2}
}

// getIndex derives the i-th bit position with enhanced double hashing:
// h1 + i*h2 + (i^3 - i)/6, reduced modulo the filter size.
func (bloomFilter *BloomFilter) getIndex(hashes [2]uint64, i uint) uint {
	j := uint64(i)
	delta := j*hashes[1] + (j*j*j-j)/6
	return uint((hashes[0] + delta) % uint64(bloomFilter.size))
}
