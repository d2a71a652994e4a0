package util

import "math"

// Max returns the greater of _x_ and _y_
func Max(x, y uint) uint {
	if x > y {
		return x
	}
	return y
}

// CalculateFilterSize computes the number of bits of a bloom filter sized
// for _length_ entries at false positive rate _errorRate_
func CalculateFilterSize(length uint, errorRate float64) uint {
	return uint(math.Ceil(-((float64(length) * math.Log(errorRate)) / math.Pow(math.Log(2), 2))))
}

// CalculateNumHashes computes the number of hash functions for a bloom
// filter of _size_ bits holding _length_ entries
func CalculateNumHashes(size, length uint) uint {
	return uint(math.Ceil(float64((size / length)) * math.Log(2)))
}
