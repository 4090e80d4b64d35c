package charset

// Hash returns a hash of s consistent with Equal: two sets that compare
// equal always hash equal. Combines each contained range's FNV-1a hash the
// same way CharRange.Hash combines its own two fields, so the result
// changes predictably as ranges are appended.
func (s CharSet) Hash() uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, r := range s.ranges {
		rh := r.Hash()
		for i := uint(0); i < 8; i++ {
			h ^= uint64(byte(rh >> (8 * i)))
			h *= prime64
		}
	}
	return h
}
