package scan

// Find locates the first occurrence of needle in haystack at or after start
// using the Boyer-Moore-Horspool algorithm.
//
// The search precomputes, per possible byte value, the shift distance applied
// on mismatch, keyed by the haystack byte aligned with the needle's last
// position. Bytes absent from the needle (excluding its last byte) shift by
// the full needle length, giving an average sub-linear scan. The table
// construction is correct for needles with repeated bytes.
//
// Parameters:
//   - haystack: Buffer to search
//   - needle: Pattern to locate; 4 bytes in this system but any length works
//   - start: Offset the search begins at; negative values are treated as 0
//
// Returns:
//   - int: Offset of the first match at or after start, or -1 when the
//     needle does not occur. An empty needle matches immediately at start.
func Find(haystack, needle []byte, start int) int {
	if start < 0 {
		start = 0
	}
	if len(needle) == 0 {
		if start > len(haystack) {
			return -1
		}

		return start
	}
	if start >= len(haystack) {
		return -1
	}

	region := haystack[start:]
	n := len(needle)
	if len(region) < n {
		return -1
	}

	var shift [256]int
	for i := range shift {
		shift[i] = n
	}
	for i := 0; i < n-1; i++ {
		shift[needle[i]] = n - i - 1
	}

	for k := n - 1; k < len(region); k += shift[region[k]] {
		i, j := k, n-1
		for j >= 0 && region[i] == needle[j] {
			i--
			j--
		}
		if j < 0 {
			return start + i + 1
		}
	}

	return -1
}
