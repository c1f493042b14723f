package npath

// Range is a contiguous run of child indices contributed by one category of
// children. Readers lay the categories of a node out in a fixed order and
// resolve an index with Locate.
type Range struct {
	Len int
}

// Locate finds the range an index falls into and its offset within it.
// Ranges of length zero are skipped; ok is false when index lies past the
// last range.
func Locate(ranges []Range, index int) (slot, offset int, ok bool) {
	if index < 0 {
		return 0, 0, false
	}
	start := 0
	for i, r := range ranges {
		if index < start+r.Len {
			return i, index - start, true
		}
		start += r.Len
	}
	return 0, 0, false
}

// Total is the number of indices covered by ranges.
func Total(ranges []Range) int {
	n := 0
	for _, r := range ranges {
		n += r.Len
	}
	return n
}
