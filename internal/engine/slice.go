package engine

// Limit returns at most n rows from the front of the table. A negative n
// is treated as zero.
func Limit(t Table, n int) Table {
	if n < 0 {
		n = 0
	}
	if n > len(t) {
		n = len(t)
	}
	return t[:n:n]
}

// Offset skips the first n rows and returns the rest. An offset past the
// end yields an empty table; a negative n skips nothing.
func Offset(t Table, n int) Table {
	if n < 0 {
		n = 0
	}
	if n > len(t) {
		n = len(t)
	}
	return t[n:]
}

// Page combines Offset then Limit: skip the first offset rows, then keep
// at most limit of what remains.
func Page(t Table, offset, limit int) Table {
	return Limit(Offset(t, offset), limit)
}
