// Package ordering holds the pure placement math shared by column and card
// moves. Every function is total: out-of-range indices are clamped to the
// nearest valid boundary instead of failing, because drag-and-drop clients
// routinely send stale indices while the underlying list is mutating.
package ordering

// ClampIndex forces i into [0, n].
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// InsertAt returns a new slice with v inserted at index i, clamped to
// [0, len(seq)]. The input slice is not modified.
func InsertAt[T any](seq []T, v T, i int) []T {
	i = ClampIndex(i, len(seq))
	out := make([]T, 0, len(seq)+1)
	out = append(out, seq[:i]...)
	out = append(out, v)
	out = append(out, seq[i:]...)
	return out
}

// Reorder moves the element at from to index to, clamping to. If from is
// out of range the sequence is returned unchanged.
func Reorder[T any](seq []T, from, to int) []T {
	if from < 0 || from >= len(seq) {
		return seq
	}
	v := seq[from]
	rest := make([]T, 0, len(seq)-1)
	rest = append(rest, seq[:from]...)
	rest = append(rest, seq[from+1:]...)
	return InsertAt(rest, v, to)
}

// Remove returns a new slice without the first occurrence of v and whether
// v was present.
func Remove[T comparable](seq []T, v T) ([]T, bool) {
	i := IndexOf(seq, v)
	if i < 0 {
		return seq, false
	}
	out := make([]T, 0, len(seq)-1)
	out = append(out, seq[:i]...)
	out = append(out, seq[i+1:]...)
	return out, true
}

// IndexOf returns the index of the first occurrence of v, or -1.
func IndexOf[T comparable](seq []T, v T) int {
	for i, e := range seq {
		if e == v {
			return i
		}
	}
	return -1
}
