package game

import "iter"

// ResponseCount returns NumMarks^length, the number of distinct responses
// for words of the given length.
func ResponseCount(length int) int {
	if length < 0 {
		return 0
	}
	n := 1
	for i := 0; i < length; i++ {
		n *= NumMarks
	}
	return n
}

// Responses enumerates every response of the given length.
//
// The order is that of a base-3 counter with position 0 as the least
// significant digit: 0 = MarkMiss, 1 = MarkPresent, 2 = MarkHit.
// Every call returns an independent sequence and every yielded Response
// is a fresh slice the caller may keep.
func Responses(length int) iter.Seq[Response] {
	return func(yield func(Response) bool) {
		if length < 0 {
			return
		}
		digits := make(Response, length)
		for {
			out := make(Response, length)
			copy(out, digits)
			if !yield(out) {
				return
			}
			p := 0
			for ; p < length; p++ {
				if digits[p] < NumMarks-1 {
					digits[p]++
					break
				}
				digits[p] = MarkMiss
			}
			if p == length {
				return
			}
		}
	}
}
