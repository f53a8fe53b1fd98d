package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(length int) []Response {
	var out []Response
	for r := range Responses(length) {
		out = append(out, r)
	}
	return out
}

func TestResponsesLengthOne(t *testing.T) {
	got := collect(1)
	require.Len(t, got, 3)
	for i, r := range got {
		assert.Equal(t, Response{Mark(i)}, r)
	}
}

func TestResponsesLengthTwoOrder(t *testing.T) {
	want := []Response{
		{MarkMiss, MarkMiss},
		{MarkPresent, MarkMiss},
		{MarkHit, MarkMiss},
		{MarkMiss, MarkPresent},
		{MarkPresent, MarkPresent},
		{MarkHit, MarkPresent},
		{MarkMiss, MarkHit},
		{MarkPresent, MarkHit},
		{MarkHit, MarkHit},
	}
	assert.Equal(t, want, collect(2))
}

func TestResponsesLengthThreeIsBaseThreeCounter(t *testing.T) {
	got := collect(3)
	require.Len(t, got, 27)
	for n, r := range got {
		v := int(r[0]) + 3*int(r[1]) + 9*int(r[2])
		assert.Equal(t, n, v)
	}
}

func TestResponsesDistinctAndComplete(t *testing.T) {
	for length := 0; length <= 5; length++ {
		seen := map[string]bool{}
		for r := range Responses(length) {
			require.Len(t, r, length)
			seen[r.String()] = true
		}
		assert.Len(t, seen, ResponseCount(length), "length %d", length)
	}
	assert.Equal(t, 243, ResponseCount(5))
	assert.Empty(t, collect(-1))
}

func TestResponsesRestartable(t *testing.T) {
	seq := Responses(2)
	var first, second []Response
	for r := range seq {
		first = append(first, r)
	}
	for r := range seq {
		second = append(second, r)
	}
	assert.Equal(t, first, second)

	// Yielded slices are independent of the counter.
	first[0][0] = MarkHit
	assert.Equal(t, MarkMiss, collect(2)[0][0])
}

func TestResponsesEarlyStop(t *testing.T) {
	n := 0
	for range Responses(4) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}
