package seq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type caseless string

func (c caseless) Equal(other any) bool {
	o, ok := other.(caseless)
	return ok && strings.EqualFold(string(c), string(o))
}

func TestEqual(t *testing.T) {
	built, err := Values(1, 3).Insert(1, 2)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{name: "ints", a: 1, b: 1, expected: true},
		{name: "different ints", a: 1, b: 2},
		{name: "same value, different types", a: 1, b: int64(1)},
		{name: "nils", a: nil, b: nil, expected: true},
		{name: "nil and value", a: nil, b: 0},
		{name: "slices", a: []int{1, 2}, b: []int{1, 2}, expected: true},
		{name: "types", a: TypeOf[int](), b: TypeOf[int](), expected: true},
		{name: "different types", a: TypeOf[int](), b: TypeOf[uint](), expected: false},
		{name: "sequences built differently", a: Values(1, 2, 3), b: built, expected: true},
		{name: "sequences of different kinds", a: Values(1, 2), b: NewList(1, 2)},
		{name: "sequence and non-sequence", a: Values(1), b: 1},
		{name: "nested", a: NewList(1, NewList(Chars("ab"))), b: NewList(1, NewList(Chars("a").Concat(Chars("b")))), expected: true},
		{name: "equaler", a: caseless("Go"), b: caseless("gO"), expected: true},
		{name: "wrappers", a: Wrap('a'), b: Wrap('a'), expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Equal(tc.a, tc.b))
			assert.Equal(t, tc.expected, Equal(tc.b, tc.a))
		})
	}
}

func TestEqualerDrivesSearch(t *testing.T) {
	s := NewList(caseless("Alpha"), caseless("beta"))
	assert.Equal(t, 1, s.FindOrFail(caseless("BETA")))
	assert.Equal(t, 2, NewList(caseless("x"), caseless("X")).Count(caseless("x")))
}
