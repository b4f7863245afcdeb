package seq

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	testCases := []struct {
		name     string
		s        Sequence
		hetero   bool
		expected string
	}{
		{name: "list", s: NewList(1, "a"), hetero: true, expected: "List"},
		{name: "empty list", s: List{}, hetero: true, expected: "List"},
		{name: "int values", s: Values(1), expected: "ValueList[int]"},
		{name: "chars", s: Chars("a"), expected: "ValueList[int32]"},
		{name: "bools", s: Values(true), expected: "ValueList[bool]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.hetero, tc.s.Kind().Hetero())
			assert.Equal(t, tc.expected, tc.s.Kind().String())
		})
	}
	assert.Equal(t, TypeOf[float64](), Values(1.5).Kind().Elem())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", Values(1, 2, 3).String())
	assert.Equal(t, "[]", List{}.String())
	assert.Equal(t, "[1 a [2 3] [true]]", NewList(1, "a", Values(2, 3), NewList(true)).String())
	assert.Equal(t, "[int bool]", NewList(TypeOf[int](), TypeOf[bool]()).String())
}

func TestMarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		s        Sequence
		expected string
	}{
		{name: "ints", s: Values(1, 2), expected: `[1,2]`},
		{name: "empty", s: ValueList[int]{}, expected: `[]`},
		{name: "strings", s: Values("a", "b"), expected: `["a","b"]`},
		{name: "nested", s: NewList(1, "a", Values(2), NewList(false)), expected: `[1,"a",[2],[false]]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			marshaler, ok := tc.s.(interface{ MarshalJSON() ([]byte, error) })
			require.True(t, ok)
			out, err := marshaler.MarshalJSON()
			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(out))
		})
	}
}

func TestCharsRoundTrip(t *testing.T) {
	assert.Equal(t, "héllo", Text(Chars("héllo")))
	assert.Equal(t, 5, Chars("héllo").Len())
	assert.Equal(t, "", Text(Chars("")))
}

func TestElements(t *testing.T) {
	assert.Equal(t, []any{Wrap(1), Wrap(2)}, slices.Collect(Values(1, 2).Elements()))
	assert.Equal(t, []any{1, "a"}, slices.Collect(NewList(1, "a").Elements()))
}

func TestUnwrap(t *testing.T) {
	v, ok := Unwrap[int](Wrap(3))
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = Unwrap[int](4)
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = Unwrap[int]("4")
	assert.False(t, ok)
	assert.Equal(t, "'x'", "'"+Wrap("x").String()+"'")
}

func TestConditional(t *testing.T) {
	assert.Equal(t, "yes", Conditional(true, "yes", "no"))
	assert.Equal(t, "no", Conditional(false, "yes", "no"))
}

func TestIterationStopsEarly(t *testing.T) {
	var firstTwo []int
	for i, v := range Values(1, 2, 3, 4).All() {
		if i == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	assert.Equal(t, []int{1, 2}, firstTwo)
}

func TestConcurrentReaders(t *testing.T) {
	base := Values(5, 3, 3, 1, 4)
	var wg sync.WaitGroup
	results := make([][]int, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			extended, _ := base.Insert(0, i)
			results[i] = Sort(extended).Unique().Slice()
		}()
	}
	wg.Wait()

	assertSeq(t, []int{5, 3, 3, 1, 4}, base)
	assert.Equal(t, []int{0, 1, 3, 4, 5}, results[0])
	assert.Equal(t, []int{1, 3, 4, 5, 7}, results[7])
}
