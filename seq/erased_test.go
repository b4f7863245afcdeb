package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottand/seqalg/seqerr"
)

func TestConcatAny(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Sequence
		expected Sequence
		code     seqerr.ErrCode
	}{
		{name: "value lists", a: Values(1, 2), b: Values(3), expected: Values(1, 2, 3)},
		{name: "lists", a: NewList("a"), b: NewList(1), expected: NewList("a", 1)},
		{name: "different scalar types", a: Values(1, 2), b: Chars("ab"), code: seqerr.KindMismatch},
		{name: "list with value list", a: NewList(1), b: Values(1), code: seqerr.KindMismatch},
		{name: "value list with list", a: Values(1), b: NewList(1), code: seqerr.KindMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			joined, err := ConcatAny(tc.a, tc.b)
			if tc.code != seqerr.None {
				assert.Equal(t, tc.code, seqerr.CodeOf(err))
				assert.Nil(t, joined)
				return
			}
			require.NoError(t, err)
			assertSameSeq(t, tc.expected, joined)
		})
	}
}

func TestJoinAny(t *testing.T) {
	joined, err := JoinAny(Values(1), Values(2, 3), Values(4))
	require.NoError(t, err)
	assertSameSeq(t, Values(1, 2, 3, 4), joined)

	single, err := JoinAny(Chars("ab"))
	require.NoError(t, err)
	assertSameSeq(t, Chars("ab"), single)

	_, err = JoinAny()
	assert.Equal(t, seqerr.EmptyInput, seqerr.CodeOf(err))

	_, err = JoinAny(Values(1), Values(2), Values("3"))
	assert.Equal(t, seqerr.KindMismatch, seqerr.CodeOf(err))
}

func double(x any) any {
	if v, ok := Unwrap[int](x); ok {
		return v * 2
	}
	return x
}

func TestMapDepth(t *testing.T) {
	length := func(x any) any { return x.(Sequence).Len() }
	assert.Equal(t, 3, MapDepth(Values(1, 2, 3), 0, length))

	var seen []any
	record := func(x any) any {
		seen = append(seen, x)
		return double(x)
	}
	mapped := MapDepth(Values(1, 2, 3), 1, record)
	assert.Equal(t, []any{Wrap(1), Wrap(2), Wrap(3)}, seen)
	assertSameSeq(t, NewList(2, 4, 6), mapped.(Sequence))

	nested := NewList(Values(1, 2), Values(3), 4)
	assertSameSeq(t, NewList(2, 1, 4), MapDepth(nested, 1, func(x any) any {
		if s, ok := x.(Sequence); ok {
			return s.Len()
		}
		return x
	}).(Sequence))
	assertSameSeq(t, NewList(NewList(2, 4), NewList(6), 8), MapDepth(nested, 2, double).(Sequence))
	assertSameSeq(t, NewList(NewList(2, 4), NewList(6), 8), MapDepth(nested, 3, double).(Sequence))
}

func TestApplyDepth(t *testing.T) {
	sum := func(xs ...any) any {
		total := 0
		for _, x := range xs {
			v, ok := Unwrap[int](x)
			if !ok {
				return "not a number"
			}
			total += v
		}
		return total
	}

	assert.Equal(t, 6, ApplyDepth(Values(1, 2, 3), 0, sum))
	assert.Equal(t, 6, ApplyDepth(NewList(1, 2, 3), 0, sum))
	assertSameSeq(t, NewList(6), ApplyDepth(Values(1, 2, 3), 1, sum).(Sequence))

	nested := NewList(Values(1, 2), NewList(3, 4), "x")
	assertSameSeq(t, NewList(3, 7, "x"), ApplyDepth(nested, 1, sum).(Sequence))
	assertSameSeq(t, NewList(NewList(3), NewList(3, 4), "x"), ApplyDepth(nested, 2, sum).(Sequence))
}
