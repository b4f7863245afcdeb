package seqset

import (
	"cmp"
	"slices"
	"sort"

	xset "github.com/xtgo/set"

	"github.com/cottand/seqalg/seq"
)

type ordered[T cmp.Ordered] []T

func (o ordered[T]) Len() int           { return len(o) }
func (o ordered[T]) Less(i, j int) bool { return cmp.Less(o[i], o[j]) }
func (o ordered[T]) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }

// Canonical returns the distinct elements of s in ascending order
func Canonical[T cmp.Ordered](s seq.ValueList[T]) seq.ValueList[T] {
	data := ordered[T](seq.Sort(s).Slice())
	n := xset.Uniq(data)
	return seq.FromSlice([]T(data[:n]))
}

// pair lays the canonical forms of a and b out back to back, as the xtgo/set
// algorithms expect, and returns the index where b starts
func pair[T cmp.Ordered](a, b seq.ValueList[T]) (ordered[T], int) {
	ca := Canonical(a).Slice()
	return append(ca, Canonical(b).Slice()...), len(ca)
}

func combine[T cmp.Ordered](op func(sort.Interface, int) int, a, b seq.ValueList[T]) seq.ValueList[T] {
	data, pivot := pair(a, b)
	out := []T(data[:op(data, pivot)])
	slices.SortFunc(out, cmp.Compare[T])
	return seq.FromSlice(out)
}

// Union returns the distinct elements of a and b, ascending
func Union[T cmp.Ordered](a, b seq.ValueList[T]) seq.ValueList[T] {
	return combine(xset.Union, a, b)
}

// Intersect returns the distinct elements present in both a and b, ascending
func Intersect[T cmp.Ordered](a, b seq.ValueList[T]) seq.ValueList[T] {
	return combine(xset.Inter, a, b)
}

// Subtract returns the distinct elements of a that are not in b, ascending
func Subtract[T cmp.Ordered](a, b seq.ValueList[T]) seq.ValueList[T] {
	return combine(xset.Diff, a, b)
}

// IsSubset reports whether every element of a is in b
func IsSubset[T cmp.Ordered](a, b seq.ValueList[T]) bool {
	data, pivot := pair(a, b)
	return xset.IsSub(data, pivot)
}

// Equivalent reports whether a and b hold the same distinct elements
func Equivalent[T cmp.Ordered](a, b seq.ValueList[T]) bool {
	data, pivot := pair(a, b)
	return xset.IsEqual(data, pivot)
}
