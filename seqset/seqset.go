// Package seqset answers the set-style queries of package seq with hash sets, and adds
// set algebra over ValueLists of ordered scalars.
//
// The hash-based predicates take ValueLists only, where hash equality and seq.Equal
// coincide, so they agree with seq.ContainsAll and friends and differ only in cost.
package seqset

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/cottand/seqalg/seq"
	"github.com/cottand/seqalg/util"
)

// Distinct returns the distinct elements of s
func Distinct[T seq.Scalar](s seq.ValueList[T]) *set.Set[T] {
	return util.SetFromSeq(s.Values(), s.Len())
}

func ContainsAll[T seq.Scalar](a, b seq.ValueList[T]) bool {
	return b.AllTrue(Distinct(a).Contains)
}

func ContainsAny[T seq.Scalar](a, b seq.ValueList[T]) bool {
	return b.AnyTrue(Distinct(a).Contains)
}

func ContainsNone[T seq.Scalar](a, b seq.ValueList[T]) bool {
	return b.NoneTrue(Distinct(a).Contains)
}

func ContainsOnly[T seq.Scalar](a, b seq.ValueList[T]) bool {
	return ContainsAll(b, a)
}

func ContainsExactly[T seq.Scalar](a, b seq.ValueList[T]) bool {
	da, db := Distinct(a), Distinct(b)
	return da.Size() == db.Size() && b.AllTrue(da.Contains)
}
