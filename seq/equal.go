package seq

import (
	"iter"
	"reflect"
)

// Equaler is implemented by element values that define their own equality
type Equaler interface {
	Equal(other any) bool
}

// Equal is the element equality every search, replace, dedup and set operation uses.
//
// Sequences are equal when they have the same Kind, the same length and pairwise equal
// elements. Values implementing Equaler decide for themselves, reflect.Type values are
// equal when they denote the same type, and anything else is compared deeply.
func Equal(a, b any) bool {
	if sa, ok := a.(Sequence); ok {
		sb, ok := b.(Sequence)
		return ok && sequencesEqual(sa, sb)
	}
	if ea, ok := a.(Equaler); ok {
		return ea.Equal(b)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ta, ok := a.(reflect.Type); ok {
		tb, ok := b.(reflect.Type)
		return ok && ta == tb
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if isBasic(ta.Kind()) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func isBasic(k reflect.Kind) bool {
	return k >= reflect.Bool && k <= reflect.Complex128 || k == reflect.String
}

func sequencesEqual(a, b Sequence) bool {
	if a.Kind() != b.Kind() || a.Len() != b.Len() {
		return false
	}
	nextB, stop := iter.Pull(b.Elements())
	defer stop()
	for elemA := range a.Elements() {
		elemB, ok := nextB()
		if !ok || !Equal(elemA, elemB) {
			return false
		}
	}
	return true
}

func eq[E any](a, b E) bool {
	return Equal(any(a), any(b))
}
