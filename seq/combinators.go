package seq

import (
	"github.com/benbjohnson/immutable"

	"github.com/cottand/seqalg/util"
)

// Map applies f to every element of s
func Map[E, R any](s Seq[E], f func(E) R) Seq[R] {
	out := immutable.NewListBuilder[R]()
	for v := range s.Values() {
		out.Append(f(v))
	}
	return seqOf(out.List())
}

// Apply calls f with the elements of s as its arguments
func Apply[E, R any](s Seq[E], f func(...E) R) R {
	return f(s.Slice()...)
}

// Thread calls f once per position with the elements of every sequence at that
// position. All sequences must have the same length.
func Thread[E, R any](f func(...E) R, seqs ...Seq[E]) (Seq[R], error) {
	if len(seqs) == 0 {
		return Seq[R]{}, nil
	}
	n := seqs[0].Len()
	for _, s := range seqs[1:] {
		if s.Len() != n {
			return Seq[R]{}, lengthMismatch("thread", lengthsOf(seqs))
		}
	}
	out := immutable.NewListBuilder[R]()
	args := make([]E, len(seqs))
	for i := 0; i < n; i++ {
		for j, s := range seqs {
			args[j] = s.items.Get(i)
		}
		out.Append(f(args...))
	}
	return seqOf(out.List()), nil
}

func lengthsOf[E any](seqs []Seq[E]) []int {
	ret := make([]int, len(seqs))
	for i, s := range seqs {
		ret[i] = s.Len()
	}
	return ret
}

// Zip pairs up the elements of two sequences of the same length
func Zip[A, B any](a Seq[A], b Seq[B]) (Seq[util.Pair[A, B]], error) {
	if a.Len() != b.Len() {
		return Seq[util.Pair[A, B]]{}, lengthMismatch("zip", []int{a.Len(), b.Len()})
	}
	out := immutable.NewListBuilder[util.Pair[A, B]]()
	for i, v := range a.All() {
		out.Append(util.NewPair(v, b.items.Get(i)))
	}
	return seqOf(out.List()), nil
}

// Fold combines seed with every element of s, from the left:
// f(f(f(seed, s0), s1), s2)
func Fold[E, A any](s Seq[E], seed A, f func(A, E) A) A {
	acc := seed
	for v := range s.Values() {
		acc = f(acc, v)
	}
	return acc
}

// Difference combines every pair of adjacent elements with f.
// Sequences with fewer than two elements are returned as they are.
func Difference[E any](s Seq[E], f func(E, E) E) Seq[E] {
	if s.Len() <= 1 {
		return s
	}
	out := immutable.NewListBuilder[E]()
	prev := s.items.Get(0)
	for v := range s.Drop(1).Values() {
		out.Append(f(prev, v))
		prev = v
	}
	return seqOf(out.List())
}

// Select keeps the elements for which keep holds, in order
func (s Seq[E]) Select(keep func(E) bool) Seq[E] {
	return fromIter(util.FilterIter(s.Values(), keep))
}

// Table realizes p and applies f to each of its values, in ascending order
func Table[T Number, R any](p Progression[T], f func(T) R) (Seq[R], error) {
	if err := p.validate(); err != nil {
		return Seq[R]{}, err
	}
	return fromIter(util.MapIter(p.values(), f)), nil
}

// Array is Table over start..n by 1, with start 1
func Array[T Number, R any](n T, f func(T) R) Seq[R] {
	return ArrayFrom(1, n, f)
}

func ArrayFrom[T Number, R any](start, n T, f func(T) R) Seq[R] {
	p := NewProgression(start, n, 1)
	return fromIter(util.MapIter(p.values(), f))
}
