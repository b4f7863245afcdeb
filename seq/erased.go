package seq

import (
	"iter"
	"slices"

	"github.com/benbjohnson/immutable"

	"github.com/cottand/seqalg/seqerr"
)

// Sequence is the kind-erased view shared by every Seq
type Sequence interface {
	Len() int
	Kind() Kind
	Elements() iter.Seq[any]
	String() string

	concatErased(Sequence) (Sequence, error)
}

func (s Seq[E]) concatErased(o Sequence) (Sequence, error) {
	other, ok := o.(Seq[E])
	if !ok {
		return nil, kindMismatch("concat", s.Kind(), o.Kind())
	}
	return s.Concat(other), nil
}

// ConcatAny appends b's elements after a's. Both must be of the same Kind.
func ConcatAny(a, b Sequence) (Sequence, error) {
	return a.concatErased(b)
}

// JoinAny left-folds ConcatAny over seqs
func JoinAny(seqs ...Sequence) (Sequence, error) {
	if len(seqs) == 0 {
		return nil, emptyInput("join")
	}
	acc := seqs[0]
	for _, next := range seqs[1:] {
		joined, err := acc.concatErased(next)
		if err != nil {
			return nil, err
		}
		acc = joined
	}
	return acc, nil
}

// MapDepth applies f at the given depth of a possibly nested sequence.
//
// At depth 0 (or below) f receives s itself. At depth n, each element of a List is
// mapped at depth n-1, and every element of a ValueList is handed to f as a Wrapper.
// Elements that are not sequences cannot be descended into and are handed to f directly.
// Whenever the result is built from elements it is a List.
func MapDepth(s Sequence, depth int, f func(any) any) any {
	return mapDepth(s, depth, f)
}

func mapDepth(x any, depth int, f func(any) any) any {
	s, ok := x.(Sequence)
	if !ok || depth <= 0 {
		return f(x)
	}
	out := immutable.NewListBuilder[any]()
	for elem := range s.Elements() {
		if s.Kind().Hetero() {
			out.Append(mapDepth(elem, depth-1, f))
		} else {
			out.Append(f(elem))
		}
	}
	return seqOf(out.List())
}

// ApplyDepth unpacks a sequence into the arguments of f at the given depth.
//
// At depth 0 (or below) f receives the elements of s, with ValueList values wrapped.
// At depth n, each element of a List is applied at depth n-1, and a ValueList becomes
// a one-element List holding f applied to its wrapped values. Elements that are not
// sequences are left as they are.
func ApplyDepth(s Sequence, depth int, f func(...any) any) any {
	return applyDepth(s, depth, f)
}

func applyDepth(x any, depth int, f func(...any) any) any {
	s, ok := x.(Sequence)
	if !ok {
		return x
	}
	if depth <= 0 {
		return f(slices.Collect(s.Elements())...)
	}
	if !s.Kind().Hetero() {
		return NewList(f(slices.Collect(s.Elements())...))
	}
	out := immutable.NewListBuilder[any]()
	for elem := range s.Elements() {
		out.Append(applyDepth(elem, depth-1, f))
	}
	return seqOf(out.List())
}

func kindMismatch(op string, first, second Kind) error {
	err := seqerr.New(seqerr.NewKindMismatch{Op: op, First: first, Second: second})
	logger.Debug("fault", "op", op, "code", err.Code(), "first", first, "second", second)
	return err
}
