package seq

import (
	"fmt"
	"iter"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/goccy/go-json"

	"github.com/cottand/seqalg/internal/log"
)

var logger = log.DefaultLogger.With("section", "seq")

// Seq is a persistent, fixed-size, ordered sequence of elements of type E.
// The zero value is an empty sequence.
type Seq[E any] struct {
	items *immutable.List[E]
}

// List is the heterogeneous sequence: its elements may be values of any type
type List = Seq[any]

// ValueList is the homogeneous sequence of scalars of type T
type ValueList[T Scalar] = Seq[T]

var _ Sequence = List{}
var _ Sequence = ValueList[int]{}

func FromSlice[E any](elems []E) Seq[E] {
	if len(elems) == 0 {
		return Seq[E]{}
	}
	b := immutable.NewListBuilder[E]()
	for _, e := range elems {
		b.Append(e)
	}
	return Seq[E]{items: b.List()}
}

func fromIter[E any](elems iter.Seq[E]) Seq[E] {
	b := immutable.NewListBuilder[E]()
	for e := range elems {
		b.Append(e)
	}
	return seqOf(b.List())
}

func Of[E any](elems ...E) Seq[E] {
	return FromSlice(elems)
}

func NewList(elems ...any) List {
	return FromSlice(elems)
}

func Values[T Scalar](vs ...T) ValueList[T] {
	return FromSlice(vs)
}

// Chars builds a ValueList holding the characters of s, in order
func Chars(s string) ValueList[rune] {
	return FromSlice([]rune(s))
}

// Text is the inverse of Chars
func Text(s ValueList[rune]) string {
	return string(s.Slice())
}

func (s Seq[E]) Len() int {
	if s.items == nil {
		return 0
	}
	return s.items.Len()
}

func (s Seq[E]) Kind() Kind {
	return kindOf[E]()
}

// All yields every element together with its index
func (s Seq[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		if s.items == nil {
			return
		}
		itr := s.items.Iterator()
		for !itr.Done() {
			if !yield(itr.Next()) {
				return
			}
		}
	}
}

func (s Seq[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Elements yields the elements of s as the kind-erased surface sees them:
// elements of a heterogeneous sequence as they are, the values of a homogeneous
// sequence inside a Wrapper.
func (s Seq[E]) Elements() iter.Seq[any] {
	hetero := s.Kind().Hetero()
	return func(yield func(any) bool) {
		for v := range s.Values() {
			var elem any = v
			if !hetero {
				elem = Wrapper[E]{Value: v}
			}
			if !yield(elem) {
				return
			}
		}
	}
}

// Slice copies the elements of s into a new slice
func (s Seq[E]) Slice() []E {
	ret := make([]E, 0, s.Len())
	for v := range s.Values() {
		ret = append(ret, v)
	}
	return ret
}

func (s Seq[E]) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, v := range s.All() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString("]")
	return sb.String()
}

func (s Seq[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s Seq[E]) list() *immutable.List[E] {
	if s.items == nil {
		return immutable.NewList[E]()
	}
	return s.items
}

func seqOf[E any](l *immutable.List[E]) Seq[E] {
	if l == nil || l.Len() == 0 {
		return Seq[E]{}
	}
	return Seq[E]{items: l}
}

func appendAll[E any](dst *immutable.List[E], src iter.Seq[E]) *immutable.List[E] {
	for v := range src {
		dst = dst.Append(v)
	}
	return dst
}
