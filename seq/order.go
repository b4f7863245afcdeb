package seq

import (
	"cmp"

	"github.com/benbjohnson/immutable"

	"github.com/cottand/seqalg/util"
)

// Sort orders s with a quicksort that always pivots on the first element.
// Elements equal to the pivot keep their relative order.
func Sort[T cmp.Ordered](s ValueList[T]) ValueList[T] {
	if s.Len() <= 1 {
		return s
	}
	pivot := s.items.Get(0)
	rest := s.Drop(1)

	less := Sort(rest.Select(func(v T) bool { return cmp.Compare(v, pivot) < 0 }))
	equal := rest.Select(func(v T) bool { return cmp.Compare(v, pivot) == 0 })
	greater := Sort(rest.Select(func(v T) bool { return cmp.Compare(v, pivot) > 0 }))

	return fromIter(util.ConcatIter(less.Values(), util.SingleIter(pivot), equal.Values(), greater.Values()))
}

// Unique removes consecutive duplicates. Sort first to remove every duplicate.
func (s Seq[E]) Unique() Seq[E] {
	if s.Len() <= 1 {
		return s
	}
	out := immutable.NewListBuilder[E]()
	var prev E
	for i, v := range s.All() {
		if i == 0 || !eq(prev, v) {
			out.Append(v)
		}
		prev = v
	}
	return seqOf(out.List())
}

type flattenFrame struct {
	seq   List
	pos   int
	depth int
}

// Flatten splices nested Lists into their parent, removing up to depth levels of
// nesting. A negative depth removes every level; depth 0 returns s.
// Elements that are not Lists, ValueLists included, are kept as they are.
func Flatten(s List, depth int) List {
	if depth == 0 {
		return s
	}
	out := immutable.NewListBuilder[any]()
	var frames util.Stack[flattenFrame]
	frames.Push(flattenFrame{seq: s, depth: depth})
	for frames.Len() > 0 {
		top, _ := frames.Peek()
		if top.pos >= top.seq.Len() {
			frames.Pop()
			continue
		}
		elem := top.seq.items.Get(top.pos)
		top.pos++
		if nested, ok := elem.(List); ok && top.depth != 0 {
			frames.Push(flattenFrame{seq: nested, depth: top.depth - 1})
			continue
		}
		out.Append(elem)
	}
	return seqOf(out.List())
}

func FlattenAll(s List) List {
	return Flatten(s, -1)
}
