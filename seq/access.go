package seq

import "github.com/cottand/seqalg/util"

// Get returns the element at position n
func (s Seq[E]) Get(n int) (E, error) {
	if n < 0 || n >= s.Len() {
		var zero E
		return zero, outOfRange("get", n, s.Len())
	}
	return s.items.Get(n), nil
}

// Set returns a copy of s with the element at position n replaced by v
func (s Seq[E]) Set(n int, v E) (Seq[E], error) {
	if n < 0 || n >= s.Len() {
		return Seq[E]{}, outOfRange("set", n, s.Len())
	}
	return Seq[E]{items: s.items.Set(n, v)}, nil
}

// Insert returns a copy of s with v placed before position n.
// n may equal Len, in which case v is appended.
func (s Seq[E]) Insert(n int, v E) (Seq[E], error) {
	if n < 0 || n > s.Len() {
		return Seq[E]{}, outOfRange("insert", n, s.Len()+1)
	}
	l := s.list()
	switch n {
	case 0:
		return Seq[E]{items: l.Prepend(v)}, nil
	case l.Len():
		return Seq[E]{items: l.Append(v)}, nil
	}
	return fromIter(util.ConcatIter(s.Take(n).Values(), util.SingleIter(v), s.Drop(n).Values())), nil
}

// Erase returns a copy of s without the element at position n
func (s Seq[E]) Erase(n int) (Seq[E], error) {
	if n < 0 || n >= s.Len() {
		return Seq[E]{}, outOfRange("erase", n, s.Len())
	}
	if n == 0 {
		return s.Drop(1), nil
	}
	head := s.items.Slice(0, n)
	return seqOf(appendAll(head, s.Drop(n+1).Values())), nil
}

// Concat returns the elements of s followed by the elements of o
func (s Seq[E]) Concat(o Seq[E]) Seq[E] {
	if s.Len() == 0 {
		return o
	}
	if o.Len() == 0 {
		return s
	}
	return Seq[E]{items: appendAll(s.items, o.Values())}
}

// Join concatenates every sequence, left to right
func Join[E any](first Seq[E], rest ...Seq[E]) Seq[E] {
	acc := first
	for _, s := range rest {
		acc = acc.Concat(s)
	}
	return acc
}

// Take returns the first n elements of s, or all of s if it is shorter
func (s Seq[E]) Take(n int) Seq[E] {
	switch {
	case n <= 0:
		return Seq[E]{}
	case n >= s.Len():
		return s
	}
	return Seq[E]{items: s.items.Slice(0, n)}
}

// Drop returns s without its first n elements, or an empty sequence if it is shorter
func (s Seq[E]) Drop(n int) Seq[E] {
	switch {
	case n <= 0:
		return s
	case n >= s.Len():
		return Seq[E]{}
	}
	return Seq[E]{items: s.items.Slice(n, s.items.Len())}
}

// Extract gathers the elements at the positions listed in idx, in idx order.
// Positions may repeat.
func (s Seq[E]) Extract(idx Seq[int]) (Seq[E], error) {
	ret := make([]E, 0, idx.Len())
	for _, n := range idx.All() {
		if n < 0 || n >= s.Len() {
			return Seq[E]{}, outOfRange("extract", n, s.Len())
		}
		ret = append(ret, s.items.Get(n))
	}
	return FromSlice(ret), nil
}

func (s Seq[E]) First() (E, error) {
	if s.Len() == 0 {
		var zero E
		return zero, emptyInput("first")
	}
	return s.items.Get(0), nil
}

func (s Seq[E]) Last() (E, error) {
	if s.Len() == 0 {
		var zero E
		return zero, emptyInput("last")
	}
	return s.items.Get(s.Len() - 1), nil
}
