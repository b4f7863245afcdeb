package seq

// NotFound is returned by FindOrFail when the item is absent
const NotFound = -1

// FindOrFail returns the position of the first element equal to x, or NotFound
func (s Seq[E]) FindOrFail(x E) int {
	for i, v := range s.All() {
		if eq(v, x) {
			return i
		}
	}
	return NotFound
}

// Find returns the position of the first element equal to x
func (s Seq[E]) Find(x E) (int, error) {
	i := s.FindOrFail(x)
	if i == NotFound {
		return NotFound, notFound("find", x)
	}
	return i, nil
}

func (s Seq[E]) Count(x E) int {
	n := 0
	for v := range s.Values() {
		if eq(v, x) {
			n++
		}
	}
	return n
}

func (s Seq[E]) Member(x E) bool {
	return s.FindOrFail(x) != NotFound
}

// Replace replaces the first element equal to x with y
func (s Seq[E]) Replace(x, y E) Seq[E] {
	i := s.FindOrFail(x)
	if i == NotFound {
		return s
	}
	return Seq[E]{items: s.items.Set(i, y)}
}

// ReplaceAll replaces every element equal to x with y
func (s Seq[E]) ReplaceAll(x, y E) Seq[E] {
	l := s.items
	for i, v := range s.All() {
		if eq(v, x) {
			l = l.Set(i, y)
		}
	}
	return seqOf(l)
}
