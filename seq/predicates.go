package seq

func (s Seq[E]) AllTrue(p func(E) bool) bool {
	for v := range s.Values() {
		if !p(v) {
			return false
		}
	}
	return true
}

func (s Seq[E]) AnyTrue(p func(E) bool) bool {
	for v := range s.Values() {
		if p(v) {
			return true
		}
	}
	return false
}

func (s Seq[E]) NoneTrue(p func(E) bool) bool {
	return !s.AnyTrue(p)
}

// ContainsAll reports whether every element of b is a member of a
func ContainsAll[E any](a, b Seq[E]) bool {
	return b.AllTrue(a.Member)
}

// ContainsAny reports whether some element of b is a member of a
func ContainsAny[E any](a, b Seq[E]) bool {
	return b.AnyTrue(a.Member)
}

// ContainsNone reports whether no element of b is a member of a
func ContainsNone[E any](a, b Seq[E]) bool {
	return b.NoneTrue(a.Member)
}

// ContainsOnly reports whether every element of a is a member of b
func ContainsOnly[E any](a, b Seq[E]) bool {
	return ContainsAll(b, a)
}

// ContainsExactly reports whether a and b hold the same distinct elements,
// regardless of order and multiplicity
func ContainsExactly[E any](a, b Seq[E]) bool {
	return ContainsAll(a, b) && ContainsAll(b, a)
}
