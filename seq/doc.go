// Package seq implements an immutable sequence algebra over two kinds of fixed-size
// sequences: heterogeneous Lists, whose elements may be any value (including
// reflect.Type values, for type-level lists), and homogeneous ValueLists of one scalar
// type.
//
// Every operation returns a new sequence and leaves its inputs untouched. Sequences are
// persistent vectors, so derived sequences share structure with the sequences they were
// derived from and are safe to use from any number of goroutines.
//
// Operations that can fail return an error carrying a seqerr.Fault; the only designed
// non-faulting lookup is FindOrFail, which returns NotFound instead.
//
// Where Go's type system can express a shape constraint the compiler enforces it: a
// ValueList[int] cannot be concatenated with a ValueList[rune], and only ValueLists of
// ordered scalars can be sorted. The kind-erased Sequence surface (ConcatAny, JoinAny,
// MapDepth, ApplyDepth) checks the same constraints at run time.
package seq
