package seq

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types a ValueList may hold
type Scalar interface {
	constraints.Ordered | ~bool
}

// Number is the set of types a Progression can run over
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind discriminates heterogeneous sequences from homogeneous ones, and homogeneous
// sequences by their element type.
//
// The zero Kind is the heterogeneous kind.
type Kind struct {
	elem reflect.Type
}

func kindOf[E any]() Kind {
	t := reflect.TypeFor[E]()
	if t.Kind() == reflect.Interface {
		return Kind{}
	}
	return Kind{elem: t}
}

// Hetero reports whether sequences of this kind may hold elements of any type
func (k Kind) Hetero() bool {
	return k.elem == nil
}

// Elem returns the element type of a homogeneous kind, or nil
func (k Kind) Elem() reflect.Type {
	return k.elem
}

func (k Kind) String() string {
	if k.Hetero() {
		return "List"
	}
	return fmt.Sprintf("ValueList[%v]", k.elem)
}

// Wrapper carries a single scalar value.
// The kind-erased surface presents each element of a ValueList as a Wrapper so that
// callbacks can tell raw values apart from heterogeneous elements.
type Wrapper[T any] struct {
	Value T
}

func Wrap[T any](v T) Wrapper[T] {
	return Wrapper[T]{Value: v}
}

func (w Wrapper[T]) String() string {
	return fmt.Sprint(w.Value)
}

// Unwrap returns the value carried by x if x is a Wrapper[T] or a bare T
func Unwrap[T any](x any) (T, bool) {
	switch v := x.(type) {
	case Wrapper[T]:
		return v.Value, true
	case T:
		return v, true
	}
	var zero T
	return zero, false
}

// TypeOf returns T as a value, for building type-level lists such as
// NewList(TypeOf[int](), TypeOf[bool]())
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Conditional selects ifTrue or ifFalse
func Conditional[T any](cond bool, ifTrue, ifFalse T) T {
	if cond {
		return ifTrue
	}
	return ifFalse
}
