// Package seqerr holds the faults raised by sequence operations.
//
// Every fault aborts the operation that raised it: the inputs are left untouched and
// no partial result is produced.
package seqerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
)

// enableDebugErrorPrinting makes faults include the frame that raised them when formatted
var enableDebugErrorPrinting = false

const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	IndexOutOfRange
	KindMismatch
	EmptyInput
	LengthMismatch
	NotFound
	InvalidProgression
)

func (c ErrCode) String() string {
	switch c {
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case KindMismatch:
		return "KindMismatch"
	case EmptyInput:
		return "EmptyInput"
	case LengthMismatch:
		return "LengthMismatch"
	case NotFound:
		return "NotFound"
	case InvalidProgression:
		return "InvalidProgression"
	default:
		return "None"
	}
}

type Fault interface {
	Error() string
	Code() ErrCode

	withStack([]byte) Fault
	getStack() []byte
}

// New records the current stack on err and returns it as a Fault
func New[E Fault](err E) Fault {
	return err.withStack(debug.Stack())
}

// SetDebugPrinting toggles whether FormatWithCode includes the raising frame
func SetDebugPrinting(enabled bool) {
	enableDebugErrorPrinting = enabled
}

func FormatWithCode(e Fault) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			lines := strings.Split(stack, "\n")
			if len(lines) > 6 {
				stack = strings.TrimSpace(lines[6])
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// CodeOf returns the code of the first Fault in err's chain, or None
func CodeOf(err error) ErrCode {
	var f Fault
	if errors.As(err, &f) {
		return f.Code()
	}
	return None
}

// Is reports whether err carries a Fault with the given code
func Is(err error, code ErrCode) bool {
	return err != nil && CodeOf(err) == code
}

type NewIndexOutOfRange struct {
	Op    string
	Index int
	// Bound is the exclusive upper bound the index was checked against
	Bound int
	stack []byte
}

func (e NewIndexOutOfRange) Code() ErrCode { return IndexOutOfRange }
func (e NewIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Bound)
}
func (e NewIndexOutOfRange) getStack() []byte { return e.stack }
func (e NewIndexOutOfRange) withStack(stack []byte) Fault {
	e.stack = stack
	return e
}

type NewKindMismatch struct {
	Op     string
	First  fmt.Stringer
	Second fmt.Stringer
	stack  []byte
}

func (e NewKindMismatch) Code() ErrCode { return KindMismatch }
func (e NewKindMismatch) Error() string {
	return fmt.Sprintf("%s: kind mismatch: '%v' cannot be combined with '%v'", e.Op, e.First, e.Second)
}
func (e NewKindMismatch) getStack() []byte { return e.stack }
func (e NewKindMismatch) withStack(stack []byte) Fault {
	e.stack = stack
	return e
}

type NewEmptyInput struct {
	Op    string
	stack []byte
}

func (e NewEmptyInput) Code() ErrCode { return EmptyInput }
func (e NewEmptyInput) Error() string {
	return fmt.Sprintf("%s: requires at least one element", e.Op)
}
func (e NewEmptyInput) getStack() []byte { return e.stack }
func (e NewEmptyInput) withStack(stack []byte) Fault {
	e.stack = stack
	return e
}

type NewLengthMismatch struct {
	Op      string
	Lengths []int
	stack   []byte
}

func (e NewLengthMismatch) Code() ErrCode { return LengthMismatch }
func (e NewLengthMismatch) Error() string {
	return fmt.Sprintf("%s: sequences have different lengths %v", e.Op, e.Lengths)
}
func (e NewLengthMismatch) getStack() []byte { return e.stack }
func (e NewLengthMismatch) withStack(stack []byte) Fault {
	e.stack = stack
	return e
}

type NewNotFound struct {
	Op    string
	Item  any
	stack []byte
}

func (e NewNotFound) Code() ErrCode { return NotFound }
func (e NewNotFound) Error() string {
	return fmt.Sprintf("%s: item '%v' not found", e.Op, e.Item)
}
func (e NewNotFound) getStack() []byte { return e.stack }
func (e NewNotFound) withStack(stack []byte) Fault {
	e.stack = stack
	return e
}

type NewInvalidProgression struct {
	Left, Right, Step any
	stack             []byte
}

func (e NewInvalidProgression) Code() ErrCode { return InvalidProgression }
func (e NewInvalidProgression) Error() string {
	return fmt.Sprintf("progression %v..%v must have a positive step, got %v", e.Left, e.Right, e.Step)
}
func (e NewInvalidProgression) getStack() []byte { return e.stack }
func (e NewInvalidProgression) withStack(stack []byte) Fault {
	e.stack = stack
	return e
}
