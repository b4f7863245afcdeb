package seq

import (
	"iter"

	"github.com/cottand/seqalg/seqerr"
)

// Progression describes the arithmetic run Left, Left+Step, ... up to and including
// Right. It is empty when Left > Right.
type Progression[T Number] struct {
	Left, Right, Step T
}

func NewProgression[T Number](left, right, step T) Progression[T] {
	return Progression[T]{Left: left, Right: right, Step: step}
}

func (p Progression[T]) validate() error {
	if !(p.Step > 0) {
		err := seqerr.New(seqerr.NewInvalidProgression{Left: p.Left, Right: p.Right, Step: p.Step})
		logger.Debug("fault", "op", "progression", "code", err.Code())
		return err
	}
	return nil
}

// values assumes a positive step. The run stops rather than wrapping around when
// the next value would overflow T.
func (p Progression[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := p.Left; v <= p.Right; {
			if !yield(v) {
				return
			}
			next := v + p.Step
			if next <= v {
				return
			}
			v = next
		}
	}
}

func (p Progression[T]) Realize() (ValueList[T], error) {
	if err := p.validate(); err != nil {
		return ValueList[T]{}, err
	}
	return fromIter(p.values()), nil
}

// Range realizes the progression left..right by step
func Range[T Number](left, right, step T) (ValueList[T], error) {
	return NewProgression(left, right, step).Realize()
}
