package seq

import "github.com/cottand/seqalg/seqerr"

func outOfRange(op string, n, bound int) error {
	err := seqerr.New(seqerr.NewIndexOutOfRange{Op: op, Index: n, Bound: bound})
	logger.Debug("fault", "op", op, "code", err.Code(), "index", n, "bound", bound)
	return err
}

func emptyInput(op string) error {
	err := seqerr.New(seqerr.NewEmptyInput{Op: op})
	logger.Debug("fault", "op", op, "code", err.Code())
	return err
}

func lengthMismatch(op string, lengths []int) error {
	err := seqerr.New(seqerr.NewLengthMismatch{Op: op, Lengths: lengths})
	logger.Debug("fault", "op", op, "code", err.Code(), "lengths", lengths)
	return err
}

func notFound(op string, item any) error {
	err := seqerr.New(seqerr.NewNotFound{Op: op, Item: item})
	logger.Debug("fault", "op", op, "code", err.Code())
	return err
}
