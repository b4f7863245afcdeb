package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cottand/seqalg/memo"
	"github.com/cottand/seqalg/seq"
)

// stage is one step of a pipe, written name[:arg[:arg]]
type stage struct {
	name string
	args []string
}

func (s stage) String() string {
	return strings.Join(append([]string{s.name}, s.args...), ":")
}

var stageArity = map[string]int{
	"sort":       0,
	"unique":     0,
	"first":      0,
	"last":       0,
	"len":        0,
	"diff":       0,
	"sum":        0,
	"take":       1,
	"drop":       1,
	"get":        1,
	"erase":      1,
	"extract":    1,
	"find":       1,
	"count":      1,
	"member":     1,
	"set":        2,
	"insert":     2,
	"replace":    2,
	"replaceall": 2,
}

func parseStages(src string) ([]stage, error) {
	var stages []stage
	for i, raw := range strings.Split(src, "|") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, errors.Errorf("stage %d is empty", i+1)
		}
		parts := strings.Split(raw, ":")
		st := stage{name: strings.ToLower(parts[0]), args: parts[1:]}
		arity, ok := stageArity[st.name]
		if !ok {
			return nil, errors.Errorf("unknown stage %q", st.name)
		}
		if len(st.args) != arity {
			return nil, errors.Errorf("stage %q takes %d argument(s), got %d", st.name, arity, len(st.args))
		}
		stages = append(stages, st)
	}
	return stages, nil
}

type integer interface {
	~int | ~int32
}

// pipeline runs stages over a ValueList. Every stage but the last must produce a
// sequence; the others end the pipe with a scalar.
type pipeline[T integer] struct {
	cache *memo.Cache
	parse func(string) (T, error)
	// chars rejects the arithmetic stages
	chars bool
}

func (p pipeline[T]) run(stages []stage, input seq.ValueList[T]) (any, error) {
	var result any = input
	for i, st := range stages {
		cur, ok := result.(seq.ValueList[T])
		if !ok {
			return nil, errors.Errorf("stage %d (%s) needs a sequence, but the previous stage produced %v", i+1, st, result)
		}
		logger.Debug("running stage", "stage", st.String(), "input", cur)
		next, err := memo.Do(p.cache, st.String(), func() (any, error) {
			return p.apply(st, cur)
		}, cur)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d (%s)", i+1, st)
		}
		result = next
	}
	return result, nil
}

func (p pipeline[T]) apply(st stage, s seq.ValueList[T]) (any, error) {
	switch st.name {
	case "sort":
		return seq.Sort(s), nil
	case "unique":
		return s.Unique(), nil
	case "first":
		return s.First()
	case "last":
		return s.Last()
	case "len":
		return s.Len(), nil
	case "diff", "sum":
		if p.chars {
			return nil, errors.Errorf("stage %q operates on numbers, not characters", st.name)
		}
		if st.name == "diff" {
			return seq.Difference(s, func(a, b T) T { return b - a }), nil
		}
		return seq.Fold(s, T(0), func(acc, v T) T { return acc + v }), nil
	}

	switch st.name {
	case "take", "drop", "get", "erase":
		n, err := strconv.Atoi(st.args[0])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid index for %s", st.name)
		}
		switch st.name {
		case "take":
			return s.Take(n), nil
		case "drop":
			return s.Drop(n), nil
		case "get":
			return s.Get(n)
		default:
			return s.Erase(n)
		}
	case "set", "insert":
		n, err := strconv.Atoi(st.args[0])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid index for %s", st.name)
		}
		v, err := p.parse(st.args[1])
		if err != nil {
			return nil, err
		}
		if st.name == "set" {
			return s.Set(n, v)
		}
		return s.Insert(n, v)
	case "extract":
		var idx []int
		for _, field := range strings.Split(st.args[0], ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, errors.Wrap(err, "invalid index for extract")
			}
			idx = append(idx, n)
		}
		return s.Extract(seq.Values(idx...))
	case "find", "count", "member":
		x, err := p.parse(st.args[0])
		if err != nil {
			return nil, err
		}
		switch st.name {
		case "find":
			return s.Find(x)
		case "count":
			return s.Count(x), nil
		default:
			return s.Member(x), nil
		}
	case "replace", "replaceall":
		x, err := p.parse(st.args[0])
		if err != nil {
			return nil, err
		}
		y, err := p.parse(st.args[1])
		if err != nil {
			return nil, err
		}
		if st.name == "replace" {
			return s.Replace(x, y), nil
		}
		return s.ReplaceAll(x, y), nil
	}
	return nil, errors.Errorf("unknown stage %q", st.name)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value %q", s)
	}
	return n, nil
}

func parseChar(s string) (rune, error) {
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, errors.Errorf("invalid character %q: expected exactly one", s)
	}
	return rs[0], nil
}
