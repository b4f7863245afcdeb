package seqerr

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      Fault
		expected string
	}{
		{
			name:     "index out of range",
			err:      New(NewIndexOutOfRange{Op: "get", Index: 4, Bound: 3}),
			expected: "(E001) get: index 4 out of range [0, 3)",
		},
		{
			name:     "empty input",
			err:      New(NewEmptyInput{Op: "first"}),
			expected: "(E003) first: requires at least one element",
		},
		{
			name:     "length mismatch",
			err:      New(NewLengthMismatch{Op: "thread", Lengths: []int{2, 3}}),
			expected: "(E004) thread: sequences have different lengths [2 3]",
		},
		{
			name:     "not found",
			err:      New(NewNotFound{Op: "find", Item: 'x'}),
			expected: "(E005) find: item '120' not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatWithCode(tc.err))
		})
	}
}

func TestNewRecordsStack(t *testing.T) {
	err := New(NewEmptyInput{Op: "last"})
	assert.NotEmpty(t, err.getStack())

	SetDebugPrinting(true)
	defer SetDebugPrinting(false)
	assert.Contains(t, FormatWithCode(err), "(E003) last")
}

func TestCodeOfWrapped(t *testing.T) {
	base := New(NewKindMismatch{Op: "concat", First: stringer("List"), Second: stringer("ValueList[int]")})

	wrapped := errors.Wrap(base, "stage 2")
	assert.Equal(t, KindMismatch, CodeOf(wrapped))
	assert.True(t, Is(fmt.Errorf("outer: %w", wrapped), KindMismatch))
	assert.False(t, Is(wrapped, EmptyInput))

	assert.Equal(t, None, CodeOf(errors.New("plain")))
	assert.False(t, Is(nil, None))
}

type stringer string

func (s stringer) String() string { return string(s) }
