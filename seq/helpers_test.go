package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertSeq[E any](t *testing.T, expected []E, actual Seq[E]) {
	t.Helper()
	assert.Equal(t, expected, actual.Slice())
	assert.Equal(t, len(expected), actual.Len())
}

func assertSameSeq(t *testing.T, expected, actual Sequence) {
	t.Helper()
	assert.True(t, Equal(expected, actual), "expected %v (%v), got %v (%v)", expected, expected.Kind(), actual, actual.Kind())
}
