// Package memo caches the results of sequence operations, keyed by the operation and
// a fingerprint of its inputs.
//
// Sequence operations are pure, so a cached result is always valid; the cache only
// saves recomputation. Faults are never cached.
package memo

import (
	"fmt"
	"hash"
	"io"
	"reflect"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2"
	"lukechampine.com/blake3"

	"github.com/cottand/seqalg/internal/log"
	"github.com/cottand/seqalg/seq"
)

var logger = log.DefaultLogger.With("section", "memo")

type Fingerprint [32]byte

func (fp Fingerprint) String() string {
	return fmt.Sprintf("%x", fp[:8])
}

// FingerprintOf hashes op together with the kind and every element of each input.
// Inputs that are Equal but render differently, such as -0.0 and 0.0, may get
// different fingerprints.
func FingerprintOf(op string, inputs ...seq.Sequence) (ret Fingerprint) {
	h := blake3.New(len(ret), nil)
	io.WriteString(h, op)
	for _, in := range inputs {
		h.Write([]byte{0})
		writeSeq(h, in)
	}
	copy(ret[:], h.Sum(nil))
	return ret
}

func writeSeq(h hash.Hash, s seq.Sequence) {
	fmt.Fprintf(h, "%v#%d(", s.Kind(), s.Len())
	for elem := range s.Elements() {
		writeElem(h, elem)
		h.Write([]byte{0})
	}
	io.WriteString(h, ")")
}

func writeElem(h hash.Hash, x any) {
	switch v := x.(type) {
	case seq.Sequence:
		writeSeq(h, v)
	case reflect.Type:
		fmt.Fprintf(h, "type:%s:%s", v.PkgPath(), v)
	default:
		fmt.Fprintf(h, "%T:%#v", v, v)
	}
}

// Cache is safe for concurrent use. A nil *Cache computes every result.
type Cache struct {
	lru    *lru.Cache[Fingerprint, any]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func New(size int) (*Cache, error) {
	c, err := lru.New[Fingerprint, any](size)
	if err != nil {
		return nil, fmt.Errorf("could not create memo cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

// Do returns the cached result of op over inputs, or calls compute and caches what it
// returns. op must identify every non-sequence argument of the operation, e.g. "take:3".
func Do[R any](c *Cache, op string, compute func() (R, error), inputs ...seq.Sequence) (R, error) {
	if c == nil {
		return compute()
	}
	fp := FingerprintOf(op, inputs...)
	if cached, ok := c.lru.Get(fp); ok {
		if r, ok := cached.(R); ok {
			c.hits.Add(1)
			logger.Debug("cache hit", "op", op, "fingerprint", fp)
			return r, nil
		}
	}
	c.misses.Add(1)
	logger.Debug("cache miss", "op", op, "fingerprint", fp)
	r, err := compute()
	if err != nil {
		return r, err
	}
	c.lru.Add(fp, r)
	return r, nil
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Stats returns the number of hits and misses since the cache was created
func (c *Cache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

func (c *Cache) Purge() {
	if c != nil {
		c.lru.Purge()
	}
}
