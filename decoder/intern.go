package decoder

import (
	"github.com/cespare/xxhash/v2"
)

// logtypeCache interns logtype template strings for one decoder.
//
// Real streams repeat a small set of templates, so each distinct template
// is materialized as a string once and shared by every message that uses
// it. Keys are xxHash64 of the template bytes; a hash collision falls back
// to a fresh allocation rather than returning the wrong template.
type logtypeCache struct {
	byHash map[uint64]string
}

func newLogtypeCache() *logtypeCache {
	return &logtypeCache{
		byHash: make(map[uint64]string),
	}
}

// intern returns the template string for logtype, reusing a previously
// materialized string when the bytes match.
func (c *logtypeCache) intern(logtype []byte) string {
	h := xxhash.Sum64(logtype)
	if s, ok := c.byHash[h]; ok {
		if s == string(logtype) {
			return s
		}
		// Hash collision: do not cache, just materialize.
		return string(logtype)
	}

	s := string(logtype)
	c.byHash[h] = s

	return s
}

// Len returns the number of distinct templates seen so far.
func (c *logtypeCache) Len() int {
	return len(c.byHash)
}
