// Package seed resolves the generation seed for a run: an explicit
// value wins, then a hashed seed phrase, then the clock.
package seed

import (
	"encoding/binary"
	"math"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// FromPhrase derives a stable positive seed from a human-readable
// phrase. Leading and trailing whitespace is ignored so a phrase
// written in a config file and one typed on a flag agree.
func FromPhrase(phrase string) int64 {
	sum := blake2b.Sum256([]byte(strings.TrimSpace(phrase)))
	v := binary.BigEndian.Uint64(sum[:8])
	s := int64(v & math.MaxInt64)
	if s == 0 {
		s = 1
	}
	return s
}

// Resolve picks the seed for a run. An explicit positive value takes
// precedence, then a non-empty phrase, then the current time.
func Resolve(value int64, phrase string) int64 {
	if value > 0 {
		return value
	}
	if strings.TrimSpace(phrase) != "" {
		return FromPhrase(phrase)
	}
	return time.Now().UnixNano()
}
