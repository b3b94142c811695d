package gameobject

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator returns a new unique identifier. Implementations must be safe for
// concurrent use.
type IDGenerator func() string

// DefaultIDGenerator returns a random (version 4) UUID read from crypto/rand.
func DefaultIDGenerator() string {
	return uuid.NewString()
}

// Sequence is a deterministic generator: prefix-1, prefix-2, ...
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) Next() string {
	return s.prefix + "-" + strconv.FormatUint(s.n.Add(1), 10)
}

// Generator adapts s to IDGenerator.
func (s *Sequence) Generator() IDGenerator {
	return s.Next
}
