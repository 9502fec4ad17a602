package idgen

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

// Generator produces transaction identifiers and provenance hashes. The
// transfer operation takes one as a dependency so tests can regenerate the
// exact values a transfer produced.
type Generator interface {
	// TxID returns a unique transaction record identifier.
	TxID() string

	// TxHash returns a unique opaque hash string in 0x-prefixed hex form.
	// The hash is a provenance marker, not a cryptographic digest.
	TxHash() string
}

// Random is the production Generator backed by random UUIDs.
type Random struct{}

// NewRandom creates a uuid-backed Generator.
func NewRandom() *Random {
	return &Random{}
}

// TxID returns "tx-" followed by a random UUID.
func (g *Random) TxID() string {
	return "tx-" + uuid.New().String()
}

// TxHash returns a 0x-prefixed 32-character hex string from random UUID bytes.
func (g *Random) TxHash() string {
	id := uuid.New()
	return "0x" + hex.EncodeToString(id[:])
}

// Seeded is a deterministic Generator for tests. Two Seeded generators built
// from the same seed produce the same sequence of IDs and hashes.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
	seq int
}

// NewSeeded creates a deterministic Generator from the given seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// TxID returns "tx-<n>" with a monotonically increasing sequence number.
func (g *Seeded) TxID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("tx-%d", g.seq)
}

// TxHash returns a 0x-prefixed 32-character hex string drawn from the seeded
// random source.
func (g *Seeded) TxHash() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	buf := make([]byte, 16)
	g.rng.Read(buf)
	return "0x" + hex.EncodeToString(buf)
}
