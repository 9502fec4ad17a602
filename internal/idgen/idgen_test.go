package idgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hashPattern = regexp.MustCompile(`^0x[0-9a-f]{32}$`)

func TestRandom_TxID(t *testing.T) {
	g := NewRandom()

	id := g.TxID()
	assert.Regexp(t, `^tx-[0-9a-f\-]{36}$`, id)

	// Consecutive calls must not collide.
	assert.NotEqual(t, id, g.TxID())
}

func TestRandom_TxHash(t *testing.T) {
	g := NewRandom()

	hash := g.TxHash()
	assert.Regexp(t, hashPattern, hash)
	assert.NotEqual(t, hash, g.TxHash())
}

func TestSeeded_Deterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 5; i++ {
		require.Equal(t, a.TxID(), b.TxID())
		require.Equal(t, a.TxHash(), b.TxHash())
	}
}

func TestSeeded_TxIDSequence(t *testing.T) {
	g := NewSeeded(1)

	assert.Equal(t, "tx-1", g.TxID())
	assert.Equal(t, "tx-2", g.TxID())
	assert.Equal(t, "tx-3", g.TxID())
}

func TestSeeded_TxHashFormat(t *testing.T) {
	g := NewSeeded(1)

	first := g.TxHash()
	assert.Regexp(t, hashPattern, first)
	assert.NotEqual(t, first, g.TxHash())
}

func TestSeeded_DifferentSeedsDiverge(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)

	assert.NotEqual(t, a.TxHash(), b.TxHash())
}
