package skiptesting

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// Entry is a generated key/value pair. Keys and values are unique within a
// generator.
type Entry struct {
	Key   string
	Value uint32
}

type TestGenerator struct {
	T    *testing.T
	Rand *rand.Rand

	// MaxValue bounds generated values, exclusive. Zero means the full uint32
	// range.
	MaxValue uint32

	used  map[uint32]bool
	count int
}

func NewTestGenerator(t *testing.T, seed uint64) *TestGenerator {
	return &TestGenerator{
		T:    t,
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		used: map[uint32]bool{},
	}
}

// Entry returns a fresh entry whose value has not been generated before.
func (g *TestGenerator) Entry() Entry {
	if g.MaxValue != 0 && len(g.used) >= int(g.MaxValue) {
		g.T.Fatalf("generator exhausted: %d values below %d", len(g.used), g.MaxValue)
	}
	for {
		var v uint32
		if g.MaxValue != 0 {
			v = g.Rand.Uint32N(g.MaxValue)
		} else {
			v = g.Rand.Uint32()
		}
		if g.used[v] {
			continue
		}
		g.used[v] = true
		g.count++
		return Entry{Key: fmt.Sprintf("k%06d", g.count), Value: v}
	}
}

func (g *TestGenerator) Entries(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = g.Entry()
	}
	return entries
}

// Unused returns a value the generator has never produced.
func (g *TestGenerator) Unused() uint32 {
	if g.MaxValue != 0 && len(g.used) >= int(g.MaxValue) {
		g.T.Fatalf("generator exhausted: no unused value below %d", g.MaxValue)
	}
	for {
		v := g.Rand.Uint32()
		if g.MaxValue != 0 {
			v = g.Rand.Uint32N(g.MaxValue)
		}
		if !g.used[v] {
			return v
		}
	}
}

// Shuffle returns a copy of entries in random order.
func (g *TestGenerator) Shuffle(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	g.Rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
