package skiplist

import "math/rand/v2"

// LevelPolicy chooses the level of a node about to be inserted.
//
// size is the number of real nodes currently in the list. The result is
// clamped to [0, maxLevel] by the caller.
type LevelPolicy interface {
	Level(maxLevel, size int) int
}

// DefaultPromoteProbability is used by GeometricPolicy when P is unset.
const DefaultPromoteProbability = 0.5

// GeometricPolicy promotes a node one level at a time with probability P.
// This gives the classical skip list distribution where 1/P^i of the nodes
// reach level i.
type GeometricPolicy struct {
	P    float64
	Rand *rand.Rand
}

func (g GeometricPolicy) Level(maxLevel, size int) int {
	p := g.P
	if p <= 0 || p >= 1 {
		p = DefaultPromoteProbability
	}
	level := 0
	for level < maxLevel && g.float64() < p {
		level++
	}
	return level
}

func (g GeometricPolicy) float64() float64 {
	if g.Rand != nil {
		return g.Rand.Float64()
	}
	return rand.Float64()
}

// ParityPolicy picks the level range from the parity of the list size. Even
// sizes draw uniformly from [0, maxLevel/2] and odd sizes from
// [maxLevel/2, maxLevel]. Consecutive inserts therefore alternate between
// short and tall nodes, which keeps the upper lanes dense regardless of the
// list size.
type ParityPolicy struct {
	Rand *rand.Rand
}

func (p ParityPolicy) Level(maxLevel, size int) int {
	half := maxLevel / 2
	if size%2 == 0 {
		return p.intN(half + 1)
	}
	return half + p.intN(maxLevel-half+1)
}

func (p ParityPolicy) intN(n int) int {
	if p.Rand != nil {
		return p.Rand.IntN(n)
	}
	return rand.IntN(n)
}
