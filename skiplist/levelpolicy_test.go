package skiplist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParityPolicyRanges(t *testing.T) {
	p := ParityPolicy{Rand: rand.New(rand.NewPCG(1698342521, 1))}

	for _, maxLevel := range []int{1, 4, 5, 16} {
		half := maxLevel / 2
		seenEven := map[int]bool{}
		seenOdd := map[int]bool{}
		for i := 0; i < 2000; i++ {
			even := p.Level(maxLevel, 2*i)
			require.GreaterOrEqual(t, even, 0)
			require.LessOrEqual(t, even, half)
			seenEven[even] = true

			odd := p.Level(maxLevel, 2*i+1)
			require.GreaterOrEqual(t, odd, half)
			require.LessOrEqual(t, odd, maxLevel)
			seenOdd[odd] = true
		}
		// uniform over the range, so every level shows up
		assert.Len(t, seenEven, half+1, "maxLevel=%d", maxLevel)
		assert.Len(t, seenOdd, maxLevel-half+1, "maxLevel=%d", maxLevel)
	}
}

func TestGeometricPolicyDistribution(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		want float64 // expected share of level 0
	}{
		{name: "default", p: 0, want: 0.5},
		{name: "quarter", p: 0.25, want: 0.75},
		{name: "out of range falls back", p: 1.5, want: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GeometricPolicy{P: tt.p, Rand: rand.New(rand.NewPCG(42, 42))}
			const draws = 20000
			counts := make([]int, 9)
			for i := 0; i < draws; i++ {
				level := g.Level(8, i)
				require.GreaterOrEqual(t, level, 0)
				require.LessOrEqual(t, level, 8)
				counts[level]++
			}
			assert.InDelta(t, tt.want, float64(counts[0])/draws, 0.03)
			assert.Greater(t, counts[0], counts[1])
			assert.Greater(t, counts[1], counts[2])
		})
	}
}

func TestGeometricPolicyWithoutRand(t *testing.T) {
	g := GeometricPolicy{}
	for i := 0; i < 100; i++ {
		level := g.Level(3, i)
		require.GreaterOrEqual(t, level, 0)
		require.LessOrEqual(t, level, 3)
	}
}
