package terrain

import (
	"github.com/aquilax/go-perlin"
)

// Perlin noise settings.
const (
	perlinAlpha     = 2.0 // Smoothness
	perlinBeta      = 2.0 // Frequency multiplier per octave
	perlinOctaves   = 3
	perlinFrequency = 4.0 // Noise periods across the grid
)

// fillPerlin sets every cell to SeedElevation displaced by up to twice the
// initial offset, sampled from 2D Perlin noise. The noise seed is drawn
// from params.Rand so the run stays reproducible from a single source.
func fillPerlin(g *Grid, params Params) {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, params.Rand.Int63())

	size := g.Size()
	scale := perlinFrequency / float64(size)
	amplitude := float64(params.InitialOffset) * 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := p.Noise2D(float64(x)*scale, float64(y)*scale)
			g.SetElevation(x, y, params.SeedElevation+float32(n*amplitude))
		}
	}
}
