package terrain

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// ErrNilRand is returned when generation parameters carry no random source.
var ErrNilRand = errors.New("generation params have no random source")

// Default generation parameters.
const (
	DefaultSeedElevation float32 = 50.0
	DefaultInitialOffset float32 = 32.0
	DefaultWaterLevel    float32 = 40.0
)

// Params holds the inputs of one generation run.
type Params struct {
	SeedElevation float32 // Elevation of the four corners
	InitialOffset float32 // Random displacement magnitude at the top level
	WaterLevel    float32 // Cells below this become water
	Rand          *rand.Rand
}

// DefaultParams returns the default parameters using a source seeded with seed.
func DefaultParams(seed int64) Params {
	return Params{
		SeedElevation: DefaultSeedElevation,
		InitialOffset: DefaultInitialOffset,
		WaterLevel:    DefaultWaterLevel,
		Rand:          rand.New(rand.NewSource(seed)),
	}
}

// Algorithm selects how raw elevations are produced before smoothing.
type Algorithm uint8

// Algorithm constants.
const (
	DiamondSquare Algorithm = iota
	Perlin
)

// String returns the algorithm name as used in config files.
func (a Algorithm) String() string {
	switch a {
	case DiamondSquare:
		return "diamond-square"
	case Perlin:
		return "perlin"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// ParseAlgorithm parses an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "diamond-square", "diamondsquare", "":
		return DiamondSquare, nil
	case "perlin":
		return Perlin, nil
	default:
		return 0, fmt.Errorf("unknown terrain algorithm %q", s)
	}
}

// Generator produces terrain grids.
type Generator struct {
	Algorithm      Algorithm
	Rounds         int // Number of blur+level rounds
	BlurIterations int // Box blur iterations per round
	Logger         *zap.Logger
}

// DefaultGenerator returns the generator used by Generate: diamond-square
// followed by two rounds of one blur and one water leveling.
func DefaultGenerator() *Generator {
	return &Generator{
		Algorithm:      DiamondSquare,
		Rounds:         2,
		BlurIterations: 1,
	}
}

// Generate builds a terrain grid with the default generator.
func Generate(size int, params Params) (*Grid, error) {
	return DefaultGenerator().Generate(size, params)
}

// Subdivide runs only the displacement stage and returns the grid before
// any smoothing or water leveling.
func Subdivide(size int, params Params) (*Grid, error) {
	return DefaultGenerator().Raw(size, params)
}

// ValidSize reports whether size is 2^k+1 with k >= 1.
func ValidSize(size int) bool {
	n := size - 1
	return n >= 2 && n&(n-1) == 0
}

// Generate builds a terrain grid: raw elevations, then Rounds rounds of
// smoothing and water leveling.
func (gen *Generator) Generate(size int, params Params) (*Grid, error) {
	start := time.Now()

	grid, err := gen.Raw(size, params)
	if err != nil {
		return nil, err
	}

	for round := 0; round < gen.Rounds; round++ {
		BoxBlur(grid, gen.BlurIterations)
		LevelWater(grid, params.WaterLevel)
	}

	stats := grid.Stats()
	gen.logger().Debug("terrain generated",
		zap.Int("size", size),
		zap.Stringer("algorithm", gen.Algorithm),
		zap.Int("rounds", gen.Rounds),
		zap.Int("land", stats.Land),
		zap.Int("water", stats.Water),
		zap.Duration("elapsed", time.Since(start)),
	)

	return grid, nil
}

// Raw validates the inputs, allocates the grid, seeds the corners and fills
// every cell with the selected algorithm. All cells are Land afterwards.
func (gen *Generator) Raw(size int, params Params) (*Grid, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("%w: %d is not 2^k+1 with k >= 1", ErrInvalidSize, size)
	}
	if params.Rand == nil {
		return nil, ErrNilRand
	}

	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}

	switch gen.Algorithm {
	case DiamondSquare:
		seedCorners(grid, params.SeedElevation)
		d := displacer{grid: grid, rng: params.Rand}
		d.subdivide(0, 0, size-1, params.InitialOffset)
	case Perlin:
		fillPerlin(grid, params)
		seedCorners(grid, params.SeedElevation)
	default:
		return nil, fmt.Errorf("unknown terrain algorithm %d", gen.Algorithm)
	}

	return grid, nil
}

func (gen *Generator) logger() *zap.Logger {
	if gen.Logger == nil {
		return zap.NewNop()
	}
	return gen.Logger
}

func seedCorners(g *Grid, elevation float32) {
	last := g.Size() - 1
	g.SetElevation(0, 0, elevation)
	g.SetElevation(0, last, elevation)
	g.SetElevation(last, 0, elevation)
	g.SetElevation(last, last, elevation)
}

// displacer runs recursive midpoint displacement over a single grid.
type displacer struct {
	grid *Grid
	rng  *rand.Rand
}

// subdivide processes the square region anchored at (x, y) with side step.
// The square step writes the center before the diamond step writes the edge
// midpoints; shared edges are overwritten by later regions.
func (d *displacer) subdivide(x, y, step int, offset float32) {
	if step < 2 {
		return
	}
	half := step / 2

	avg := (d.grid.Elevation(x, y) +
		d.grid.Elevation(x+step, y) +
		d.grid.Elevation(x, y+step) +
		d.grid.Elevation(x+step, y+step)) / 4.0

	// Square step
	d.displace(x+half, y+half, avg, offset)

	// Diamond step: left, right, top, bottom
	d.displace(x, y+half, avg, offset)
	d.displace(x+step, y+half, avg, offset)
	d.displace(x+half, y, avg, offset)
	d.displace(x+half, y+step, avg, offset)

	next := offset / 2.0
	d.subdivide(x, y, half, next)
	d.subdivide(x, y+half, half, next)
	d.subdivide(x+half, y, half, next)
	d.subdivide(x+half, y+half, half, next)
}

// displace sets (x, y) to avg plus a uniform value in [-offset, +offset].
// Targets outside the grid are skipped; the draw still happens so the
// random sequence does not depend on the grid edge.
func (d *displacer) displace(x, y int, avg, offset float32) {
	v := avg + d.rng.Float32()*2*offset - offset
	if !d.grid.InBounds(x, y) {
		return
	}
	d.grid.SetElevation(x, y, v)
}
