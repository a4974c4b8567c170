package terrain

// BoxBlur smooths the grid with a separable box blur, once per iteration.
// Each iteration blurs rows (along x) and then columns (along y). Interior
// points average with both neighbors 1:1:1; edge points weigh themselves
// twice against their single neighbor (2:1).
func BoxBlur(g *Grid, iterations int) {
	size := g.Size()
	if size < 2 {
		return
	}

	line := make([]float32, size)
	for it := 0; it < iterations; it++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				line[x] = g.Elevation(x, y)
			}
			for x := 0; x < size; x++ {
				g.SetElevation(x, y, blurAt(line, x))
			}
		}

		for x := 0; x < size; x++ {
			for y := 0; y < size; y++ {
				line[y] = g.Elevation(x, y)
			}
			for y := 0; y < size; y++ {
				g.SetElevation(x, y, blurAt(line, y))
			}
		}
	}
}

// blurAt returns the blurred value of line[i].
func blurAt(line []float32, i int) float32 {
	last := len(line) - 1
	switch i {
	case 0:
		return (line[0] + line[0] + line[1]) / 3.0
	case last:
		return (line[last] + line[last] + line[last-1]) / 3.0
	default:
		return (line[i-1] + line[i] + line[i+1]) / 3.0
	}
}
