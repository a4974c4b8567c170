package terrain

// LevelWater floods every cell below level and flattens the water plane.
//
// The first pass turns each cell with elevation below level into water at
// exactly level. The second pass visits every water cell and pulls its
// right, bottom-right and bottom neighbors down (or up) to level before
// resetting the cell itself, so rendered water quads have no holes.
// Neighbors keep their classification.
func LevelWater(g *Grid, level float32) {
	size := g.Size()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.Elevation(x, y) < level {
				g.SetClass(x, y, Water)
				g.SetElevation(x, y, level)
			}
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.Class(x, y) != Water {
				continue
			}
			if x+1 < size {
				g.SetElevation(x+1, y, level)
				if y+1 < size {
					g.SetElevation(x+1, y+1, level)
				}
			}
			if y+1 < size {
				g.SetElevation(x, y+1, level)
			}
			g.SetElevation(x, y, level)
		}
	}
}
