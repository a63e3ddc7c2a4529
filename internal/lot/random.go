package lot

import "math/rand/v2"

// RandomWalls scatters n axis-aligned walls over a width x height canvas,
// keeping padding clear on every edge. Horizontal walls start in the left
// half and end in the right half; vertical walls likewise span top to bottom.
func RandomWalls(rng *rand.Rand, width, height, padding float64, n int) []Wall {
	walls := make([]Wall, 0, n)
	for i := 0; i < n; i++ {
		if rng.Float64() > 0.5 {
			y := padding + rng.Float64()*(height-2*padding)
			x1 := padding + rng.Float64()*(width/2-padding)
			x2 := width/2 + rng.Float64()*(width/2-padding)
			walls = append(walls, Wall{X1: x1, Y1: y, X2: x2, Y2: y})
		} else {
			x := padding + rng.Float64()*(width-2*padding)
			y1 := padding + rng.Float64()*(height/2-padding)
			y2 := height/2 + rng.Float64()*(height/2-padding)
			walls = append(walls, Wall{X1: x, Y1: y1, X2: x, Y2: y2})
		}
	}
	return walls
}
