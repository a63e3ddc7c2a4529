package lot

// Scale multiplies every wall coordinate by sx horizontally and sy
// vertically, mapping walls traced on an image onto the canvas.
func Scale(walls []Wall, sx, sy float64) []Wall {
	out := make([]Wall, len(walls))
	for i, w := range walls {
		out[i] = Wall{X1: w.X1 * sx, Y1: w.Y1 * sy, X2: w.X2 * sx, Y2: w.Y2 * sy}
	}
	return out
}

// DropShort removes walls shorter than minLen and walls with non-finite
// coordinates.
func DropShort(walls []Wall, minLen float64) []Wall {
	out := make([]Wall, 0, len(walls))
	for _, w := range walls {
		if !w.Finite() || w.Len() < minLen {
			continue
		}
		out = append(out, w)
	}
	return out
}
