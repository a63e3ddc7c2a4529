// Package vision turns a photo or sketch of a parking lot into wall
// segments using OpenCV edge and line detection.
package vision

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"parking-sim/internal/lot"
)

// Options tunes the edge and line detectors. Width and Height are the
// canvas size the traced walls are scaled to.
type Options struct {
	Width, Height float64

	BlurKernel int // Odd; 0 disables blurring
	CannyLow   float32
	CannyHigh  float32

	HoughThreshold int
	MinLineLength  float32 // Image pixels
	MaxLineGap     float32 // Image pixels

	MinWallLength float64 // Canvas pixels, applied after scaling
}

// DefaultOptions suits clean line drawings such as the ones cmd/gen-lot writes.
func DefaultOptions(width, height float64) Options {
	return Options{
		Width:          width,
		Height:         height,
		BlurKernel:     5,
		CannyLow:       50,
		CannyHigh:      150,
		HoughThreshold: 80,
		MinLineLength:  40,
		MaxLineGap:     10,
		MinWallLength:  20,
	}
}

// TraceWalls reads the image at path and returns the detected line
// segments as walls in canvas coordinates.
func TraceWalls(path string, opts Options) ([]lot.Wall, error) {
	img := gocv.IMRead(path, gocv.IMReadGrayScale)
	if img.Empty() {
		return nil, fmt.Errorf("error reading image %s", path)
	}
	defer img.Close()

	src := img
	if opts.BlurKernel > 0 {
		blurred := gocv.NewMat()
		defer blurred.Close()
		gocv.GaussianBlur(img, &blurred, image.Pt(opts.BlurKernel, opts.BlurKernel), 0, 0, gocv.BorderDefault)
		src = blurred
	}

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(src, &edges, opts.CannyLow, opts.CannyHigh)

	lines := gocv.NewMat()
	defer lines.Close()
	gocv.HoughLinesPWithParams(edges, &lines, 1, math.Pi/180, opts.HoughThreshold, opts.MinLineLength, opts.MaxLineGap)

	walls := make([]lot.Wall, 0, lines.Rows())
	for i := 0; i < lines.Rows(); i++ {
		v := lines.GetVeciAt(i, 0)
		walls = append(walls, lot.Wall{
			X1: float64(v[0]), Y1: float64(v[1]),
			X2: float64(v[2]), Y2: float64(v[3]),
		})
	}

	sx := opts.Width / float64(img.Cols())
	sy := opts.Height / float64(img.Rows())
	return lot.DropShort(lot.Scale(walls, sx, sy), opts.MinWallLength), nil
}
