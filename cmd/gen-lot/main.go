package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
)

// Bay geometry in pixels
const (
	bayWidth  = 90
	bayDepth  = 160
	lineWidth = 4
	margin    = 60
)

func main() {
	out := flag.String("out", "assets/lot.png", "output PNG path")
	width := flag.Int("width", 800, "image width")
	height := flag.Int("height", 800, "image height")
	bays := flag.Int("bays", 5, "bays per row")
	flag.Parse()

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	black := image.NewUniform(color.Black)
	line := func(r image.Rectangle) {
		draw.Draw(img, r.Intersect(img.Bounds()), black, image.Point{}, draw.Src)
	}

	// Two facing rows of bays with an aisle between them
	rowSpan := *bays * bayWidth
	x0 := (*width - rowSpan) / 2
	rows := []struct{ top, bottom int }{
		{margin, margin + bayDepth},
		{*height - margin - bayDepth, *height - margin},
	}
	for _, row := range rows {
		for i := 0; i <= *bays; i++ {
			x := x0 + i*bayWidth
			line(image.Rect(x, row.top, x+lineWidth, row.bottom))
		}
	}
	// Back lines of both rows
	line(image.Rect(x0, rows[0].top, x0+rowSpan+lineWidth, rows[0].top+lineWidth))
	line(image.Rect(x0, rows[1].bottom-lineWidth, x0+rowSpan+lineWidth, rows[1].bottom))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
}
