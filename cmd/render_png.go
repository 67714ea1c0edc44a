package cmd

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// renderLastRegionPNG renders the last region the demo client drew
// through its own CLUT-indexed bitmap — exactly the pixel data and
// palette a real host sink's gfxDraw would receive — blitting it onto
// a canvas just large enough to hold its destination rectangle with
// golang.org/x/image/draw, the way a real display sink composites a
// decoded region onto its backing surface.
func renderLastRegionPNG(c *logClient, path string) error {
	bitmap := c.lastBitmap
	w, h := int(bitmap.Width), int(bitmap.Height)
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}

	region := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := bitmap.Pixels[y*w+x]
			var argb uint32
			if int(idx) < len(bitmap.Clut) {
				argb = bitmap.Clut[idx]
			}
			region.Set(x, y, argbColor(argb))
		}
	}

	canvasW, canvasH := int(c.lastRect.X2), int(c.lastRect.Y2)
	if canvasW < w {
		canvasW = w
	}
	if canvasH < h {
		canvasH = h
	}
	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	dstRect := image.Rect(int(c.lastRect.X1), int(c.lastRect.Y1), int(c.lastRect.X2), int(c.lastRect.Y2))
	draw.Draw(canvas, dstRect, region, image.Point{}, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, canvas)
}

// argbColor unpacks a 32-bit ARGB word (A in the top byte, same layout
// ycbcrt.ToARGB produces) into an image/color.RGBA.
func argbColor(argb uint32) color.RGBA {
	return color.RGBA{
		A: byte(argb >> 24),
		R: byte(argb >> 16),
		G: byte(argb >> 8),
		B: byte(argb),
	}
}
