package router

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/arl/go-chandecomp/tile"
)

var (
	dumpBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dumpSolid      = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	dumpChannel    = color.RGBA{R: 0xe8, G: 0xf0, B: 0xff, A: 0xff}
	dumpEdge       = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	dumpCommitted  = color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	dumpLabel      = color.RGBA{R: 0x10, G: 0x30, B: 0x80, A: 0xff}
)

// Image renders the decomposition: obstructions filled, one rectangle
// with its id per channel, committed horizontal half-edges emphasized.
// scale is the number of pixels per routing unit.
func (d *Decomposition) Image(scale int) image.Image {
	if d.Empty() {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	if scale < 1 {
		scale = 1
	}

	a := d.Area
	w := int(a.Width()) * scale
	h := int(a.Height()) * scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(dumpBackground), image.Point{}, draw.Src)

	// The plane is y-up, the image y-down.
	toImg := func(r tile.Rect) image.Rectangle {
		return image.Rect(
			int(r.XBot-a.XBot)*scale, int(a.YTop-r.YTop)*scale,
			int(r.XTop-a.XBot)*scale, int(a.YTop-r.YBot)*scale,
		)
	}

	pl := d.Plane
	pl.SrArea(tile.Nil, a, func(t tile.Idx) bool {
		r := toImg(pl.Bounds(t).Clip(a))
		if pl.Body(t) != tile.Space {
			draw.Draw(img, r, image.NewUniform(dumpSolid), image.Point{}, draw.Src)
			return true
		}

		draw.Draw(img, r, image.NewUniform(dumpChannel), image.Point{}, draw.Src)
		frame(img, r, 1, dumpEdge)

		// Committed half-edges, two per horizontal edge.
		mid := (r.Min.X + r.Max.X) / 2
		if pl.Marked(t, tile.NW) {
			hline(img, r.Min.X, mid, r.Min.Y, 2, dumpCommitted)
		}
		if pl.Marked(t, tile.NE) {
			hline(img, mid, r.Max.X, r.Min.Y, 2, dumpCommitted)
		}
		if pl.Marked(t, tile.SW) {
			hline(img, r.Min.X, mid, r.Max.Y-2, 2, dumpCommitted)
		}
		if pl.Marked(t, tile.SE) {
			hline(img, mid, r.Max.X, r.Max.Y-2, 2, dumpCommitted)
		}
		return true
	})

	for _, ch := range d.channels {
		r := toImg(ch.Area)
		label := fmt.Sprintf("%d", ch.ID)
		drawer := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(dumpLabel),
			Face: basicfont.Face7x13,
			Dot: fixed.P(
				(r.Min.X+r.Max.X)/2-len(label)*basicfont.Face7x13.Advance/2,
				(r.Min.Y+r.Max.Y)/2+basicfont.Face7x13.Ascent/2,
			),
		}
		drawer.DrawString(label)
	}
	return img
}

func frame(img *image.RGBA, r image.Rectangle, w int, c color.Color) {
	hline(img, r.Min.X, r.Max.X, r.Min.Y, w, c)
	hline(img, r.Min.X, r.Max.X, r.Max.Y-w, w, c)
	vline(img, r.Min.X, r.Min.Y, r.Max.Y, w, c)
	vline(img, r.Max.X-w, r.Min.Y, r.Max.Y, w, c)
}

func hline(img *image.RGBA, x0, x1, y, w int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y, x1, y+w), image.NewUniform(c), image.Point{}, draw.Src)
}

func vline(img *image.RGBA, x, y0, y1, w int, c color.Color) {
	draw.Draw(img, image.Rect(x, y0, x+w, y1), image.NewUniform(c), image.Point{}, draw.Src)
}
