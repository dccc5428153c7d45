package router

import (
	"image"
	"testing"

	"github.com/arl/go-chandecomp/tile"
)

func TestImage(t *testing.T) {
	obs := []Obstruction{{Bbox: tile.NewRect(40, 40, 60, 60)}}
	dec, err := Decompose(NewBuildContext(false), grid10(), obs, tile.NewRect(0, 0, 100, 100))
	check(t, err)

	const scale = 2
	img := dec.Image(scale)
	want := image.Rect(0, 0, int(dec.Area.Width())*scale, int(dec.Area.Height())*scale)
	if img.Bounds() != want {
		t.Fatalf("image bounds = %v, want %v", img.Bounds(), want)
	}

	// The obstruction center must be filled with the solid color, a
	// point inside a channel, away from its frame and label, with the
	// channel color.
	at := func(x, y int32) image.Point {
		return image.Pt(int(x-dec.Area.XBot)*scale, int(dec.Area.YTop-y)*scale)
	}
	if got := img.At(at(50, 50).X, at(50, 50).Y); got != dumpSolid {
		t.Errorf("pixel at obstruction center = %v, want %v", got, dumpSolid)
	}
	if got := img.At(at(5, 20).X, at(5, 20).Y); got != dumpChannel {
		t.Errorf("pixel inside a channel = %v, want %v", got, dumpChannel)
	}
}

func TestImageEmpty(t *testing.T) {
	dec, err := Decompose(NewBuildContext(false), grid10(), nil, tile.NewRect(10, 10, 0, 0))
	check(t, err)
	if img := dec.Image(1); img == nil {
		t.Fatal("empty decomposition should still render a placeholder image")
	}
}
