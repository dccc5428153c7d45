package tile

import "testing"

func TestNewPlane(t *testing.T) {
	p := NewPlane()

	// A fresh plane holds one space tile plus the four borders.
	if p.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", p.Count())
	}

	area := NewRect(-100, -100, 100, 100)
	var tiles []Idx
	p.SrArea(Nil, area, func(ti Idx) bool {
		tiles = append(tiles, ti)
		return true
	})
	if len(tiles) != 1 {
		t.Fatalf("got %d tiles intersecting %v, want 1", len(tiles), area)
	}
	c := tiles[0]
	if p.Body(c) != Space {
		t.Errorf("center tile body = %v, want Space", p.Body(c))
	}
	if b := p.Bounds(c); b != (Rect{-Infinity, -Infinity, Infinity, Infinity}) {
		t.Errorf("center tile bounds = %v", b)
	}
	if err := p.Verify(area); err != nil {
		t.Fatal(err)
	}
}

func TestSrPoint(t *testing.T) {
	p := NewPlane()
	p.Paint(NewRect(0, 0, 10, 10), Solid)
	p.Paint(NewRect(30, -20, 40, 5), Solid)

	pts := []struct {
		pt   Point
		body Body
	}{
		{Point{0, 0}, Solid},
		{Point{9, 9}, Solid},
		{Point{10, 10}, Space},
		{Point{-1, 0}, Space},
		{Point{35, 0}, Solid},
		{Point{35, 5}, Space},
		{Point{20, 2}, Space},
		{Point{-5000, 4800}, Space},
	}
	for _, tc := range pts {
		ti := p.SrPoint(Nil, tc.pt)
		if !p.Bounds(ti).Contains(tc.pt) {
			t.Errorf("SrPoint(%v): tile %v does not contain the point", tc.pt, p.Bounds(ti))
		}
		if p.Body(ti) != tc.body {
			t.Errorf("SrPoint(%v): body = %v, want %v", tc.pt, p.Body(ti), tc.body)
		}
	}

	// Hinted search must land on the same tile.
	hint := p.SrPoint(Nil, Point{-1000, -1000})
	ti := p.SrPoint(hint, Point{5, 5})
	if p.Body(ti) != Solid {
		t.Errorf("hinted SrPoint: body = %v, want Solid", p.Body(ti))
	}
}

func TestMarkedOnSolid(t *testing.T) {
	p := NewPlane()
	p.Paint(NewRect(0, 0, 10, 10), Solid)

	ti := p.SrPoint(Nil, Point{5, 5})
	// Solid tiles read as flagged on every corner.
	if !p.Marked(ti, NW) || !p.Marked(ti, SE) {
		t.Error("solid tile should read as marked on every corner")
	}

	ti = p.SrPoint(Nil, Point{-5, -5})
	if p.Marked(ti, AllCorners) {
		t.Error("fresh space tile should not be marked")
	}
	p.Mark(ti, NW|SE)
	if !p.Marked(ti, NW) || !p.Marked(ti, SE) || p.Marked(ti, NE|SW) {
		t.Errorf("flags = %b after Mark(NW|SE)", p.Flags(ti))
	}
	p.Clear(ti, NW)
	if p.Marked(ti, NW) || !p.Marked(ti, SE) {
		t.Errorf("flags = %b after Clear(NW)", p.Flags(ti))
	}
}
