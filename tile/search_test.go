package tile

import (
	"reflect"
	"testing"
)

func collectArea(p *Plane, area Rect) []Rect {
	var rects []Rect
	p.SrArea(Nil, area, func(t Idx) bool {
		rects = append(rects, p.Bounds(t))
		return true
	})
	return rects
}

func TestSrAreaVisitsEachTileOnce(t *testing.T) {
	p := NewPlane()
	p.Paint(NewRect(10, 10, 20, 30), Solid)
	p.Paint(NewRect(40, 5, 55, 25), Solid)
	p.Paint(NewRect(25, -15, 35, 8), Solid)

	area := NewRect(-60, -60, 80, 60)
	seen := make(map[Idx]int)
	p.SrArea(Nil, area, func(ti Idx) bool {
		seen[ti]++
		return true
	})
	for ti, n := range seen {
		if n != 1 {
			t.Errorf("tile (%d,%d) visited %d times", p.Left(ti), p.Bottom(ti), n)
		}
	}
	if err := p.Verify(area); err != nil {
		t.Fatal(err)
	}

	// Every enumerated tile intersects the area, and together they
	// cover it.
	var covered int64
	for _, r := range collectArea(p, area) {
		c := r.Clip(area)
		if c.IsNull() {
			t.Errorf("tile %v does not intersect the search area", r)
			continue
		}
		covered += c.Area()
	}
	if covered != area.Area() {
		t.Errorf("enumerated tiles cover %d of %d units", covered, area.Area())
	}
}

func TestSrAreaDeterministicOrder(t *testing.T) {
	p := NewPlane()
	p.Paint(NewRect(0, 0, 10, 10), Solid)
	p.Paint(NewRect(20, -10, 30, 5), Solid)

	area := NewRect(-40, -40, 40, 40)
	first := collectArea(p, area)
	second := collectArea(p, area)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two enumerations differ:\n%v\n%v", first, second)
	}
	if len(first) < 2 {
		t.Fatalf("expected several tiles, got %d", len(first))
	}
}

func TestSrAreaAbort(t *testing.T) {
	p := NewPlane()
	p.Paint(NewRect(0, 0, 10, 10), Solid)

	calls := 0
	done := p.SrArea(Nil, NewRect(-40, -40, 40, 40), func(Idx) bool {
		calls++
		return false
	})
	if done {
		t.Error("SrArea should report an aborted enumeration")
	}
	if calls != 1 {
		t.Errorf("callback called %d times after abort, want 1", calls)
	}
}
