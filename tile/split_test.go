package tile

import "testing"

func TestSplitXJoinX(t *testing.T) {
	p := NewPlane()
	area := NewRect(-50, -50, 50, 50)

	c := p.SrPoint(Nil, Point{0, 0})
	n := p.SplitX(c, 0)

	if got := p.Right(c); got != 0 {
		t.Errorf("after SplitX, Right(old) = %d, want 0", got)
	}
	if got := p.Left(n); got != 0 {
		t.Errorf("after SplitX, Left(new) = %d, want 0", got)
	}
	if p.TR(c) != n || p.BL(n) != c {
		t.Error("split halves are not stitched to each other")
	}
	if err := p.Verify(area); err != nil {
		t.Fatal(err)
	}

	count := p.Count()
	p.JoinX(c, n)
	if p.Count() != count-1 {
		t.Errorf("Count() = %d after JoinX, want %d", p.Count(), count-1)
	}
	if got := p.Bounds(c); got != (Rect{-Infinity, -Infinity, Infinity, Infinity}) {
		t.Errorf("joined tile bounds = %v", got)
	}
	if err := p.Verify(area); err != nil {
		t.Fatal(err)
	}
}

func TestSplitYJoinY(t *testing.T) {
	p := NewPlane()
	area := NewRect(-50, -50, 50, 50)

	c := p.SrPoint(Nil, Point{0, 0})
	n := p.SplitY(c, 10)

	if got := p.Top(c); got != 10 {
		t.Errorf("after SplitY, Top(old) = %d, want 10", got)
	}
	if got := p.Bottom(n); got != 10 {
		t.Errorf("after SplitY, Bottom(new) = %d, want 10", got)
	}
	if p.RT(c) != n || p.LB(n) != c {
		t.Error("split halves are not stitched to each other")
	}
	if err := p.Verify(area); err != nil {
		t.Fatal(err)
	}

	p.JoinY(n, c)
	if got := p.Bounds(n); got != (Rect{-Infinity, -Infinity, Infinity, Infinity}) {
		t.Errorf("joined tile bounds = %v", got)
	}
	if err := p.Verify(area); err != nil {
		t.Fatal(err)
	}
}

func TestSplitCopiesBodyAndFlags(t *testing.T) {
	p := NewPlane()
	c := p.SrPoint(Nil, Point{0, 0})
	p.Mark(c, NE|SW)

	n := p.SplitX(c, 0)
	if p.Flags(n) != NE|SW {
		t.Errorf("new tile flags = %b, want %b", p.Flags(n), NE|SW)
	}
	if p.Body(n) != Space {
		t.Errorf("new tile body = %v, want Space", p.Body(n))
	}

	m := p.SplitY(n, 20)
	if p.Flags(m) != NE|SW {
		t.Errorf("new tile flags = %b, want %b", p.Flags(m), NE|SW)
	}
}

// TestSplitStitchFixup builds a plane with several neighbors on each
// side of the split tile and checks that all their stitches are
// repointed correctly.
func TestSplitStitchFixup(t *testing.T) {
	p := NewPlane()
	area := NewRect(-200, -200, 200, 200)

	// Solid blocks above and below create several distinct neighbor
	// tiles along the edges of the space strip between them.
	p.Paint(NewRect(-40, 20, -20, 40), Solid)
	p.Paint(NewRect(10, 20, 30, 40), Solid)
	p.Paint(NewRect(-30, -40, -10, -20), Solid)
	p.Paint(NewRect(20, -40, 40, -20), Solid)
	if err := p.Verify(area); err != nil {
		t.Fatal(err)
	}

	// Split the middle strip, which has multiple top and bottom
	// neighbors, then the column left of the cut.
	strip := p.SrPoint(Nil, Point{0, 0})
	if got := p.Bounds(strip); got != NewRect(-Infinity, -20, Infinity, 20) {
		t.Fatalf("middle strip bounds = %v", got)
	}
	n := p.SplitX(strip, 0)
	if err := p.Verify(area); err != nil {
		t.Fatal(err)
	}
	if p.SrPoint(Nil, Point{0, 0}) != n {
		t.Error("point (0,0) should now be in the right half")
	}
	if p.SrPoint(Nil, Point{-1, 0}) != strip {
		t.Error("point (-1,0) should still be in the left half")
	}

	p.SplitY(n, 5)
	if err := p.Verify(area); err != nil {
		t.Fatal(err)
	}
}
