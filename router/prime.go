package router

import "github.com/arl/go-chandecomp/tile"

// splitToArea clips space tiles of the result plane to the edges of
// the routing area.
func (d *decomp) splitToArea() {
	pl, a := d.result, d.area

	// Split the top and bottom space tiles, if any. There is at most
	// one space tile spanning the top of the routing area, due to the
	// horizontal strip property plus the earlier clipping of solid
	// tiles to the routing area.
	t := pl.SrPoint(tile.Nil, tile.Point{X: a.XTop, Y: a.YTop})
	if pl.Top(t) > a.YTop && pl.Bottom(t) < a.YTop {
		pl.SplitY(t, a.YTop)
	}
	t = pl.SrPoint(t, tile.Point{X: a.XTop, Y: a.YBot - 1})
	if pl.Bottom(t) < a.YBot && pl.Top(t) > a.YBot {
		t = pl.SplitY(t, a.YBot)
	}

	// Search up the left edge of the routing area, splitting space
	// tiles that span it.
	p := tile.Point{X: a.XBot, Y: a.YBot}
	for p.Y < a.YTop {
		t = pl.SrPoint(t, p)
		if pl.Left(t) < p.X && pl.Right(t) > p.X {
			t = pl.SplitX(t, p.X)
		}
		p.Y = pl.Top(t)
	}

	// Same for the right edge.
	p = tile.Point{X: a.XTop, Y: a.YBot}
	for p.Y < a.YTop {
		t = pl.SrPoint(t, p)
		if pl.Left(t) < p.X && pl.Right(t) > p.X {
			t = pl.SplitX(t, p.X)
		}
		p.Y = pl.Top(t)
	}
}

// primeFlags resets the corner flags of every space tile in the
// routing area, then marks the horizontal edges lying on the area
// boundary: the boundary is a committed channel edge from the start.
func (d *decomp) primeFlags() {
	pl, a := d.result, d.area
	pl.SrArea(tile.Nil, a, func(t tile.Idx) bool {
		if pl.Body(t) != tile.Space {
			return true
		}
		pl.Clear(t, tile.AllCorners)
		if pl.Top(t) == a.YTop {
			pl.Mark(t, tile.NW|tile.NE)
		}
		if pl.Bottom(t) == a.YBot {
			pl.Mark(t, tile.SW|tile.SE)
		}
		return true
	})
}
