package router

import (
	"github.com/arl/assertgo"

	"github.com/arl/go-chandecomp/tile"
)

// extendCorners enumerates the solid tiles of the search plane and
// applies the corner extension algorithm to each eligible convex
// corner. The search plane is never modified; all point locations and
// cuts happen in the result plane.
func (d *decomp) extendCorners() {
	d.search.SrArea(tile.Nil, d.area, func(t tile.Idx) bool {
		if d.search.Body(t) == tile.Space {
			return true
		}

		// Check each corner of this solid tile, in SW, NW, NE, SE
		// order, for convexity with no committed boundary incident
		// upon it.
		var tiles [3]tile.Idx
		p := d.search.LL(t)
		if d.useCorner(p, tile.SW, &tiles) {
			d.markChannel(&tiles, p, tile.SW)
		}

		p.Y = d.search.Top(t)
		if d.useCorner(p, tile.NW, &tiles) {
			d.markChannel(&tiles, p, tile.NW)
		}

		p.X = d.search.Right(t)
		if d.useCorner(p, tile.NE, &tiles) {
			d.markChannel(&tiles, p, tile.NE)
		}

		p.Y = d.search.Bottom(t)
		if d.useCorner(p, tile.SE, &tiles) {
			d.markChannel(&tiles, p, tile.SE)
		}
		return true
	})
}

// useCorner decides whether the given corner of a solid tile is a
// usable convex corner. It locates the two space tiles adjacent to
// the corner in the result plane:
//
//	tiles[1] is the spanning tile directly above or below the corner;
//	tiles[2] is the side tile beside the obstruction, across the
//	         corner's x coordinate, whose horizontal edge ends at the
//	         corner.
//
// tiles[0] is not modified here. The corner is rejected when it lies
// on the routing area boundary, when either adjacent tile is solid,
// when a vertical boundary already passes through the corner, or when
// the inward-facing horizontal half-edge at the corner is already
// committed.
func (d *decomp) useCorner(p tile.Point, corner tile.Corner, tiles *[3]tile.Idx) bool {
	a := d.area
	if p.X <= a.XBot || p.X >= a.XTop || p.Y <= a.YBot || p.Y >= a.YTop {
		return false
	}

	p0, p1 := p, p
	switch corner {
	case tile.NE:
		p1.Y--
	case tile.NW:
		p1.X--
		p1.Y--
	case tile.SE:
		p0.Y--
	case tile.SW:
		p0.Y--
		p1.X--
	default:
		assert.True(false, "useCorner: corner botch at (%d,%d)", p.X, p.Y)
	}

	pl := d.result
	t := pl.SrPoint(tile.Nil, p0)
	tiles[1] = t
	if pl.Body(t) != tile.Space || pl.Left(t) == p.X || pl.Right(t) == p.X {
		// Vertical boundary at the corner.
		return false
	}

	t = pl.SrPoint(tile.Nil, p1)
	tiles[2] = t
	if pl.Body(t) != tile.Space {
		// Not a convex corner.
		return false
	}

	// Check the side tile for the half-edge flag facing the corner.
	// Both horizontal tiles matter, but only the side tile's half can
	// have been marked without a vertical boundary showing up above.
	switch corner {
	case tile.NE:
		return !pl.Marked(t, tile.NW)
	case tile.NW:
		return !pl.Marked(t, tile.NE)
	case tile.SE:
		return !pl.Marked(t, tile.SW)
	case tile.SW:
		return !pl.Marked(t, tile.SE)
	}
	return false
}
