package router

import (
	"github.com/arl/assertgo"

	"github.com/arl/go-chandecomp/tile"
)

// markChannel extends the shortest cut from an eligible corner:
// horizontally as far as the nearer outer edge of the two adjacent
// space tiles, or vertically as far as the walk along the corner's
// column reaches. A horizontal cut only records half-edge flags; a
// vertical cut splits the column of space tiles and re-merges them
// with their neighbors where the geometry permits.
func (d *decomp) markChannel(tiles *[3]tile.Idx, p tile.Point, corner tile.Corner) {
	pl := d.result
	pos := corner == tile.NE || corner == tile.SE
	up := corner == tile.NE || corner == tile.NW

	xDist := d.xDist(tiles, p.X, pos)
	yDist := d.yDist(tiles, p, up)

	if xDist < yDist {
		d.markHorizontal(tiles, corner, pos)
		return
	}

	// Split a sequence of space tiles starting with tiles[0], the
	// bottom tile of the walk, up to the end of the cut.
	t := tiles[0]
	lastY := p.Y
	if up {
		lastY += yDist
	}

	var n tile.Idx
	for {
		assert.True(pl.Body(t) == tile.Space,
			"markChannel: splitting a solid tile at (%d,%d)", p.X, pl.Bottom(t))
		n = pl.SplitX(t, p.X)

		// SplitX copied the flags: the new tile keeps NE and SE, the
		// right halves of the horizontal edges, which now belong to
		// it; they are cleared on the left tile. NW and SW are
		// cleared on the new tile: the walk could not have crossed
		// those halves had they been committed, and the cut itself
		// needs no flags, the split realizes the boundary.
		pl.Clear(n, tile.NW|tile.SW)
		pl.Clear(t, tile.NE|tile.SE)

		d.merge(n, pl.LB(n))
		d.merge(t, pl.LB(t))

		if pl.Top(t) >= lastY {
			break
		}
		t = pl.SrPoint(t, tile.Point{X: p.X, Y: pl.Top(t)})
	}

	// Merge the last two pieces with their upper neighbors.
	d.merge(pl.RT(n), n)
	d.merge(pl.RT(t), t)
}

// markHorizontal records a horizontal cut as half-edge flags. The flag
// on the side tile pointing into the obstruction is always set; the
// side tile's outer flag is set when the cut reaches its far edge, and
// the spanning tile's inner flag when the cut reaches the spanning
// tile's far edge. Equal extents set both.
func (d *decomp) markHorizontal(tiles *[3]tile.Idx, corner tile.Corner, pos bool) {
	pl := d.result
	if pos {
		d1, d2 := pl.Right(tiles[1]), pl.Right(tiles[2])
		if corner == tile.NE {
			pl.Mark(tiles[2], tile.NW)
			if d1 >= d2 {
				pl.Mark(tiles[2], tile.NE)
			}
			if d1 <= d2 {
				pl.Mark(tiles[1], tile.SE)
			}
		} else {
			pl.Mark(tiles[2], tile.SW)
			if d1 >= d2 {
				pl.Mark(tiles[2], tile.SE)
			}
			if d1 <= d2 {
				pl.Mark(tiles[1], tile.NE)
			}
		}
	} else {
		d1, d2 := pl.Left(tiles[1]), pl.Left(tiles[2])
		if corner == tile.NW {
			pl.Mark(tiles[2], tile.NE)
			if d1 <= d2 {
				pl.Mark(tiles[2], tile.NW)
			}
			if d1 >= d2 {
				pl.Mark(tiles[1], tile.SW)
			}
		} else {
			pl.Mark(tiles[2], tile.SE)
			if d1 <= d2 {
				pl.Mark(tiles[2], tile.SW)
			}
			if d1 >= d2 {
				pl.Mark(tiles[1], tile.NW)
			}
		}
	}
}

// xDist returns the distance from x to the nearer outer vertical edge
// of the two space tiles bordering the corner.
func (d *decomp) xDist(tiles *[3]tile.Idx, x int32, pos bool) int32 {
	pl := d.result
	var l0, l1 int32
	if pos {
		l0, l1 = pl.Right(tiles[1])-x, pl.Right(tiles[2])-x
	} else {
		l0, l1 = x-pl.Left(tiles[1]), x-pl.Left(tiles[2])
	}
	if l0 < l1 {
		return l0
	}
	return l1
}

// yDist walks space tiles up or down from tiles[1] along the column
// x = pt.X and returns the clear distance from pt to the first solid
// tile, vertical boundary, committed horizontal half-edge, or the
// routing area boundary. Going down, a stop at a vertical boundary
// counts one unit past the bottom of the last tile walked. The bottom
// tile of the walk is left in tiles[0] for the split loop.
func (d *decomp) yDist(tiles *[3]tile.Idx, pt tile.Point, up bool) int32 {
	pl, a := d.result, d.area
	cur := tiles[1]
	x, yStart := pt.X, pt.Y

	p := pt
	for {
		if up {
			p.Y = pl.Top(cur)
			if p.Y >= a.YTop {
				break
			}
		} else {
			p.Y = pl.Bottom(cur)
			if p.Y <= a.YBot {
				break
			}
			p.Y--
		}

		// A solid tile defines the boundary of a channel; terminate
		// the search. Going down, reset the y coordinate to the
		// bottom of the last good channel.
		next := pl.SrPoint(cur, p)
		if pl.Body(next) != tile.Space {
			if !up {
				p.Y++
			}
			break
		}

		// Done if a vertical boundary crosses the column.
		if pl.Left(next) == x || pl.Right(next) == x {
			break
		}

		// The flag guarding the half-edge about to be crossed
		// depends on the relative widths of the current and next
		// tiles:
		//
		// __|_n_|__   |___c___|   __|_n__|   |__ c|__   |__n|__   __|_c__|
		// |   c   |     | n |     |   c|       | n  |     |c  |   |   n|
		//    (A)         (B)         (C)        (D)        (E)       (F)
		var flagged bool
		if pl.Left(cur) < pl.Left(next) {
			if pl.Right(cur) > pl.Right(next) {
				if up {
					flagged = pl.Marked(next, tile.SW) // (A)
				} else {
					flagged = pl.Marked(next, tile.NW) // (B)
				}
			} else {
				if up {
					flagged = pl.Marked(cur, tile.NE) // (C)
				} else {
					flagged = pl.Marked(cur, tile.SE) // (D)
				}
			}
		} else {
			if up {
				flagged = pl.Marked(cur, tile.NW) // (E)
			} else {
				flagged = pl.Marked(cur, tile.SW) // (F)
			}
		}
		if flagged {
			if !up {
				p.Y = pl.Bottom(cur)
			}
			break
		}
		cur = next
	}

	if up {
		tiles[0] = tiles[1]
		return p.Y - yStart
	}
	tiles[0] = cur
	return yStart - p.Y
}

// merge joins two space tiles sharing a full horizontal edge, the
// upper one first. The upper tile survives as the composite and takes
// over the lower tile's bottom-edge flags. After the join, the
// composite is also joined sideways with a neighbor of identical
// height lying inside the routing area: the cut that triggered the
// merge may have removed the only reason two adjacent strips were
// separate.
func (d *decomp) merge(tup, tdn tile.Idx) {
	pl, a := d.result, d.area

	// Skip if either is solid.
	if pl.Body(tup) != tile.Space || pl.Body(tdn) != tile.Space {
		return
	}
	if pl.Left(tdn) != pl.Left(tup) || pl.Right(tdn) != pl.Right(tup) {
		return
	}

	assert.True(pl.Bottom(tdn) >= a.YBot && pl.Top(tup) <= a.YTop,
		"merge: merging with a tile outside the routing area at (%d,%d)", pl.Left(tdn), pl.Bottom(tdn))

	if pl.Marked(tdn, tile.SW) {
		pl.Mark(tup, tile.SW)
	} else {
		pl.Clear(tup, tile.SW)
	}
	if pl.Marked(tdn, tile.SE) {
		pl.Mark(tup, tile.SE)
	} else {
		pl.Clear(tup, tile.SE)
	}
	pl.JoinY(tup, tdn)

	side := pl.BL(tup)
	if pl.Body(side) == tile.Space && pl.Left(side) >= a.XBot &&
		pl.Top(side) == pl.Top(tup) && pl.Bottom(side) == pl.Bottom(tup) {
		pl.JoinX(tup, side)
	}
	side = pl.TR(tup)
	if pl.Body(side) == tile.Space && pl.Right(side) <= a.XTop &&
		pl.Top(side) == pl.Top(tup) && pl.Bottom(side) == pl.Bottom(tup) {
		pl.JoinX(tup, side)
	}
}
