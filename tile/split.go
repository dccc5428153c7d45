package tile

import "github.com/arl/assertgo"

// SplitX splits t vertically at x. t keeps the left portion, the new
// tile gets [x, right). Body and corner flags are copied to the new
// tile. Returns the new tile.
func (p *Plane) SplitX(t Idx, x int32) Idx {
	assert.True(x > p.Left(t) && x < p.Right(t),
		"SplitX: x=%d outside tile (%d,%d)-(%d,%d)", x, p.Left(t), p.Bottom(t), p.Right(t), p.Top(t))

	n := p.alloc()
	tt := &p.tiles[t]
	p.tiles[n] = tile{
		ll:    Point{x, tt.ll.Y},
		rt:    tt.rt,
		tr:    tt.tr,
		bl:    t,
		body:  tt.body,
		flags: tt.flags,
	}

	// Bottom neighbor at the new tile's lower-left corner.
	c := tt.lb
	for p.Right(c) <= x {
		c = p.tiles[c].tr
	}
	p.tiles[n].lb = c

	// t's top-right stitches now stop at x.
	c = tt.rt
	for p.Left(c) >= x {
		c = p.tiles[c].bl
	}
	tt.rt = c
	tt.tr = n

	// Neighbors that used to stitch to t and now face the new tile.
	for c = p.tiles[n].rt; p.Left(c) >= x; c = p.tiles[c].bl {
		if p.tiles[c].lb == t {
			p.tiles[c].lb = n
		}
	}
	for c = p.tiles[n].tr; p.Bottom(c) >= p.Bottom(n); c = p.tiles[c].lb {
		if p.tiles[c].bl == t {
			p.tiles[c].bl = n
		}
	}
	for c = p.tiles[n].lb; p.Left(c) < p.Right(n); c = p.tiles[c].tr {
		if p.tiles[c].rt == t {
			p.tiles[c].rt = n
		}
	}

	p.hint = n
	return n
}

// SplitY splits t horizontally at y. t keeps the bottom portion, the
// new tile gets [y, top). Body and corner flags are copied to the new
// tile. Returns the new tile.
func (p *Plane) SplitY(t Idx, y int32) Idx {
	assert.True(y > p.Bottom(t) && y < p.Top(t),
		"SplitY: y=%d outside tile (%d,%d)-(%d,%d)", y, p.Left(t), p.Bottom(t), p.Right(t), p.Top(t))

	n := p.alloc()
	tt := &p.tiles[t]
	p.tiles[n] = tile{
		ll:    Point{tt.ll.X, y},
		rt:    tt.rt,
		tr:    tt.tr,
		lb:    t,
		body:  tt.body,
		flags: tt.flags,
	}

	// Left neighbor at the new tile's lower-left corner.
	c := tt.bl
	for p.Top(c) <= y {
		c = p.tiles[c].rt
	}
	p.tiles[n].bl = c

	// t's top-right stitches now stop at y.
	c = tt.tr
	for p.Bottom(c) >= y {
		c = p.tiles[c].lb
	}
	tt.tr = c
	tt.rt = n

	// Neighbors that used to stitch to t and now face the new tile.
	for c = p.tiles[n].rt; p.Left(c) >= p.Left(n); c = p.tiles[c].bl {
		if p.tiles[c].lb == t {
			p.tiles[c].lb = n
		}
	}
	for c = p.tiles[n].tr; p.Bottom(c) >= y; c = p.tiles[c].lb {
		if p.tiles[c].bl == t {
			p.tiles[c].bl = n
		}
	}
	for c = p.tiles[n].bl; p.Top(c) <= p.Top(n); c = p.tiles[c].rt {
		if p.tiles[c].tr == t {
			p.tiles[c].tr = n
		}
	}

	p.hint = n
	return n
}

// JoinY joins tdn into tup. tdn must lie directly below tup and both
// must span the same x range and carry the same body. tup survives as
// the composite, keeping its own corner flags; tdn is released.
func (p *Plane) JoinY(tup, tdn Idx) {
	assert.True(p.Bottom(tup) == p.Top(tdn) && p.Left(tup) == p.Left(tdn) && p.Right(tup) == p.Right(tdn),
		"JoinY: tiles (%d,%d) and (%d,%d) do not share a full edge",
		p.Left(tup), p.Bottom(tup), p.Left(tdn), p.Bottom(tdn))
	assert.True(p.Body(tup) == p.Body(tdn), "JoinY: joining tiles of different bodies at (%d,%d)", p.Left(tdn), p.Bottom(tdn))

	p.redirect(tdn, tup)
	p.tiles[tup].ll = p.tiles[tdn].ll
	p.tiles[tup].lb = p.tiles[tdn].lb
	p.tiles[tup].bl = p.tiles[tdn].bl
	p.release(tdn)
	p.hint = tup
}

// JoinX joins other into t. other must be the full-edge horizontal
// neighbor of t, on either side, with the same y range and body. t
// survives as the composite, keeping its own corner flags; other is
// released.
func (p *Plane) JoinX(t, other Idx) {
	assert.True(p.Bottom(t) == p.Bottom(other) && p.Top(t) == p.Top(other),
		"JoinX: tiles (%d,%d) and (%d,%d) do not share a full edge",
		p.Left(t), p.Bottom(t), p.Left(other), p.Bottom(other))
	assert.True(p.Left(other) == p.Right(t) || p.Right(other) == p.Left(t),
		"JoinX: tiles at x=%d and x=%d are not adjacent", p.Left(t), p.Left(other))
	assert.True(p.Body(t) == p.Body(other), "JoinX: joining tiles of different bodies at (%d,%d)", p.Left(other), p.Bottom(other))

	p.redirect(other, t)
	if p.Left(other) == p.Right(t) {
		// other is on the right.
		p.tiles[t].tr = p.tiles[other].tr
		p.tiles[t].rt = p.tiles[other].rt
	} else {
		// other is on the left.
		p.tiles[t].ll = p.tiles[other].ll
		p.tiles[t].bl = p.tiles[other].bl
		p.tiles[t].lb = p.tiles[other].lb
	}
	p.release(other)
	p.hint = t
}

// redirect repoints every stitch aimed at old to new. Walks the four
// neighbor chains of old.
func (p *Plane) redirect(old, new Idx) {
	// Neighbors above.
	for c := p.tiles[old].rt; c != Nil && p.Left(c) >= p.Left(old); c = p.tiles[c].bl {
		if p.tiles[c].lb == old {
			p.tiles[c].lb = new
		}
	}
	// Neighbors to the right.
	for c := p.tiles[old].tr; c != Nil && p.Bottom(c) >= p.Bottom(old); c = p.tiles[c].lb {
		if p.tiles[c].bl == old {
			p.tiles[c].bl = new
		}
	}
	// Neighbors below.
	for c := p.tiles[old].lb; c != Nil && p.Left(c) < p.Right(old); c = p.tiles[c].tr {
		if p.tiles[c].rt == old {
			p.tiles[c].rt = new
		}
	}
	// Neighbors to the left.
	for c := p.tiles[old].bl; c != Nil && p.Top(c) <= p.Top(old); c = p.tiles[c].rt {
		if p.tiles[c].tr == old {
			p.tiles[c].tr = new
		}
	}
}
