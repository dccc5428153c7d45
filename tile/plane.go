package tile

import "github.com/arl/assertgo"

// Infinity bounds the universe covered by a plane. Coordinates of
// painted rectangles and located points must lie in
// (-Infinity, Infinity); keeping it well below the int32 range leaves
// headroom for distance arithmetic.
const Infinity int32 = 1 << 26

// universe is the rectangle covered by space when a plane is created.
var universe = Rect{XBot: -Infinity, YBot: -Infinity, XTop: Infinity, YTop: Infinity}

// Plane is a corner-stitched tile plane. The zero value is not usable;
// call NewPlane.
type Plane struct {
	tiles []tile
	free  []Idx
	hint  Idx
	live  int
}

// NewPlane returns a plane holding a single space tile covering the
// whole universe, fenced by four solid border tiles.
func NewPlane() *Plane {
	p := &Plane{}

	center := p.alloc()
	bottom := p.alloc()
	top := p.alloc()
	left := p.alloc()
	right := p.alloc()

	// The borders are one unit thick and sit just outside the
	// universe; walks started from points inside the universe never
	// step past them.
	p.tiles[center] = tile{
		ll: Point{-Infinity, -Infinity},
		rt: top, tr: right, lb: bottom, bl: left,
		body: Space,
	}
	p.tiles[bottom] = tile{
		ll: Point{-Infinity - 1, -Infinity - 1},
		rt: right, tr: Nil, lb: Nil, bl: Nil,
		body: Solid,
	}
	p.tiles[top] = tile{
		ll: Point{-Infinity - 1, Infinity},
		rt: Nil, tr: Nil, lb: left, bl: Nil,
		body: Solid,
	}
	p.tiles[left] = tile{
		ll: Point{-Infinity - 1, -Infinity},
		rt: top, tr: center, lb: bottom, bl: Nil,
		body: Solid,
	}
	p.tiles[right] = tile{
		ll: Point{Infinity, -Infinity},
		rt: top, tr: Nil, lb: bottom, bl: center,
		body: Solid,
	}

	p.hint = center
	return p
}

func (p *Plane) alloc() Idx {
	if n := len(p.free); n > 0 {
		t := p.free[n-1]
		p.free = p.free[:n-1]
		p.live++
		return t
	}
	p.tiles = append(p.tiles, tile{})
	p.live++
	return Idx(len(p.tiles) - 1)
}

func (p *Plane) release(t Idx) {
	p.tiles[t] = tile{rt: Nil, tr: Nil, lb: Nil, bl: Nil}
	p.free = append(p.free, t)
	p.live--
}

// Count returns the number of live tiles, borders included.
func (p *Plane) Count() int { return p.live }

// Left returns the x coordinate of t's left edge.
func (p *Plane) Left(t Idx) int32 { return p.tiles[t].ll.X }

// Bottom returns the y coordinate of t's bottom edge.
func (p *Plane) Bottom(t Idx) int32 { return p.tiles[t].ll.Y }

// Right returns the x coordinate of t's right edge.
func (p *Plane) Right(t Idx) int32 {
	if tr := p.tiles[t].tr; tr != Nil {
		return p.tiles[tr].ll.X
	}
	return Infinity + 1
}

// Top returns the y coordinate of t's top edge.
func (p *Plane) Top(t Idx) int32 {
	if rt := p.tiles[t].rt; rt != Nil {
		return p.tiles[rt].ll.Y
	}
	return Infinity + 1
}

// LL returns t's lower-left corner.
func (p *Plane) LL(t Idx) Point { return p.tiles[t].ll }

// Bounds returns t's rectangle.
func (p *Plane) Bounds(t Idx) Rect {
	return Rect{XBot: p.Left(t), YBot: p.Bottom(t), XTop: p.Right(t), YTop: p.Top(t)}
}

// Body returns what t covers.
func (p *Plane) Body(t Idx) Body { return p.tiles[t].body }

// SetBody changes what t covers.
func (p *Plane) SetBody(t Idx, b Body) { p.tiles[t].body = b }

// RT returns the neighbor above t, at the right end of its top edge.
func (p *Plane) RT(t Idx) Idx { return p.tiles[t].rt }

// TR returns the neighbor right of t, at the top end of its right edge.
func (p *Plane) TR(t Idx) Idx { return p.tiles[t].tr }

// LB returns the neighbor below t, at the left end of its bottom edge.
func (p *Plane) LB(t Idx) Idx { return p.tiles[t].lb }

// BL returns the neighbor left of t, at the bottom end of its left edge.
func (p *Plane) BL(t Idx) Idx { return p.tiles[t].bl }

// Marked reports whether any of the corners selected by c is flagged
// on t. Solid tiles read as flagged on every corner.
func (p *Plane) Marked(t Idx, c Corner) bool {
	if p.tiles[t].body != Space {
		return true
	}
	return p.tiles[t].flags&c != 0
}

// Mark sets the corner flags selected by c on t.
func (p *Plane) Mark(t Idx, c Corner) {
	assert.True(p.tiles[t].body == Space, "Mark: flagging a solid tile at (%d,%d)", p.Left(t), p.Bottom(t))
	p.tiles[t].flags |= c
}

// Clear resets the corner flags selected by c on t.
func (p *Plane) Clear(t Idx, c Corner) { p.tiles[t].flags &^= c }

// Flags returns the corner flags of t.
func (p *Plane) Flags(t Idx) Corner { return p.tiles[t].flags }

// SrPoint returns the tile containing pt, which must lie inside the
// universe. hint, if not Nil, is the tile the walk starts from; a hint
// near pt shortens the walk.
func (p *Plane) SrPoint(hint Idx, pt Point) Idx {
	assert.True(universe.Contains(pt), "SrPoint: point (%d,%d) outside the universe", pt.X, pt.Y)

	t := hint
	if t == Nil {
		t = p.hint
	}
	for !p.Bounds(t).Contains(pt) {
		// Walk vertically, then horizontally. A horizontal move can
		// break vertical containment, so repeat until the tile
		// contains the point.
		for pt.Y < p.Bottom(t) {
			t = p.tiles[t].lb
		}
		for pt.Y >= p.Top(t) {
			t = p.tiles[t].rt
		}
		for pt.X < p.Left(t) {
			t = p.tiles[t].bl
		}
		for pt.X >= p.Right(t) {
			t = p.tiles[t].tr
		}
	}
	p.hint = t
	return t
}
