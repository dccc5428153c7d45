package tile

import "fmt"

// Verify checks the structural consistency of the plane over area:
// every tile is visited exactly once by the enumeration, stitches of
// neighboring tiles agree with their geometry, and the tiles clipped
// to area cover it exactly (no gap, no overlap). Returns the first
// inconsistency found, or nil.
func (p *Plane) Verify(area Rect) error {
	var (
		seen  = make(map[Idx]bool)
		rects []Rect
		err   error
	)
	p.SrArea(Nil, area, func(t Idx) bool {
		if seen[t] {
			err = fmt.Errorf("tile (%d,%d) enumerated twice", p.Left(t), p.Bottom(t))
			return false
		}
		seen[t] = true
		if e := p.verifyStitches(t); e != nil {
			err = e
			return false
		}
		if r := p.Bounds(t).Clip(area); !r.IsNull() {
			rects = append(rects, r)
		}
		return true
	})
	if err != nil {
		return err
	}

	var covered int64
	for i, r := range rects {
		covered += r.Area()
		for _, s := range rects[:i] {
			if r.Intersects(s) {
				return fmt.Errorf("tiles overlap at (%d,%d)", r.XBot, r.YBot)
			}
		}
	}
	if covered != area.Area() {
		return fmt.Errorf("tiles cover %d of %d units of the area", covered, area.Area())
	}
	return nil
}

func (p *Plane) verifyStitches(t Idx) error {
	b := p.Bounds(t)
	if b.IsNull() {
		return fmt.Errorf("tile (%d,%d) is degenerate", b.XBot, b.YBot)
	}
	if c := p.RT(t); c != Nil {
		if p.Bottom(c) != b.YTop || p.Left(c) > b.XTop-1 || p.Right(c) <= b.XTop-1 {
			return fmt.Errorf("tile (%d,%d): rt stitch out of place", b.XBot, b.YBot)
		}
	}
	if c := p.TR(t); c != Nil {
		if p.Left(c) != b.XTop || p.Bottom(c) > b.YTop-1 || p.Top(c) <= b.YTop-1 {
			return fmt.Errorf("tile (%d,%d): tr stitch out of place", b.XBot, b.YBot)
		}
	}
	if c := p.LB(t); c != Nil {
		if p.Top(c) != b.YBot || p.Left(c) > b.XBot || p.Right(c) <= b.XBot {
			return fmt.Errorf("tile (%d,%d): lb stitch out of place", b.XBot, b.YBot)
		}
	}
	if c := p.BL(t); c != Nil {
		if p.Right(c) != b.XBot || p.Bottom(c) > b.YBot || p.Top(c) <= b.YBot {
			return fmt.Errorf("tile (%d,%d): bl stitch out of place", b.XBot, b.YBot)
		}
	}
	return nil
}
