package tile

// Paint covers area with tiles of the given body. Tiles straddling the
// area boundary are split first, then converted one by one; after each
// conversion neighboring tiles of the same body are re-joined so both
// the painted region and the surrounding space stay maximal horizontal
// strips.
func (p *Plane) Paint(area Rect, body Body) {
	if area.IsNull() {
		return
	}
	for {
		// Find a not-yet-converted tile under the area. The plane is
		// not mutated during the scan; conversion restarts it.
		target := Nil
		p.SrArea(Nil, area, func(t Idx) bool {
			if p.Body(t) != body {
				target = t
				return false
			}
			return true
		})
		if target == Nil {
			return
		}

		// Clip the tile to the area; remnants keep the old body.
		t := target
		var remnants [4]Idx
		nr := 0
		if p.Top(t) > area.YTop {
			remnants[nr] = p.SplitY(t, area.YTop)
			nr++
		}
		if p.Bottom(t) < area.YBot {
			n := p.SplitY(t, area.YBot)
			remnants[nr] = t
			nr++
			t = n
		}
		if p.Left(t) < area.XBot {
			n := p.SplitX(t, area.XBot)
			remnants[nr] = t
			nr++
			t = n
		}
		if p.Right(t) > area.XTop {
			remnants[nr] = p.SplitX(t, area.XTop)
			nr++
		}

		p.tiles[t].body = body
		t = p.mend(t)
		for i := 0; i < nr; i++ {
			p.mend(remnants[i])
		}
	}
}

// mend re-joins t with any neighbor of the same body sharing a full
// edge, horizontal joins first, and returns the surviving composite.
func (p *Plane) mend(t Idx) Idx {
	body := p.Body(t)
	if c := p.tiles[t].bl; p.Body(c) == body && p.joinableX(t, c) {
		p.JoinX(t, c)
	}
	if c := p.tiles[t].tr; p.Body(c) == body && p.joinableX(t, c) {
		p.JoinX(t, c)
	}
	if c := p.tiles[t].lb; p.Body(c) == body && p.joinableY(t, c) {
		p.JoinY(t, c)
	}
	if c := p.tiles[t].rt; p.Body(c) == body && p.joinableY(c, t) {
		p.JoinY(c, t)
		t = c
	}
	return t
}

func (p *Plane) joinableX(t, c Idx) bool {
	return p.Bottom(t) == p.Bottom(c) && p.Top(t) == p.Top(c) && !p.isBorder(c)
}

func (p *Plane) joinableY(tup, tdn Idx) bool {
	return p.Left(tup) == p.Left(tdn) && p.Right(tup) == p.Right(tdn) && !p.isBorder(tup) && !p.isBorder(tdn)
}

// isBorder reports whether t is one of the four border tiles fencing
// the universe. Borders are never joined.
func (p *Plane) isBorder(t Idx) bool {
	b := p.Bounds(t)
	return b.XBot < universe.XBot || b.YBot < universe.YBot || b.XTop > universe.XTop || b.YTop > universe.YTop
}
