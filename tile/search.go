package tile

// SrArea calls f for every tile intersecting area, exactly once each.
// Tiles are visited top-to-bottom by row and left-to-right within a
// row, so the order is fully determined by the plane structure. If f
// returns false the enumeration aborts and SrArea returns false.
//
// The plane must not be mutated during the enumeration.
func (p *Plane) SrArea(hint Idx, area Rect, f func(Idx) bool) bool {
	if area.IsNull() {
		return true
	}
	// Walk down the left edge of the area; each left-edge tile roots
	// one row of the enumeration.
	t := p.SrPoint(hint, Point{area.XBot, area.YTop - 1})
	for {
		if !p.srEnumRight(t, area, f) {
			return false
		}
		if p.Bottom(t) <= area.YBot {
			return true
		}
		t = p.SrPoint(t, Point{area.XBot, p.Bottom(t) - 1})
	}
}

// srEnumRight enumerates t, then every tile to its right that belongs
// to t's row: a right neighbor is in the row when its lower-left
// corner touches t inside the area, or when t is in the bottom row and
// the neighbor hangs below the area.
func (p *Plane) srEnumRight(t Idx, area Rect, f func(Idx) bool) bool {
	if !f(t) {
		return false
	}
	if p.Right(t) >= area.XTop {
		return true
	}
	bot := p.Bottom(t)
	if bot < area.YBot {
		// Neighbors lying wholly below the area are not enumerated.
		bot = area.YBot
	}
	for c := p.tiles[t].tr; ; c = p.tiles[c].lb {
		if p.Bottom(c) >= bot {
			// c's lower-left corner abuts t's right edge.
			if p.Bottom(c) < area.YTop {
				if !p.srEnumRight(c, area, f) {
					return false
				}
			}
			if p.Bottom(c) == bot {
				return true
			}
		} else {
			// c extends below t and is rooted in a lower row, unless
			// this is the bottom row of the area.
			if bot <= area.YBot {
				if !p.srEnumRight(c, area, f) {
					return false
				}
			}
			return true
		}
	}
}
