package router

import "github.com/arl/go-chandecomp/tile"

// gridDown rounds v down to the nearest grid line at or below it.
func gridDown(v, origin, spacing int32) int32 {
	return origin + floorDiv(v-origin, spacing)*spacing
}

// gridUp rounds v up to the nearest grid line at or above it.
func gridUp(v, origin, spacing int32) int32 {
	return origin + ceilDiv(v-origin, spacing)*spacing
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// roundRouteArea snaps each side of the routing area to the canonical
// offset halfway between grid lines: top and right move to the
// canonical value below them, bumped up by one grid if that would
// shrink past the original side; bottom and left symmetrically.
func (c Config) roundRouteArea(r tile.Rect) tile.Rect {
	g := c.GridSpacing
	half := g / 2

	tmp := gridUp(r.XTop, c.OriginX, g) - half
	if tmp < r.XTop {
		r.XTop = tmp + g
	} else {
		r.XTop = tmp
	}
	tmp = gridUp(r.XBot, c.OriginX, g) - half
	if tmp > r.XBot {
		r.XBot = tmp - g
	} else {
		r.XBot = tmp
	}
	tmp = gridUp(r.YTop, c.OriginY, g) - half
	if tmp < r.YTop {
		r.YTop = tmp + g
	} else {
		r.YTop = tmp
	}
	tmp = gridUp(r.YBot, c.OriginY, g) - half
	if tmp > r.YBot {
		r.YBot = tmp - g
	} else {
		r.YBot = tmp
	}
	return r
}

// roundRect rounds r out to the nearest grid line, then extends each
// side to a point halfway to the next grid line (roundUp true) or
// pulls it back half a grid from the nearest grid line (roundUp
// false). Before rounding, sepUp is added to the top and right and
// sepDown subtracted from the bottom and left.
//
// The halfway points are always reached by subtracting spacing/2 from
// a grid line, never by adding: when the spacing is odd, adding and
// subtracting give different results.
func (c Config) roundRect(r tile.Rect, sepUp, sepDown int32, roundUp bool) tile.Rect {
	g := c.GridSpacing
	half := g / 2

	r.XBot = gridDown(r.XBot-sepDown, c.OriginX, g)
	r.YBot = gridDown(r.YBot-sepDown, c.OriginY, g)
	if roundUp {
		r.XBot -= half
		r.YBot -= half
	} else {
		r.XBot += g - half
		r.YBot += g - half
	}

	r.XTop = gridUp(r.XTop+sepUp, c.OriginX, g)
	r.YTop = gridUp(r.YTop+sepUp, c.OriginY, g)
	if roundUp {
		r.XTop += g - half
		r.YTop += g - half
	} else {
		r.XTop -= half
		r.YTop -= half
	}
	return r
}

// expandObstruction grows a subcell bounding box by the configured
// separations and snaps it outward to the half-grid offsets.
func (c Config) expandObstruction(r tile.Rect) tile.Rect {
	return c.roundRect(r, c.SubcellSepUp, c.SubcellSepDown, true)
}
