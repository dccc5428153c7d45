package router

import "github.com/arl/go-chandecomp/tile"

// paintObstructions paints the silhouette of every subcell overlapping
// the routing area into both planes. Each element bounding box is
// expanded out to points midway between grid lines, far enough from
// the subcell that routing on the surrounding grid lines cannot cause
// design-rule violations, then clipped to the routing area.
//
// Both planes receive the same paint: searching and updating the same
// plane is not safe, so corner enumeration later reads the search
// plane while cuts modify the result plane.
func (d *decomp) paintObstructions(obs []Obstruction) {
	n := 0
	for _, o := range obs {
		o.forEach(func(b tile.Rect) {
			if !b.Intersects(d.area) {
				return
			}
			g := d.cfg.expandObstruction(b).Clip(d.area)
			if g.IsNull() {
				return
			}
			d.search.Paint(g, tile.Solid)
			d.result.Paint(g, tile.Solid)
			n++
		})
	}
	d.ctx.Progressf("painted %d subcell silhouettes", n)
}
