package router

import "github.com/arl/go-chandecomp/tile"

// Decomposition is the result of a channel decomposition: a tile
// plane in which every space tile inside the routing area is one
// channel.
type Decomposition struct {
	// Plane is the result plane. It is nil when the rounded routing
	// area was degenerate.
	Plane *tile.Plane
	// Area is the routing area after rounding to the canonical
	// half-grid offsets.
	Area tile.Rect

	channels []Channel
	byTile   map[tile.Idx]int
}

// Empty reports whether the decomposition holds no plane because the
// rounded routing area had no surface.
func (d *Decomposition) Empty() bool { return d.Plane == nil }

// decomp carries the state threaded through one decomposition run:
// the configuration, the rounded routing area and the two planes.
// Corner enumeration reads the search plane; every mutation goes to
// the result plane.
type decomp struct {
	ctx    *BuildContext
	cfg    Config
	area   tile.Rect
	search *tile.Plane
	result *tile.Plane
}

// Decompose partitions the free space of the routing area into
// channels. It paints the expanded silhouette of every obstruction
// into a corner-stitched plane, seeds the boundary flags, then runs
// the corner extension algorithm over all solid tile corners.
//
// The returned decomposition owns the result plane. If the routing
// area is degenerate once rounded to the grid, an empty decomposition
// is returned; that is not an error.
func Decompose(ctx *BuildContext, cfg Config, obs []Obstruction, area tile.Rect) (*Decomposition, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}

	ctx.StartTimer(TimerTotal)
	defer ctx.StopTimer(TimerTotal)

	rounded := cfg.roundRouteArea(area)
	if rounded.IsNull() {
		ctx.Warningf("routing area (%d,%d)-(%d,%d) too small to be useful",
			area.XBot, area.YBot, area.XTop, area.YTop)
		return &Decomposition{Area: rounded}, nil
	}

	d := &decomp{
		ctx:    ctx,
		cfg:    cfg,
		area:   rounded,
		search: tile.NewPlane(),
		result: tile.NewPlane(),
	}

	ctx.StartTimer(TimerPaint)
	d.paintObstructions(obs)
	ctx.StopTimer(TimerPaint)

	ctx.StartTimer(TimerPrime)
	d.splitToArea()
	d.primeFlags()
	ctx.StopTimer(TimerPrime)

	ctx.StartTimer(TimerExtend)
	d.extendCorners()
	ctx.StopTimer(TimerExtend)

	dec := &Decomposition{Plane: d.result, Area: rounded}

	ctx.StartTimer(TimerChannels)
	dec.collectChannels()
	ctx.StopTimer(TimerChannels)

	ctx.Progressf("decomposed (%d,%d)-(%d,%d) into %d channels",
		rounded.XBot, rounded.YBot, rounded.XTop, rounded.YTop, len(dec.channels))
	return dec, nil
}
