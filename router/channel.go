package router

import "github.com/arl/go-chandecomp/tile"

// Channel is one routing channel: a free rectangle of the result
// plane, to be routed independently downstream.
type Channel struct {
	// ID numbers the channel in enumeration order.
	ID int
	// Area is the channel rectangle.
	Area tile.Rect
	// Flags are the committed half-edge flags of the channel tile.
	Flags tile.Corner
}

// collectChannels records a channel for every space tile inside the
// routing area and indexes them by tile handle.
func (d *Decomposition) collectChannels() {
	pl := d.Plane
	d.byTile = make(map[tile.Idx]int)
	pl.SrArea(tile.Nil, d.Area, func(t tile.Idx) bool {
		if pl.Body(t) != tile.Space {
			return true
		}
		d.byTile[t] = len(d.channels)
		d.channels = append(d.channels, Channel{
			ID:    len(d.channels),
			Area:  pl.Bounds(t),
			Flags: pl.Flags(t),
		})
		return true
	})
}

// Channels returns the channels of the decomposition, in enumeration
// order. The returned slice is owned by the decomposition.
func (d *Decomposition) Channels() []Channel {
	if d.Empty() {
		return nil
	}
	return d.channels
}

// ChannelAt returns the channel containing p, or nil if p falls on an
// obstruction or outside the routing area.
func (d *Decomposition) ChannelAt(p tile.Point) *Channel {
	if d.Empty() || !d.Area.Contains(p) {
		return nil
	}
	t := d.Plane.SrPoint(tile.Nil, p)
	i, ok := d.byTile[t]
	if !ok {
		return nil
	}
	return &d.channels[i]
}
