// Package tile implements a corner-stitched tile plane.
//
// A plane covers the whole 2D integer coordinate space with
// non-overlapping, axis-aligned rectangular tiles. Every point lies in
// exactly one tile. Each tile keeps four corner stitches to its
// neighbors, which makes point location, splitting and joining local
// operations.
//
// Tiles live in an arena owned by the plane and are referred to by
// stable integer handles, so split and join never move records and a
// handle stays valid until the tile is absorbed by a join.
//
// The usual life-cycle is:
//
//  - Create a plane. (NewPlane)
//  - Paint solid rectangles into it. (Paint)
//  - Locate, split and join tiles. (SrPoint, SplitX, SplitY, JoinX, JoinY)
//  - Enumerate tiles over an area. (SrArea)
package tile
