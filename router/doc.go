// Package router implements channel decomposition of a routing area.
//
// Given a rectangular routing area and the bounding boxes of the
// subcells placed inside it, the decomposition partitions the free
// area into disjoint rectangular channels, each to be routed
// separately by a channel router.
//
// The pipeline is:
//
//  - Round the routing area to the canonical half-grid offsets.
//  - Paint every subcell bounding box, expanded by the subcell
//    separation, as a solid tile into a corner-stitched plane.
//  - Clip free tiles to the routing area and seed the boundary flags.
//  - Visit every convex corner of every solid tile and extend the
//    shorter of a horizontal or vertical cut from it, splitting and
//    merging free tiles until every corner is discharged.
//
// The result is a tile plane in which every free tile is one channel.
package router
