package router

import "github.com/arl/go-chandecomp/tile"

// Obstruction is the root-frame bounding box of a placed subcell. A
// subcell arrayed NX by NY times is enumerated per element, with
// consecutive elements DX and DY apart, so that routing can reach the
// interior edges of the array.
type Obstruction struct {
	Bbox tile.Rect

	NX, NY int32 // element counts; 0 or 1 means a single instance
	DX, DY int32 // strides between consecutive elements
}

// forEach calls f with the bounding box of every array element.
func (o Obstruction) forEach(f func(tile.Rect)) {
	nx, ny := o.NX, o.NY
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	for j := int32(0); j < ny; j++ {
		for i := int32(0); i < nx; i++ {
			b := o.Bbox
			b.XBot += i * o.DX
			b.XTop += i * o.DX
			b.YBot += j * o.DY
			b.YTop += j * o.DY
			f(b)
		}
	}
}
