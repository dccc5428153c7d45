package router

import (
	"fmt"

	"github.com/arl/go-chandecomp/tile"
)

// Config holds the grid parameters of a decomposition.
//
// The routing grid is defined by an origin and a spacing; channel
// boundaries lie on the canonical offsets halfway between grid lines.
// SubcellSepUp is added to the top and right of every subcell bounding
// box before rounding, SubcellSepDown is subtracted from its bottom
// and left, so that routing outside the painted area stays clear of
// the subcell.
type Config struct {
	OriginX     int32 `yaml:"origin-x"`
	OriginY     int32 `yaml:"origin-y"`
	GridSpacing int32 `yaml:"grid-spacing"`

	SubcellSepUp   int32 `yaml:"subcell-sep-up"`
	SubcellSepDown int32 `yaml:"subcell-sep-down"`
}

// NewConfig returns a Config filled with default values.
func NewConfig() Config {
	return Config{
		OriginX:        0,
		OriginY:        0,
		GridSpacing:    8,
		SubcellSepUp:   0,
		SubcellSepDown: 0,
	}
}

// check validates the configuration.
func (c Config) check() error {
	if c.GridSpacing <= 0 {
		return fmt.Errorf("grid spacing must be positive, got %d", c.GridSpacing)
	}
	if c.SubcellSepUp < 0 || c.SubcellSepDown < 0 {
		return fmt.Errorf("subcell separations must not be negative, got %d and %d",
			c.SubcellSepUp, c.SubcellSepDown)
	}
	return nil
}

// Origin returns the grid origin.
func (c Config) Origin() tile.Point {
	return tile.Point{X: c.OriginX, Y: c.OriginY}
}
