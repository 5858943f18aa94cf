// Package tilemap holds the tile grid the movement engine collides against.
// It does not import ebitengine, donburi or resolv.
package tilemap

import "fmt"

// Boundary decides what lies outside the map extent.
type Boundary int

const (
	// BoundaryOpen treats cells outside the map as empty, so actors can
	// walk or fall off the edges.
	BoundaryOpen Boundary = iota
	// BoundaryWall treats cells outside the map as solid, an implicit wall
	// around the level.
	BoundaryWall
)

func (b Boundary) String() string {
	switch b {
	case BoundaryOpen:
		return "open"
	case BoundaryWall:
		return "wall"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary maps "open" and "wall" to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "", "open":
		return BoundaryOpen, nil
	case "wall":
		return BoundaryWall, nil
	}
	return BoundaryOpen, fmt.Errorf("unknown boundary policy %q", s)
}

// Options classify tile ids and fix the cell size.
type Options struct {
	TileSize int
	Empty    int
	Spawn    int
	Solid    []int
	Boundary Boundary
}

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}
