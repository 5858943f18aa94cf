package tilemap

import (
	"fmt"
	"math"
)

// Grid is a rectangular map of tile ids, row-major.
type Grid struct {
	width    int
	height   int
	tileSize int
	tiles    []int

	empty    int
	spawn    int
	solid    map[int]struct{}
	boundary Boundary
}

// NewGrid returns a width×height grid filled with the empty id. It panics on
// a non-positive tile size or negative dimensions.
func NewGrid(width, height int, opts Options) *Grid {
	if opts.TileSize <= 0 {
		panic(fmt.Sprintf("tilemap: invalid tile size %d", opts.TileSize))
	}
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("tilemap: invalid grid size %dx%d", width, height))
	}

	g := &Grid{
		width:    width,
		height:   height,
		tileSize: opts.TileSize,
		tiles:    make([]int, width*height),
		empty:    opts.Empty,
		spawn:    opts.Spawn,
		solid:    make(map[int]struct{}, len(opts.Solid)),
		boundary: opts.Boundary,
	}
	for _, id := range opts.Solid {
		g.solid[id] = struct{}{}
	}
	if g.empty != 0 {
		for i := range g.tiles {
			g.tiles[i] = g.empty
		}
	}
	return g
}

func (g *Grid) Width() int         { return g.width }
func (g *Grid) Height() int        { return g.height }
func (g *Grid) TileSize() int      { return g.tileSize }
func (g *Grid) Boundary() Boundary { return g.boundary }
func (g *Grid) EmptyID() int       { return g.empty }
func (g *Grid) SpawnID() int       { return g.spawn }

// PixelSize returns the map extent in world units.
func (g *Grid) PixelSize() (w, h int) {
	return g.width * g.tileSize, g.height * g.tileSize
}

func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.width && row < g.height
}

// At returns the tile id at (col, row), or the empty id outside the map.
func (g *Grid) At(col, row int) int {
	if !g.InBounds(col, row) {
		return g.empty
	}
	return g.tiles[row*g.width+col]
}

// Set writes a tile id. Writes outside the map are ignored and report false.
func (g *Grid) Set(col, row, id int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	g.tiles[row*g.width+col] = id
	return true
}

// IsSolidID reports whether id belongs to the solid set.
func (g *Grid) IsSolidID(id int) bool {
	_, ok := g.solid[id]
	return ok
}

// IsSolid reports whether the cell blocks movement. Cells outside the map
// follow the grid's Boundary policy.
func (g *Grid) IsSolid(col, row int) bool {
	if !g.InBounds(col, row) {
		return g.boundary == BoundaryWall
	}
	return g.IsSolidID(g.tiles[row*g.width+col])
}

// FindAndClear scans the map row by row, replaces every marker tile with the
// empty id and returns the last marker cell found.
func (g *Grid) FindAndClear(marker int) (Cell, bool) {
	var found Cell
	ok := false
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.tiles[row*g.width+col] != marker {
				continue
			}
			g.tiles[row*g.width+col] = g.empty
			found = Cell{Col: col, Row: row}
			ok = true
		}
	}
	return found, ok
}

// FindSpawn is FindAndClear for the grid's spawn marker id.
func (g *Grid) FindSpawn() (Cell, bool) {
	return g.FindAndClear(g.spawn)
}

// SolidCells lists every solid cell in row-major order.
func (g *Grid) SolidCells() []Cell {
	var cells []Cell
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.IsSolidID(g.tiles[row*g.width+col]) {
				cells = append(cells, Cell{Col: col, Row: row})
			}
		}
	}
	return cells
}

// CellAt converts a world position to the cell containing it.
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{Col: floorDiv(x, g.tileSize), Row: floorDiv(y, g.tileSize)}
}

// WorldPos returns the top-left world position of a cell.
func (g *Grid) WorldPos(c Cell) (x, y float64) {
	return float64(c.Col * g.tileSize), float64(c.Row * g.tileSize)
}

func floorDiv(v float64, size int) int {
	return int(math.Floor(v / float64(size)))
}
