package tilemap

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Tileset tile property naming the tile's role, overriding its local id.
const kindProperty = "kind"

// LoadTMX parses a Tiled map from fsys and converts one tile layer into a
// Grid. An empty layer name selects the first tile layer. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath, layer string, opts Options) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	g, err := FromTiled(levelMap, layer, opts)
	if err != nil {
		return nil, fmt.Errorf("convert TMX %s: %w", tmxPath, err)
	}
	return g, nil
}

// DecodeTMX reads a Tiled map whose tilesets are embedded in the document.
func DecodeTMX(r io.Reader, layer string, opts Options) (*Grid, error) {
	levelMap, err := tiled.LoadReader("", r)
	if err != nil {
		return nil, fmt.Errorf("decode TMX: %w", err)
	}
	return FromTiled(levelMap, layer, opts)
}

// FromTiled converts a parsed map. Nil tiles become the empty id; other
// tiles keep their tileset-local id unless the tileset tile carries a
// "kind" property of "empty", "spawn" or "wall".
func FromTiled(levelMap *tiled.Map, layer string, opts Options) (*Grid, error) {
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("tiles must be square, got %dx%d", levelMap.TileWidth, levelMap.TileHeight)
	}
	if opts.TileSize == 0 {
		opts.TileSize = levelMap.TileWidth
	}
	if opts.TileSize != levelMap.TileWidth {
		return nil, fmt.Errorf("tile size %d does not match configured %d", levelMap.TileWidth, opts.TileSize)
	}

	var src *tiled.Layer
	for _, l := range levelMap.Layers {
		if layer == "" || l.Name == layer {
			src = l
			break
		}
	}
	if src == nil {
		return nil, fmt.Errorf("tile layer %q not found", layer)
	}
	if len(src.Tiles) != levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("layer %q has %d tiles, want %d", src.Name, len(src.Tiles), levelMap.Width*levelMap.Height)
	}

	g := NewGrid(levelMap.Width, levelMap.Height, opts)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := src.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			g.Set(x, y, tileID(tile, opts))
		}
	}
	return g, nil
}

func tileID(tile *tiled.LayerTile, opts Options) int {
	if tile.Tileset != nil {
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			switch tilesetTile.Properties.GetString(kindProperty) {
			case "empty":
				return opts.Empty
			case "spawn":
				return opts.Spawn
			case "wall":
				if len(opts.Solid) > 0 {
					return opts.Solid[0]
				}
			}
		}
	}
	return int(tile.ID)
}
