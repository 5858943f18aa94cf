package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the TMX level shipped with the game.
const DefaultLevel = "levels/level1.tmx"

// LevelFS exposes the embedded levels directory.
func LevelFS() fs.FS {
	return assetFS
}

// BuiltinLevel is used when no TMX level is configured or it fails to load.
// It is 16x16 tiles, the size of the default 128x128 window at 8px tiles.
const BuiltinLevel = `
################
#..............#
#..............#
#.........22...#
#..............#
#....33........#
#..............#
#..........44..#
#.P............#
#####......#####
#..............#
#......55......#
#..............#
#..2........3..#
#..............#
################
`
