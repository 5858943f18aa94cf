package factory

import (
	"io/fs"

	"github.com/automoto/tilestep/archetypes"
	"github.com/automoto/tilestep/assets"
	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/tilemap"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TileOptions builds grid options from the tile config.
func TileOptions() tilemap.Options {
	boundary, err := tilemap.ParseBoundary(cfg.Tiles.Boundary)
	if err != nil {
		// Validated at startup; anything else is a programming error.
		panic(err)
	}
	return tilemap.Options{
		TileSize: cfg.Tiles.Size,
		Empty:    cfg.Tiles.Empty,
		Spawn:    cfg.Tiles.Spawn,
		Solid:    append([]int(nil), cfg.Tiles.Solid...),
		Boundary: boundary,
	}
}

// CreateLevel loads the configured level, falling back to the built-in one
// when no TMX path is set or it cannot be read.
func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelFrom(ecs, assets.LevelFS(), cfg.C.Level)
}

// CreateLevelFrom loads tmxPath from fsys into a new level entity.
func CreateLevelFrom(ecs *ecs.ECS, fsys fs.FS, tmxPath string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	opts := TileOptions()

	data := components.LevelData{Name: "builtin", Source: "builtin"}
	if tmxPath != "" {
		grid, err := tilemap.LoadTMX(fsys, tmxPath, cfg.Tiles.LayerName, opts)
		if err != nil {
			logrus.WithError(err).WithField("level", tmxPath).Warn("could not load level, using built-in")
		} else {
			data.Grid = grid
			data.Name = tmxPath
			data.Source = tmxPath
		}
	}
	if data.Grid == nil {
		data.Grid = tilemap.MustParse(assets.BuiltinLevel, opts)
	}

	w, h := data.Grid.PixelSize()
	logrus.WithFields(logrus.Fields{
		"level":    data.Name,
		"size":     []int{w, h},
		"solid":    len(data.Grid.SolidCells()),
		"boundary": data.Grid.Boundary().String(),
	}).Info("level loaded")

	components.Level.SetValue(level, data)
	return level
}
