package components

import (
	"github.com/automoto/tilestep/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Grid   *tilemap.Grid
	Name   string
	Source string // TMX path, or "builtin"
}

var Level = donburi.NewComponentType[LevelData]()
