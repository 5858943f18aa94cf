package config

import (
	"fmt"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the client draws on.
const Default ecs.LayerID = 0

// PhysicsConfig contains the player's movement tuning.
type PhysicsConfig struct {
	Gravity   float64 `mapstructure:"gravity"`
	JumpPower float64 `mapstructure:"jump_power"`

	// Gravity multipliers. Rising applies while vy < 0; JumpHold stacks on
	// top of it while the jump action is held.
	RisingGravityScale   float64 `mapstructure:"rising_gravity_scale"`
	JumpHoldGravityScale float64 `mapstructure:"jump_hold_gravity_scale"`
}

// TileConfig describes how tile ids in a level are classified.
type TileConfig struct {
	Size      int    `mapstructure:"size"`
	Empty     int    `mapstructure:"empty"`
	Spawn     int    `mapstructure:"spawn"`
	Solid     []int  `mapstructure:"solid"`
	Boundary  string `mapstructure:"boundary"` // "open" or "wall"
	LayerName string `mapstructure:"layer"`    // TMX tile layer; empty = first layer
}

// Config holds general game configuration
type Config struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Scale  int    `mapstructure:"scale"`
	TPS    int    `mapstructure:"tps"`
	Title  string `mapstructure:"title"`
	Level  string `mapstructure:"level"` // TMX path inside the level fs; empty = built-in level
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `mapstructure:"overlay"` // draw collision boxes on start
}

// ColorConfig holds the flat colours used to draw the grid and the player.
type ColorConfig struct {
	Background color.RGBA
	Wall       color.RGBA
	Player     color.RGBA
	Overlay    color.RGBA
	Grounded   color.RGBA
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Tiles TileConfig
var Debug DebugConfig
var Colors ColorConfig

func init() {
	Reset()
}

// Reset restores every configuration instance to its defaults.
func Reset() {
	C = &Config{
		Width:  128,
		Height: 128,
		Scale:  4,
		TPS:    60,
		Title:  "Platformer Example",
		Level:  "levels/level1.tmx",
	}

	Physics = PhysicsConfig{
		Gravity:              0.2,
		JumpPower:            2,
		RisingGravityScale:   0.7,
		JumpHoldGravityScale: 0.6,
	}

	// Ids follow the order of the tiles in the editor tileset.
	Tiles = TileConfig{
		Size:     8,
		Empty:    0,
		Spawn:    1,
		Solid:    []int{2, 3, 4, 5},
		Boundary: "open",
	}

	Debug = DebugConfig{
		Overlay: false,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 29, G: 43, B: 83, A: 255},
		Wall:       color.RGBA{R: 131, G: 118, B: 156, A: 255},
		Player:     color.RGBA{R: 255, G: 163, B: 0, A: 255},
		Overlay:    color.RGBA{R: 0, G: 255, B: 255, A: 255},
		Grounded:   color.RGBA{R: 0, G: 228, B: 54, A: 255},
	}
}

// Validate reports the first configuration value the engine cannot run with.
func Validate() error {
	if C == nil {
		return fmt.Errorf("config: not initialised")
	}
	if C.Width <= 0 || C.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", C.Width, C.Height)
	}
	if C.Scale <= 0 {
		return fmt.Errorf("config: invalid scale %d", C.Scale)
	}
	if C.TPS <= 0 {
		return fmt.Errorf("config: invalid tps %d", C.TPS)
	}
	if Tiles.Size <= 0 {
		return fmt.Errorf("config: invalid tile size %d", Tiles.Size)
	}
	if len(Tiles.Solid) == 0 {
		return fmt.Errorf("config: solid tile set is empty")
	}
	for _, id := range Tiles.Solid {
		if id == Tiles.Empty || id == Tiles.Spawn {
			return fmt.Errorf("config: tile id %d cannot be both solid and empty/spawn", id)
		}
	}
	if Tiles.Empty == Tiles.Spawn {
		return fmt.Errorf("config: empty and spawn tile ids are both %d", Tiles.Empty)
	}
	switch Tiles.Boundary {
	case "open", "wall":
	default:
		return fmt.Errorf("config: unknown boundary policy %q", Tiles.Boundary)
	}
	return nil
}

// MustValidate panics when the configuration is unusable. Bad tuning is a
// programming error and is caught before the first frame.
func MustValidate() {
	if err := Validate(); err != nil {
		panic(err)
	}
}
