package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TILESTEP_PHYSICS_GRAVITY.
const EnvPrefix = "TILESTEP"

// fileConfig mirrors the override file layout.
type fileConfig struct {
	Window  Config        `mapstructure:"window"`
	Physics PhysicsConfig `mapstructure:"physics"`
	Tiles   TileConfig    `mapstructure:"tiles"`
	Debug   DebugConfig   `mapstructure:"debug"`
}

// Load applies overrides from the file at path (any format viper reads) and
// from TILESTEP_* environment variables on top of the current values.
// An empty path applies environment overrides only.
func Load(path string) error {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := apply(v); err != nil {
		return fmt.Errorf("apply config %s: %w", path, err)
	}
	logrus.WithFields(logrus.Fields{
		"file":      path,
		"gravity":   Physics.Gravity,
		"jumpPower": Physics.JumpPower,
		"tileSize":  Tiles.Size,
	}).Info("config loaded")
	return nil
}

// LoadReader is Load for an in-memory document of the given format
// ("yaml", "toml", "json").
func LoadReader(r io.Reader, format string) error {
	v := newViper()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return fmt.Errorf("read %s config: %w", format, err)
	}
	return apply(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	v.SetDefault("window.width", C.Width)
	v.SetDefault("window.height", C.Height)
	v.SetDefault("window.scale", C.Scale)
	v.SetDefault("window.tps", C.TPS)
	v.SetDefault("window.title", C.Title)
	v.SetDefault("window.level", C.Level)

	v.SetDefault("physics.gravity", Physics.Gravity)
	v.SetDefault("physics.jump_power", Physics.JumpPower)
	v.SetDefault("physics.rising_gravity_scale", Physics.RisingGravityScale)
	v.SetDefault("physics.jump_hold_gravity_scale", Physics.JumpHoldGravityScale)

	v.SetDefault("tiles.size", Tiles.Size)
	v.SetDefault("tiles.empty", Tiles.Empty)
	v.SetDefault("tiles.spawn", Tiles.Spawn)
	v.SetDefault("tiles.solid", Tiles.Solid)
	v.SetDefault("tiles.boundary", Tiles.Boundary)
	v.SetDefault("tiles.layer", Tiles.LayerName)

	v.SetDefault("debug.overlay", Debug.Overlay)
	return v
}

func apply(v *viper.Viper) error {
	fc := fileConfig{
		Window:  *C,
		Physics: Physics,
		Tiles:   Tiles,
		Debug:   Debug,
	}
	// mapstructure decodes into an existing slice in place; start empty so a
	// shorter override does not keep stale ids.
	fc.Tiles.Solid = nil
	if err := v.Unmarshal(&fc); err != nil {
		return err
	}

	C = &fc.Window
	Physics = fc.Physics
	Tiles = fc.Tiles
	Debug = fc.Debug
	return Validate()
}
