package main

import (
	"flag"

	"github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{}
	g.scene = scenes.NewPlatformerScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Config override file (yaml, toml or json)")
	level := flag.String("level", "", "TMX level inside the embedded levels fs, e.g. levels/level1.tmx")
	boundary := flag.String("boundary", "", "Map edge policy: open or wall")
	debug := flag.Bool("debug", false, "Start with the collision overlay on")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := config.Load(*configPath); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	// Flags win over the config file.
	if *level != "" {
		config.C.Level = *level
	}
	if *boundary != "" {
		config.Tiles.Boundary = *boundary
	}
	if *debug {
		config.Debug.Overlay = true
	}
	config.MustValidate()

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		logrus.WithError(err).Fatal("game exited")
	}
}
