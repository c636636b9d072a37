package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golangdaddy/showroom/config"
	"github.com/golangdaddy/showroom/models"
	"github.com/golangdaddy/showroom/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg      *config.Config
	showroom *ui.Showroom
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	return g.showroom.Update()
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.showroom.Draw(screen)
}

// Layout returns the fixed logical screen size from the config.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

// loadSnapshot restores the previous session, or starts a new one from the inventory
func loadSnapshot(cfg *config.Config) (*models.Snapshot, error) {
	if cfg.SnapshotPath != "" {
		snap, err := models.LoadSnapshot(cfg.SnapshotPath)
		if err == nil {
			return snap, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Printf("No snapshot at %s, starting a new session", cfg.SnapshotPath)
	}

	var garage *models.Garage
	var err error
	if cfg.InventoryPath != "" {
		garage, err = models.LoadInventory(cfg.InventoryPath, cfg.Capacity)
	} else {
		garage, err = models.DefaultInventory(cfg.Capacity)
	}
	if err != nil {
		return nil, err
	}
	return models.NewSnapshot(garage), nil
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(cfg)
	if err != nil {
		return err
	}
	log.Printf("Showroom opened: %s", snap.Garage)

	game := &Game{
		cfg:      cfg,
		showroom: ui.NewShowroom(snap.Garage, cfg.Step),
	}
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(game); err != nil {
		return err
	}

	if cfg.SnapshotPath != "" {
		return snap.SaveToFile(cfg.SnapshotPath)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
