package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/blxck-backdrop/internal/audio"
	"github.com/iburimskiy/blxck-backdrop/internal/config"
	"github.com/iburimskiy/blxck-backdrop/internal/game"
	"github.com/iburimskiy/blxck-backdrop/internal/logging"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	debug := flag.Bool("debug", false, "Write a debug log to logs/backdrop.log")
	seed := flag.Uint64("seed", 0, "Particle seed (default: random)")
	count := flag.Int("count", 0, "Particle count (default: 500)")
	radial := flag.String("radial", "", "Radial distribution: linear or volumetric")
	lang := flag.String("lang", "", "Initial language: es or en")
	themeName := flag.String("theme", "", "Initial theme: dark or light")
	mute := flag.Bool("mute", false, "Start with UI sounds off")
	flag.Parse()

	if f := logging.Setup(logging.Dir, *debug); f != nil {
		defer f.Close()
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Seed:     *seed,
		Count:    *count,
		Radial:   *radial,
		Language: *lang,
		Theme:    *themeName,
		Mute:     *mute,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	log.Printf("config resolved: %+v (count=%d rotation=%v)", cfg, cfg.Count(), cfg.Rotation())

	player, err := audio.NewPlayer(cfg.Mute)
	if err != nil {
		log.Printf("audio initialization failed: %v", err)
	}
	defer player.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Blxck Pay - L: language, T: theme, 1-5: FAQ, S: snapshot, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("game exited: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
