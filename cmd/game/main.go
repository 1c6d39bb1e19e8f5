package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Foot-Pong/internal/audio"
	"github.com/Garsondee/Foot-Pong/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := game.LoadConfig()
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
		cfg = game.DefaultConfig()
	}

	flag.IntVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "opponent difficulty 1-5")
	flag.BoolVar(&cfg.SoundEnabled, "sound", cfg.SoundEnabled, "play collision tones")
	flag.Float64Var(&cfg.Volume, "volume", cfg.Volume, "master volume 0-1")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 = time based)")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "initial window scale")
	flag.Parse()
	cfg = cfg.Normalized()

	player := audio.NewPlayer(cfg.Volume)
	var tone game.ToneFunc
	if err := player.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		tone = player.Play
	}

	g := game.New(cfg, tone)
	ebiten.SetWindowTitle("Foot Pong")
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(g)
	g.Close()
	player.Close()
	if err != nil {
		log.Fatal(err)
	}
}
