// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"go-scanner-defense/internal/app"
	"go-scanner-defense/internal/assets"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	musicDir := flag.String("music", "", "directory with level music clips")
	seed := flag.Int64("seed", 0, "override the level seed")
	level := flag.String("level", "", "start this level instead of the menu")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	lib, err := assets.DefaultLibrary()
	if err != nil {
		log.Fatalf("load library: %v", err)
	}
	opts := app.Options{MusicDir: *musicDir, Seed: *seed}
	face := basicfont.Face7x13

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, lib, opts, face))
	if *level != "" {
		levels, err := assets.LevelNames()
		if err != nil {
			log.Fatalf("list levels: %v", err)
		}
		idx := -1
		for i, name := range levels {
			if name == *level {
				idx = i
			}
		}
		if idx < 0 {
			log.Fatalf("unknown level %q, have %v", *level, levels)
		}
		gs, err := state.NewGameState(sm, lib, opts, face, levels, idx)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Scanner Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
