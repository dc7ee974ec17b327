// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-scanner-defense/internal/app"
	"go-scanner-defense/internal/assets"
	"go-scanner-defense/internal/bridge"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	levelName := flag.String("level", "01-first-light.yaml", "embedded level to serve")
	musicDir := flag.String("music", "", "directory with level music clips")
	seed := flag.Int64("seed", 0, "override the level seed")
	tick := flag.Duration("tick", time.Second/60, "simulation tick")
	snapshotEvery := flag.Duration("snapshot", 100*time.Millisecond, "snapshot push interval")
	flag.Parse()

	lib, err := assets.DefaultLibrary()
	if err != nil {
		log.Fatalf("load library: %v", err)
	}
	level, err := assets.Level(*levelName, lib)
	if err != nil {
		log.Fatalf("load level: %v", err)
	}
	session, err := app.NewGameSession(level, lib, app.Options{MusicDir: *musicDir, Seed: *seed})
	if err != nil {
		log.Fatal(err)
	}

	hub := bridge.NewHub(session, *snapshotEvery)
	session.EventDispatcher.SubscribeAll(hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go hub.Run(ctx, *tick)

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	log.Printf("[Server] session %s serving %q on %s/ws", session.ID, level.Name, *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
