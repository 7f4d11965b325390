// Command server runs one six-seat No-Limit Hold'em table, listening
// on six TCP ports (base_port .. base_port+5, one per seat).
//
// Usage: server [random_seed]
package main

import (
	"log"
	"os"

	"sixseat/internal/config"
	"sixseat/internal/history"
	"sixseat/internal/server"
)

func main() {
	cfg, err := config.Load(os.Args)
	if err != nil {
		log.Fatalf("[Server] bad configuration: %v", err)
	}

	logFile, err := server.OpenLogSink("logs")
	if err != nil {
		log.Fatalf("[Server] failed to open log sink: %v", err)
	}
	defer logFile.Close()

	overlay, err := config.WatchOverlay(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("[Server] failed to load config overlay: %v", err)
	}
	defer overlay.Close()

	store, err := history.Open("hands.db")
	if err != nil {
		log.Fatalf("[Server] failed to open hand history store: %v", err)
	}
	defer store.Close()

	log.Printf("[Server] base_port=%d starting_stack=%d seed=%d", cfg.BasePort, cfg.StartingStack, cfg.Seed)

	srv, err := server.New(cfg, overlay, store)
	if err != nil {
		log.Fatalf("[Server] failed to initialize: %v", err)
	}

	log.Printf("[Server] waiting for six seats to connect on ports %d-%d", cfg.BasePort, cfg.BasePort+5)
	if err := srv.Run(); err != nil {
		log.Printf("[Server] stopped: %v", err)
	}
}
