package main

import (
	"log"

	"valor-backend/internal/shared/config"
	"valor-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (provider=%s mode_offline=%v)", addr, cfg.VisionProvider, cfg.UseOfflineMode)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
