package main

import (
	"log"

	"partsbot/config"
	"partsbot/internal/ingest"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	ingest.Run(cfg)
}
