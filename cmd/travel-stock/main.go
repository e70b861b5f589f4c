package main

import (
	"context"
	"log"
	"os"

	"github.com/LavaJover/shvark-travel-stock/internal/app/setup"
	"github.com/LavaJover/shvark-travel-stock/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v\n", err)
	}
	// Читаем конфиг
	cfg := config.MustLoad()

	deps, err := setup.InitializeDependencies(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v\n", err)
	}

	runErr := deps.Console.Run(context.Background())
	if runErr != nil {
		deps.Logger.Error("console stopped", "error", runErr)
	}
	if err := deps.Close(os.Stderr); err != nil {
		log.Printf("failed to close dependencies: %v\n", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
