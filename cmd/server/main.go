package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/avolkovs/sitekeeper/internal/server"
	"github.com/avolkovs/sitekeeper/internal/server/config"
)

func main() {

	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
