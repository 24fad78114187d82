package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/kgbridge/internal/config"
	"github.com/agenthands/kgbridge/internal/driver"
	"github.com/agenthands/kgbridge/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg := config.FromEnv()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}

	ctx := context.Background()
	d, err := driver.NewNeo4jDriver(ctx, &cfg.Neo4j)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}
	defer d.Close(ctx)

	srv := server.NewServer(d, cfg)
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.HTTP.Port)
	if err := r.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatal(err)
	}
}
