package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/agenthands/kgbridge/internal/config"
	"github.com/agenthands/kgbridge/internal/converter"
	"github.com/agenthands/kgbridge/internal/driver"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		if ctx.Err() != nil {
			log.Println("Conversion cancelled by user")
			return
		}
		log.Fatalf("Conversion failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	d, err := driver.NewNeo4jDriver(ctx, &cfg.Neo4j)
	if err != nil {
		return err
	}
	defer d.Close(context.Background())

	kg, err := converter.New(d, &cfg.Queries).Convert(ctx)
	if err != nil {
		return err
	}

	report(kg)
	return nil
}

func report(kg *converter.KnowledgeGraph) {
	fmt.Println("\n--- Conversion Summary ---")
	fmt.Printf("Total entities converted: %d\n", len(kg.Entities))
	fmt.Printf("Total relationships converted: %d\n", len(kg.Relations))
	fmt.Printf("Total chunks derived: %d\n", len(kg.Chunks))

	if len(kg.Entities) > 0 {
		fmt.Println("\nSample Entity:")
		fmt.Printf("%+v\n", kg.Entities[0])
	}
	if len(kg.Relations) > 0 {
		fmt.Println("\nSample Relation:")
		fmt.Printf("%+v\n", kg.Relations[0])
	}
}
