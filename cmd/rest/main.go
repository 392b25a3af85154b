package main

import (
	"context"
	"log"

	"career-path-be/internal/bootstrap"
	"career-path-be/internal/config"
	"career-path-be/internal/server"
	"career-path-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 4. Start Background Workers
	go func() {
		log.Println("Background: Starting Analytics Consumer...")
		if err := container.AnalyticsConsumer.Run(context.Background()); err != nil {
			log.Printf("Background Analytics Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
