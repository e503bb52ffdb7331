package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Apurer/go-gin-shop-services/internal/app/orderapi"
)

func main() {
	cfg, err := orderapi.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := orderapi.Run(ctx, cfg); err != nil {
		log.Fatalf("order API stopped: %v", err)
	}
}
