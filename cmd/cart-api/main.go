package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Apurer/go-gin-shop-services/internal/app/cartapi"
)

func main() {
	cfg, err := cartapi.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cartapi.Run(ctx, cfg); err != nil {
		log.Fatalf("cart API stopped: %v", err)
	}
}
