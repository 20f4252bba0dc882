package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"storefront-checkout-demo/internal/cache"
	"storefront-checkout-demo/internal/client"
	"storefront-checkout-demo/internal/config"
	"storefront-checkout-demo/internal/repository"
	"storefront-checkout-demo/internal/server"
	"storefront-checkout-demo/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.DatabaseURL)
	redisClient := client.NewRedisClient(&cfg.Redis)

	profileRepo := repository.NewProfileRepository(db)
	methodRepo := repository.NewPaymentMethodRepository(db)
	orderLedger := repository.NewOrderLedger(db)

	historyCache := cache.NewRedisOrderHistoryCache(redisClient)

	cartStore := service.NewCartStore()
	vaultService := service.NewVaultService(methodRepo)
	addressService := service.NewAddressService(profileRepo)
	checkoutService := service.NewCheckoutService(
		cartStore,
		methodRepo, profileRepo, orderLedger,
		historyCache,
		cfg.Checkout.PersistTimeout,
	)
	orderHistoryService := service.NewOrderHistoryService(orderLedger, historyCache)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		cartStore,
		vaultService,
		addressService,
		checkoutService,
		orderHistoryService,
		cfg.Auth.JWTSecret,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
