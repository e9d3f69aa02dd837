package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"casecraft/internal/config"
	"casecraft/internal/db"
	"casecraft/internal/gateway"
	"casecraft/internal/httpserver"
	addrrepo "casecraft/internal/repository/address"
	configrepo "casecraft/internal/repository/configuration"
	orderrepo "casecraft/internal/repository/order"
	addrsvc "casecraft/internal/service/address"
	checkoutsvc "casecraft/internal/service/checkout"
	webhooksvc "casecraft/internal/service/webhook"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	addressRepo := addrrepo.NewPostgres(dbpool)
	configurationRepo := configrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	// The gateway client is built once here and injected; nothing downstream
	// constructs its own.
	gatewayClient := gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, logger)

	addressService := addrsvc.New(addressRepo)
	checkoutService := checkoutsvc.New(configurationRepo, orderRepo, gatewayClient, logger)
	webhookService := webhooksvc.New(orderRepo, cfg.RazorpayWebhookSecret, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AddressSvc:  addressService,
		CheckoutSvc: checkoutService,
		WebhookSvc:  webhookService,
		ConfigRepo:  configurationRepo,
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
