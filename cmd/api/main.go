package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"lobitos-storefront/internal/config"
	"lobitos-storefront/internal/httpserver"
	"lobitos-storefront/internal/storage"
	cartstore "lobitos-storefront/internal/store/cart"
	catalogstore "lobitos-storefront/internal/store/catalog"
	i18nstore "lobitos-storefront/internal/store/i18n"
	sessionstore "lobitos-storefront/internal/store/session"
	subscriptionstore "lobitos-storefront/internal/store/subscription"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store, err := storage.Open(cfg.DataPath)
	if err != nil {
		logger.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	catalog := catalogstore.New(store, logger)
	cart := cartstore.New(store, logger)
	session := sessionstore.New(store, nil, logger)
	i18n := i18nstore.New(store, logger, os.Getenv("LANG"))
	subs := subscriptionstore.New(store, logger)
	notifier := subscriptionstore.NewNotifier(cfg.SubscribeEndpoint, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, store, httpserver.Deps{
		Catalog:       catalog,
		Cart:          cart,
		Session:       session,
		I18n:          i18n,
		Subs:          subs,
		Notifier:      notifier,
		WhatsAppPhone: cfg.WhatsAppPhone,
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
