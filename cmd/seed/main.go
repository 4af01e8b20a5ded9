package main

import (
	"log"
	"os"

	"lobitos-storefront/internal/config"
	"lobitos-storefront/internal/storage"
	catalogstore "lobitos-storefront/internal/store/catalog"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store, err := storage.Open(cfg.DataPath)
	if err != nil {
		logger.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	// Products seeds the built-in set when the catalog blob is absent and is
	// a no-op otherwise, so rerunning is safe.
	products, err := catalogstore.New(store, logger).Products()
	if err != nil {
		logger.Fatalf("seed catalog: %v", err)
	}

	logger.Printf("catalog ready with %d products", len(products))
}
