package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"lobitos-storefront/internal/config"
	"lobitos-storefront/internal/importer"
	"lobitos-storefront/internal/storage"
	catalogstore "lobitos-storefront/internal/store/catalog"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to product CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store, err := storage.Open(cfg.DataPath)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, catalogstore.New(store, logger))

	start := time.Now()
	count, err := imp.Run()
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
