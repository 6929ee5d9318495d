package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/vanshika/salesboard/internal/config"
	"github.com/vanshika/salesboard/internal/generator"
	"github.com/vanshika/salesboard/internal/logging"
)

func main() {
	var (
		outDir  = flag.String("out", ".", "Directory to create the dataset folders in")
		folders = flag.String("folders", "DATA1,DATA2,DATA3", "Comma-separated folder names to generate")
		users   = flag.Int("users", 0, "Users per folder (0 uses the default)")
		orders  = flag.Int("orders", 0, "Orders per folder (0 uses the default)")
		books   = flag.Int("books", 0, "Catalog entries per folder (0 uses the default)")
		seed    = flag.Int64("seed", 0, "Random seed (0 uses the current time)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging, os.Stdout).With("component", "datagen")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	names := generator.FileNames{
		Users:   cfg.Data.UsersFile,
		Orders:  cfg.Data.OrdersFile,
		Catalog: cfg.Data.CatalogFile,
	}

	start := time.Now()
	for i, folder := range splitFolders(*folders) {
		genCfg := generator.DefaultConfig()
		genCfg.NumUsers = *users
		genCfg.NumOrders = *orders
		genCfg.NumBooks = *books
		if *seed != 0 {
			// Offset per folder so folders differ while staying reproducible.
			genCfg.Seed = *seed + int64(i)
		} else {
			genCfg.Seed = 0 // generator falls back to the clock
		}

		dataset, err := generator.New(genCfg).Generate(ctx)
		if err != nil {
			logger.Error("generation failed", "folder", folder, "error", err)
			os.Exit(1)
		}

		dir := filepath.Join(*outDir, folder)
		if err := generator.WriteFolder(dataset, dir, names); err != nil {
			logger.Error("writing folder failed", "folder", folder, "error", err)
			os.Exit(1)
		}
		logger.Info("folder written", "folder", dir,
			"users", len(dataset.Users), "orders", len(dataset.Orders), "books", len(dataset.Books))
	}

	logger.Info("generation complete", "duration", time.Since(start).String())
}

func splitFolders(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
