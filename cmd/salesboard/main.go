package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/vanshika/salesboard/internal/chart"
	"github.com/vanshika/salesboard/internal/config"
	"github.com/vanshika/salesboard/internal/dataset"
	"github.com/vanshika/salesboard/internal/logging"
	"github.com/vanshika/salesboard/internal/report"
)

func main() {
	var (
		dataRoot = flag.String("data-root", "", "Directory containing the dataset folders (overrides DATA_ROOT)")
		folders  = flag.String("folders", "", "Comma-separated folder list (overrides DATA_FOLDERS)")
		output   = flag.String("out", "", "Report output path (overrides REPORT_OUTPUT)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataRoot != "" {
		cfg.Data.Root = *dataRoot
	}
	if *folders != "" {
		cfg.Data.Folders = splitFolders(*folders)
	}
	if *output != "" {
		cfg.Report.OutputPath = *output
	}

	logger := logging.New(cfg.Logging, os.Stdout).With("component", "salesboard", "run_id", uuid.NewString())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pipeline := dataset.New(dataset.Source{
		Root:        cfg.Data.Root,
		UsersFile:   cfg.Data.UsersFile,
		OrdersFile:  cfg.Data.OrdersFile,
		CatalogFile: cfg.Data.CatalogFile,
	}, chart.New(cfg.Chart.Width, cfg.Chart.Height), logger)

	assembler, err := report.NewAssembler(pipeline, cfg.Data.Folders, cfg.Report.OutputPath, logger)
	if err != nil {
		logger.Error("assembler setup failed", "error", err)
		os.Exit(1)
	}

	summary, err := assembler.Run(ctx)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
	if summary.FolderErr != nil {
		var runErr *report.RunError
		if errors.As(summary.FolderErr, &runErr) {
			logger.Warn("some folders were skipped", "count", len(runErr.Errors), "error", runErr)
		}
	}
	if summary.Rendered == 0 {
		logger.Error("no folder produced a result", "folders", len(cfg.Data.Folders))
		os.Exit(1)
	}
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
