// Package report runs the dataset pipeline over every configured folder and
// renders the static tabbed document.
package report

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"os"

	"github.com/vanshika/salesboard/internal/domain"
)

// Pipeline is the per-folder processing contract consumed by the assembler.
type Pipeline interface {
	Process(ctx context.Context, folder string) (domain.FolderResult, error)
}

// Summary reports what one run produced.
type Summary struct {
	// Rendered counts the folders that made it into the document.
	Rendered int
	// Skipped lists folders whose pipeline failed.
	Skipped []string
	// FolderErr aggregates the per-folder failures, nil when all succeeded.
	FolderErr error
}

// Assembler owns the folder loop and the document rendering.
type Assembler struct {
	pipeline Pipeline
	folders  []string
	outPath  string
	logger   *slog.Logger
	tmpl     *template.Template
}

// NewAssembler builds an Assembler writing to outPath. Folders are processed
// in the order given so output is reproducible.
func NewAssembler(pipeline Pipeline, folders []string, outPath string, logger *slog.Logger) (*Assembler, error) {
	tmpl, err := template.New("report").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Assembler{
		pipeline: pipeline,
		folders:  folders,
		outPath:  outPath,
		logger:   logger,
		tmpl:     tmpl,
	}, nil
}

type tabView struct {
	Folder           string
	UniqueUsers      int
	UniqueAuthors    int
	PopularAuthor    string
	TopDays          []domain.RevenuePoint
	BestBuyerAliases string
	Chart            template.URL
	Active           bool
}

type documentView struct {
	Tabs []tabView
}

// Run processes every folder, skipping the ones that fail, and writes the
// document. The returned error is a global failure (template or write); the
// per-folder failures live in the Summary.
func (a *Assembler) Run(ctx context.Context) (Summary, error) {
	var runErr RunError
	summary := Summary{}
	view := documentView{}

	for _, folder := range a.folders {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		result, err := a.pipeline.Process(ctx, folder)
		if err != nil {
			a.logger.Warn("folder skipped", "folder", folder, "error", err)
			summary.Skipped = append(summary.Skipped, folder)
			runErr.append(fmt.Errorf("folder %s: %w", folder, err))
			continue
		}
		view.Tabs = append(view.Tabs, newTabView(result, len(view.Tabs) == 0))
		summary.Rendered++
	}
	summary.FolderErr = runErr.asError()

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, view); err != nil {
		return summary, fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(a.outPath, buf.Bytes(), 0o644); err != nil {
		return summary, fmt.Errorf("write report %s: %w", a.outPath, err)
	}

	a.logger.Info("report written", "path", a.outPath, "tabs", summary.Rendered, "skipped", len(summary.Skipped))
	return summary, nil
}

// newTabView prepares a folder result for templating. The chart becomes a
// typed data URI so html/template does not reject the inline image.
func newTabView(result domain.FolderResult, active bool) tabView {
	view := tabView{
		Folder:           result.Folder,
		UniqueUsers:      result.UniqueUsers,
		UniqueAuthors:    result.UniqueAuthors,
		PopularAuthor:    result.PopularAuthor,
		TopDays:          result.TopDays,
		BestBuyerAliases: result.BestBuyerAliases,
		Active:           active,
	}
	if len(result.ChartPNG) > 0 {
		view.Chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(result.ChartPNG))
	}
	return view
}
