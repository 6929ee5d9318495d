package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vanshika/salesboard/internal/domain"
)

type stubPipeline struct {
	results map[string]domain.FolderResult
	errs    map[string]error
	calls   []string
}

func (s *stubPipeline) Process(_ context.Context, folder string) (domain.FolderResult, error) {
	s.calls = append(s.calls, folder)
	if err := s.errs[folder]; err != nil {
		return domain.FolderResult{}, err
	}
	return s.results[folder], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func folderResult(folder string) domain.FolderResult {
	return domain.FolderResult{
		Folder:           folder,
		UniqueUsers:      3,
		UniqueAuthors:    2,
		PopularAuthor:    "Alice Zephyr",
		TopDays:          []domain.RevenuePoint{{Day: "2024-03-01", Total: 42}},
		BestBuyerAliases: "U1, U2",
		ChartPNG:         []byte{0x89, 'P', 'N', 'G'},
	}
}

func TestRunRendersOneActiveTab(t *testing.T) {
	out := filepath.Join(t.TempDir(), "index.html")
	pipeline := &stubPipeline{results: map[string]domain.FolderResult{
		"DATA1": folderResult("DATA1"),
	}}
	assembler, err := NewAssembler(pipeline, []string{"DATA1"}, out, testLogger())
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}

	summary, err := assembler.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Rendered != 1 {
		t.Fatalf("expected 1 rendered folder, got %d", summary.Rendered)
	}

	html := readFile(t, out)
	if got := strings.Count(html, `class="content active"`); got != 1 {
		t.Errorf("expected exactly one active tab, got %d", got)
	}
	if !strings.Contains(html, "Alice Zephyr") {
		t.Errorf("document should carry the popular author")
	}
	if !strings.Contains(html, "data:image/png;base64,") {
		t.Errorf("document should embed the chart as a data URI")
	}
	if !strings.Contains(html, "U1, U2") {
		t.Errorf("document should carry the best buyer aliases")
	}
}

func TestRunSkipsFailedFolders(t *testing.T) {
	out := filepath.Join(t.TempDir(), "index.html")
	pipeline := &stubPipeline{
		results: map[string]domain.FolderResult{
			"DATA2": folderResult("DATA2"),
		},
		errs: map[string]error{
			"DATA1": errors.New("missing users.csv"),
		},
	}
	assembler, err := NewAssembler(pipeline, []string{"DATA1", "DATA2"}, out, testLogger())
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}

	summary, err := assembler.Run(context.Background())
	if err != nil {
		t.Fatalf("per-folder failures must not abort the run, got %v", err)
	}
	if summary.Rendered != 1 {
		t.Fatalf("expected 1 rendered folder, got %d", summary.Rendered)
	}
	if len(summary.Skipped) != 1 || summary.Skipped[0] != "DATA1" {
		t.Fatalf("expected DATA1 skipped, got %v", summary.Skipped)
	}
	var runErr *RunError
	if !errors.As(summary.FolderErr, &runErr) {
		t.Fatalf("expected a RunError, got %T", summary.FolderErr)
	}
	if len(pipeline.calls) != 2 {
		t.Fatalf("expected both folders attempted, got %v", pipeline.calls)
	}

	html := readFile(t, out)
	if strings.Contains(html, `id="DATA1"`) {
		t.Errorf("skipped folder must not appear in the document")
	}
	// The surviving folder becomes the first, active tab.
	if got := strings.Count(html, `class="content active"`); got != 1 {
		t.Errorf("expected exactly one active tab, got %d", got)
	}
}

func TestRunWithZeroResultsStillWrites(t *testing.T) {
	out := filepath.Join(t.TempDir(), "index.html")
	pipeline := &stubPipeline{errs: map[string]error{
		"DATA1": errors.New("gone"),
	}}
	assembler, err := NewAssembler(pipeline, []string{"DATA1"}, out, testLogger())
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}

	summary, err := assembler.Run(context.Background())
	if err != nil {
		t.Fatalf("zero successful folders is not a render failure, got %v", err)
	}
	if summary.Rendered != 0 {
		t.Fatalf("expected 0 rendered folders, got %d", summary.Rendered)
	}

	// The shell still renders; there are simply no tabs in it.
	html := readFile(t, out)
	if !strings.Contains(html, "Sales Analytics Dashboard") {
		t.Errorf("document shell should still render")
	}
	if strings.Contains(html, `class="content active"`) {
		t.Errorf("no tab should be active in an empty document")
	}
}

func TestRunWriteFailureIsFatal(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing-dir", "index.html")
	pipeline := &stubPipeline{results: map[string]domain.FolderResult{
		"DATA1": folderResult("DATA1"),
	}}
	assembler, err := NewAssembler(pipeline, []string{"DATA1"}, out, testLogger())
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	if _, err := assembler.Run(context.Background()); err == nil {
		t.Fatalf("expected a fatal error when the output path is unwritable")
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(raw)
}
