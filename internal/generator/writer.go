package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// FileNames are the targets WriteFolder creates inside a dataset folder.
type FileNames struct {
	Users   string
	Orders  string
	Catalog string
}

// WriteFolder serializes the dataset into the three source files under dir.
func WriteFolder(dataset Dataset, dir string, names FileNames) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create folder %s: %w", dir, err)
	}

	if err := writeUsersCSV(filepath.Join(dir, names.Users), dataset.Users); err != nil {
		return err
	}
	if err := writeOrdersParquet(filepath.Join(dir, names.Orders), dataset.Orders); err != nil {
		return err
	}
	return writeBooksYAML(filepath.Join(dir, names.Catalog), dataset.Books)
}

func writeUsersCSV(path string, users []UserRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"id", "email", "phone", "address"}); err != nil {
		return fmt.Errorf("write csv header %s: %w", path, err)
	}
	for _, u := range users {
		if err := w.Write([]string{u.ID, u.Email, u.Phone, u.Address}); err != nil {
			return fmt.Errorf("write csv row %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv %s: %w", path, err)
	}
	return nil
}

func writeOrdersParquet(path string, orders []OrderRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := parquet.NewGenericWriter[OrderRow](file)
	if _, err := w.Write(orders); err != nil {
		return fmt.Errorf("write parquet %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close parquet %s: %w", path, err)
	}
	return nil
}

func writeBooksYAML(path string, books []BookRow) error {
	raw, err := yaml.Marshal(books)
	if err != nil {
		return fmt.Errorf("encode yaml for %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
