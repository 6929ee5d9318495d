package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// LoadOrdersParquet reads the order table as generic rows. Only flat schemas
// are supported; leaf values decode to Go strings, numbers, and bools, with
// nulls kept as nil cells.
func LoadOrdersParquet(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return Table{}, fmt.Errorf("stat %s: %w", path, err)
	}
	pf, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return Table{}, fmt.Errorf("read parquet %s: %w", path, err)
	}

	fields := pf.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}

	table := Table{Columns: columns}
	for _, group := range pf.RowGroups() {
		rows := group.Rows()
		buf := make([]parquet.Row, 64)
		for {
			n, readErr := rows.ReadRows(buf)
			for _, row := range buf[:n] {
				rec := make(map[string]any, len(columns))
				for _, value := range row {
					col := value.Column()
					if col < 0 || col >= len(columns) {
						continue
					}
					rec[columns[col]] = decodeValue(value)
				}
				table.Rows = append(table.Rows, rec)
			}
			if readErr != nil {
				if errors.Is(readErr, io.EOF) {
					break
				}
				rows.Close()
				return Table{}, fmt.Errorf("read parquet rows %s: %w", path, readErr)
			}
		}
		if err := rows.Close(); err != nil {
			return Table{}, fmt.Errorf("close parquet rows %s: %w", path, err)
		}
	}
	return table, nil
}

func decodeValue(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int64(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}
