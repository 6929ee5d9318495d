package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/vanshika/salesboard/internal/domain"
)

// LoadUsersCSV reads the user table. The header must carry the id, email,
// phone, and address columns (matched case-insensitively); anything else in
// the file is ignored.
func LoadUsersCSV(path string) ([]domain.UserRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv %s: missing header row", path)
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	required := []string{"id", "email", "phone", "address"}
	index := make(map[string]int, len(required))
	for _, name := range required {
		i, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("read csv %s: missing column %q", path, name)
		}
		index[name] = i
	}

	users := make([]domain.UserRecord, 0, len(records)-1)
	for _, row := range records[1:] {
		users = append(users, domain.UserRecord{
			ID:      strings.TrimSpace(row[index["id"]]),
			Email:   row[index["email"]],
			Phone:   row[index["phone"]],
			Address: row[index["address"]],
		})
	}
	return users, nil
}
