package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAmbiguousSchema reports that no column of a source table could fill a
// required semantic role.
var ErrAmbiguousSchema = errors.New("ambiguous schema")

// Role identifies a semantic column slot in a source table.
type Role string

// Roles required by the order and catalog tables.
const (
	RoleTimestamp Role = "timestamp"
	RolePrice     Role = "price"
	RoleQuantity  Role = "quantity"
	RoleItem      Role = "item"
	RoleUser      Role = "user"
	RoleCatalogID Role = "catalog id"
)

// roleMatcher binds a role to the column-name substrings that fill it. The
// list is ordered and evaluated once at load time; the first column whose
// lowercased name contains a keyword wins.
type roleMatcher struct {
	role     Role
	keywords []string
}

var orderRoleMatchers = []roleMatcher{
	{RoleTimestamp, []string{"date", "timestamp"}},
	{RolePrice, []string{"price"}},
	{RoleQuantity, []string{"qty", "quantity"}},
	{RoleItem, []string{"item", "book"}},
	{RoleUser, []string{"user"}},
}

var catalogRoleMatchers = []roleMatcher{
	{RoleCatalogID, []string{"id"}},
}

// ResolveOrderRoles maps each required order role to a column name, or fails
// with ErrAmbiguousSchema naming the first role that has no column.
func ResolveOrderRoles(columns []string) (map[Role]string, error) {
	return resolveRoles(columns, orderRoleMatchers)
}

// ResolveCatalogID locates the catalog's item identifier column.
func ResolveCatalogID(columns []string) (string, error) {
	roles, err := resolveRoles(columns, catalogRoleMatchers)
	if err != nil {
		return "", err
	}
	return roles[RoleCatalogID], nil
}

func resolveRoles(columns []string, matchers []roleMatcher) (map[Role]string, error) {
	lowered := make([]string, len(columns))
	for i, col := range columns {
		lowered[i] = strings.ToLower(col)
	}

	resolved := make(map[Role]string, len(matchers))
	for _, m := range matchers {
		column, ok := matchColumn(columns, lowered, m.keywords)
		if !ok {
			return nil, fmt.Errorf("%w: no column matches role %q", ErrAmbiguousSchema, m.role)
		}
		resolved[m.role] = column
	}
	return resolved, nil
}

func matchColumn(columns, lowered []string, keywords []string) (string, bool) {
	for i, col := range lowered {
		for _, keyword := range keywords {
			if strings.Contains(col, keyword) {
				return columns[i], true
			}
		}
	}
	return "", false
}
