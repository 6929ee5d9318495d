package dataset

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveOrderRoles(t *testing.T) {
	columns := []string{"order_id", "Order_Date", "Unit_Price", "qty", "book_id", "user_id"}
	roles, err := ResolveOrderRoles(columns)
	if err != nil {
		t.Fatalf("expected roles to resolve, got %v", err)
	}

	want := map[Role]string{
		RoleTimestamp: "Order_Date",
		RolePrice:     "Unit_Price",
		RoleQuantity:  "qty",
		RoleItem:      "book_id",
		RoleUser:      "user_id",
	}
	for role, column := range want {
		if roles[role] != column {
			t.Errorf("role %q resolved to %q, want %q", role, roles[role], column)
		}
	}
}

func TestResolveOrderRolesMissingRole(t *testing.T) {
	_, err := ResolveOrderRoles([]string{"order_date", "qty", "book_id", "user_id"})
	if err == nil {
		t.Fatalf("expected an error for the missing price column")
	}
	if !errors.Is(err, ErrAmbiguousSchema) {
		t.Fatalf("expected ErrAmbiguousSchema, got %v", err)
	}
	if !strings.Contains(err.Error(), string(RolePrice)) {
		t.Fatalf("error should name the missing role, got %q", err.Error())
	}
}

func TestResolveCatalogID(t *testing.T) {
	column, err := ResolveCatalogID([]string{"author", "genre", "id", "title"})
	if err != nil {
		t.Fatalf("expected catalog id to resolve, got %v", err)
	}
	if column != "id" {
		t.Fatalf("expected column \"id\", got %q", column)
	}

	if _, err := ResolveCatalogID([]string{"author", "title"}); !errors.Is(err, ErrAmbiguousSchema) {
		t.Fatalf("expected ErrAmbiguousSchema for a catalog without ids, got %v", err)
	}
}

func TestJoinKey(t *testing.T) {
	if JoinKey("42.0") != JoinKey("42") {
		t.Fatalf("expected \"42.0\" and \"42\" to produce the same join key")
	}
	if got := JoinKey(int64(7)); got != "7" {
		t.Fatalf("JoinKey(7) = %q, want %q", got, "7")
	}
	if got := JoinKey(3.0); got != "3" {
		t.Fatalf("JoinKey(3.0) = %q, want %q", got, "3")
	}
}
