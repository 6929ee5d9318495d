package generator

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestGenerateDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumUsers = 25
	cfg.NumOrders = 100
	cfg.NumBooks = 10
	cfg.Seed = 7

	first, err := New(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := New(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical datasets for the same seed")
	}
}

func TestGenerateSharesContacts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumUsers = 200
	cfg.NumOrders = 10
	cfg.NumBooks = 5
	cfg.SharedContactChance = 0.5
	cfg.Seed = 11

	dataset, err := New(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	emails := make(map[string]int)
	for _, u := range dataset.Users {
		emails[u.Email]++
	}
	shared := 0
	for _, count := range emails {
		if count > 1 {
			shared++
		}
	}
	if shared == 0 {
		t.Fatalf("expected at least one shared email with a 0.5 share chance over 200 users")
	}
}

func TestGenerateProducesDirtyValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumUsers = 20
	cfg.NumOrders = 500
	cfg.NumBooks = 10
	cfg.Seed = 3

	dataset, err := New(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var euro, garbled, broken, floatID bool
	for _, o := range dataset.Orders {
		if strings.Contains(o.UnitPrice, "€") {
			euro = true
		}
		if strings.Contains(o.OrderDate, ".M.") {
			garbled = true
		}
		if o.OrderDate == "pending confirmation" {
			broken = true
		}
		if strings.HasSuffix(o.BookID, ".0") {
			floatID = true
		}
	}
	if !euro {
		t.Errorf("expected some Euro-signed prices")
	}
	if !garbled {
		t.Errorf("expected some meridiem-garbled dates")
	}
	if !broken {
		t.Errorf("expected some unparseable dates")
	}
	if !floatID {
		t.Errorf("expected some float-formatted book IDs")
	}
}

func TestGenerateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(DefaultConfig()).Generate(ctx); err == nil {
		t.Fatalf("expected a cancellation error")
	}
}
