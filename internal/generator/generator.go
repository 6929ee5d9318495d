// Package generator produces synthetic per-folder sales datasets so the
// report pipeline can be exercised end to end without real exports.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// UserRow is one line of users.csv.
type UserRow struct {
	ID      string
	Email   string
	Phone   string
	Address string
}

// OrderRow is one record of orders.parquet. Column names are chosen to
// satisfy the pipeline's role heuristics; prices and dates are strings on
// purpose, mirroring the dirty exports the cleaners exist for.
type OrderRow struct {
	OrderID   string `parquet:"order_id"`
	BookID    string `parquet:"book_id"`
	UserID    string `parquet:"user_id"`
	Qty       int64  `parquet:"qty"`
	UnitPrice string `parquet:"unit_price"`
	OrderDate string `parquet:"order_date"`
}

// BookRow is one catalog entry of books.yaml.
type BookRow struct {
	ID     int    `yaml:"id"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Genre  string `yaml:"genre"`
}

// Dataset contains one folder's generated tables.
type Dataset struct {
	Users  []UserRow
	Orders []OrderRow
	Books  []BookRow
}

// Generator produces seeded synthetic sales data.
type Generator struct {
	cfg   Config
	rand  *rand.Rand
	names nameFragments
	pools contactPools
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	defaults := DefaultConfig()
	if cfg.NumUsers <= 0 {
		cfg.NumUsers = defaults.NumUsers
	}
	if cfg.NumOrders <= 0 {
		cfg.NumOrders = defaults.NumOrders
	}
	if cfg.NumBooks <= 0 {
		cfg.NumBooks = defaults.NumBooks
	}
	if cfg.SharedContactChance <= 0 {
		cfg.SharedContactChance = defaults.SharedContactChance
	}
	if cfg.GarbledDateChance <= 0 {
		cfg.GarbledDateChance = defaults.GarbledDateChance
	}
	if cfg.BrokenDateChance <= 0 {
		cfg.BrokenDateChance = defaults.BrokenDateChance
	}
	if cfg.EuroPriceChance <= 0 {
		cfg.EuroPriceChance = defaults.EuroPriceChance
	}
	if cfg.FloatIDChance <= 0 {
		cfg.FloatIDChance = defaults.FloatIDChance
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(cfg.Seed)),
		names: defaultNameFragments(),
	}
}

// Generate synthesises one folder's users, orders, and catalog. It respects
// context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	users := make([]UserRow, g.cfg.NumUsers)
	for i := 0; i < g.cfg.NumUsers; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		users[i] = UserRow{
			ID:      fmt.Sprintf("USR-%05d", i+1),
			Email:   g.maybeShared(&g.pools.emails, g.randomEmail),
			Phone:   g.maybeShared(&g.pools.phones, g.randomPhone),
			Address: g.maybeShared(&g.pools.addresses, g.randomAddress),
		}
	}

	books := make([]BookRow, g.cfg.NumBooks)
	for i := 0; i < g.cfg.NumBooks; i++ {
		books[i] = BookRow{
			ID:     i + 1,
			Title:  g.randomTitle(),
			Author: g.randomAuthor(),
			Genre:  g.pick(g.names.genres),
		}
	}

	now := time.Now().UTC().Truncate(time.Hour)
	orders := make([]OrderRow, g.cfg.NumOrders)
	for i := 0; i < g.cfg.NumOrders; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		bookID := strconv.Itoa(g.rand.Intn(g.cfg.NumBooks) + 1)
		if g.rand.Float64() < g.cfg.FloatIDChance {
			bookID += ".0"
		}
		orders[i] = OrderRow{
			OrderID:   fmt.Sprintf("ORD-%07d", i+1),
			BookID:    bookID,
			UserID:    users[g.rand.Intn(len(users))].ID,
			Qty:       int64(g.rand.Intn(5) + 1),
			UnitPrice: g.randomPrice(),
			OrderDate: g.randomOrderDate(now),
		}
	}

	return Dataset{Users: users, Orders: orders, Books: books}, nil
}

type contactPools struct {
	emails    []string
	phones    []string
	addresses []string
}

// maybeShared reuses a pooled value with the configured chance so a fraction
// of users collide on contact data and exercise reconciliation.
func (g *Generator) maybeShared(pool *[]string, newValue func() string) string {
	if len(*pool) > 0 && g.rand.Float64() < g.cfg.SharedContactChance {
		return (*pool)[g.rand.Intn(len(*pool))]
	}
	val := newValue()
	*pool = append(*pool, val)
	return val
}

func (g *Generator) pick(options []string) string {
	return options[g.rand.Intn(len(options))]
}

func (g *Generator) randomEmail() string {
	return fmt.Sprintf("%s.%s@%s", g.pick(g.names.first), g.pick(g.names.last), g.pick(g.names.domains))
}

func (g *Generator) randomPhone() string {
	return fmt.Sprintf("+1 (%03d) %03d-%04d", g.rand.Intn(900)+100, g.rand.Intn(900)+100, g.rand.Intn(10000))
}

func (g *Generator) randomAddress() string {
	return fmt.Sprintf("%d %s %s, %s", g.rand.Intn(9999)+1, g.pick(g.names.streetNames),
		g.pick(g.names.streetSuffix), g.pick(g.names.cities))
}

func (g *Generator) randomAuthor() string {
	return fmt.Sprintf("%s %s", g.pick(g.names.first), g.pick(g.names.last))
}

func (g *Generator) randomTitle() string {
	return fmt.Sprintf("The %s %s", g.pick(g.names.adjectives), g.pick(g.names.nouns))
}

// randomPrice mixes clean decimals with Euro-signed and dollar-signed forms.
func (g *Generator) randomPrice() string {
	amount := float64(g.rand.Intn(4000)+500) / 100
	if g.rand.Float64() < g.cfg.EuroPriceChance {
		return fmt.Sprintf("€%.2f", amount)
	}
	if g.rand.Float64() < 0.5 {
		return fmt.Sprintf("$%.2f", amount)
	}
	return fmt.Sprintf("%.2f", amount)
}

// randomOrderDate emits mostly well-formed timestamps, a slice of
// meridiem-garbled ones the date cleaner can repair, and a few that stay
// unparseable so row dropping is exercised.
func (g *Generator) randomOrderDate(now time.Time) string {
	ts := now.Add(-time.Duration(g.rand.Intn(90*24)) * time.Hour)
	roll := g.rand.Float64()
	if roll < g.cfg.BrokenDateChance {
		return "pending confirmation"
	}
	if roll < g.cfg.BrokenDateChance+g.cfg.GarbledDateChance {
		hour := ts.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		meridiem := "A.M."
		if ts.Hour() >= 12 {
			meridiem = "P.M."
		}
		return fmt.Sprintf("%s %d:%02d %s", ts.Format("01/02/2006"), hour, ts.Minute(), meridiem)
	}
	return ts.Format("2006-01-02 15:04:05")
}

type nameFragments struct {
	first        []string
	last         []string
	domains      []string
	streetNames  []string
	streetSuffix []string
	cities       []string
	adjectives   []string
	nouns        []string
	genres       []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		first:        []string{"Jane", "John", "Alex", "Priya", "Liu", "Maria", "Omar", "Sofia", "Noah", "Emma", "Lucas", "Mia"},
		last:         []string{"Doe", "Smith", "Chen", "Patel", "Garcia", "Khan", "Kim", "Ivanov", "Nguyen", "Silva"},
		domains:      []string{"example.com", "mail.com", "books.io", "readers.net"},
		streetNames:  []string{"Market", "Mission", "Broadway", "Fifth", "Sunset", "Park", "Cedar", "Oak"},
		streetSuffix: []string{"St", "Ave", "Blvd", "Ln", "Rd"},
		cities:       []string{"San Francisco", "New York", "Seattle", "Austin", "Chicago", "Miami"},
		adjectives:   []string{"Silent", "Golden", "Last", "Hidden", "Burning", "Distant", "Glass"},
		nouns:        []string{"Garden", "River", "Library", "Signal", "Harbor", "Mountain", "Archive"},
		genres:       []string{"Fiction", "Mystery", "Sci-Fi", "History", "Poetry"},
	}
}
