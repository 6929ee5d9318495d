package dataset

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/vanshika/salesboard/internal/clean"
	"github.com/vanshika/salesboard/internal/domain"
	"github.com/vanshika/salesboard/internal/identity"
)

// topDayCount is how many revenue days make the report's "top days" list.
const topDayCount = 5

// unknownAuthor is reported when the catalog carries no usable author data.
const unknownAuthor = "Unknown"

// Source locates the three files of every dataset folder.
type Source struct {
	Root        string
	UsersFile   string
	OrdersFile  string
	CatalogFile string
}

// ChartRenderer rasterizes a revenue series to an embeddable image.
type ChartRenderer interface {
	Render(points []domain.RevenuePoint, title string) ([]byte, error)
}

// Pipeline turns one dataset folder into a FolderResult.
type Pipeline struct {
	source Source
	charts ChartRenderer
	logger *slog.Logger
}

// New constructs a Pipeline over the provided source layout.
func New(source Source, charts ChartRenderer, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		source: source,
		charts: charts,
		logger: logger,
	}
}

// Process loads, cleans, reconciles, and aggregates one folder. Load and
// schema failures are fatal for the folder; rows with unparseable timestamps
// are dropped individually.
func (p *Pipeline) Process(ctx context.Context, folder string) (domain.FolderResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.FolderResult{}, err
	}

	dir := filepath.Join(p.source.Root, folder)
	users, err := LoadUsersCSV(filepath.Join(dir, p.source.UsersFile))
	if err != nil {
		return domain.FolderResult{}, err
	}
	orderTable, err := LoadOrdersParquet(filepath.Join(dir, p.source.OrdersFile))
	if err != nil {
		return domain.FolderResult{}, err
	}
	catalog, err := LoadCatalogYAML(filepath.Join(dir, p.source.CatalogFile))
	if err != nil {
		return domain.FolderResult{}, err
	}

	roles, err := ResolveOrderRoles(orderTable.Columns)
	if err != nil {
		return domain.FolderResult{}, err
	}
	catalogIDColumn, err := ResolveCatalogID(catalog.Columns)
	if err != nil {
		return domain.FolderResult{}, err
	}

	orders, dropped := p.cleanOrders(orderTable, roles)
	if dropped > 0 {
		p.logger.Debug("dropped orders with unparseable timestamps", "folder", folder, "count", dropped)
	}

	groups := identity.Reconcile(users)
	for i := range orders {
		orders[i].CanonicalUserID = groups.Canonical(orders[i].UserID)
	}

	hasAuthor := joinCatalog(orders, catalog, catalogIDColumn)

	revenue := dailyRevenue(orders)
	topDays := revenue
	if len(topDays) > topDayCount {
		topDays = topDays[:topDayCount]
	}

	uniqueAuthors := 0
	popularAuthor := unknownAuthor
	if hasAuthor {
		uniqueAuthors = countAuthors(catalog)
		if author, ok := mostPopularAuthor(orders); ok {
			popularAuthor = author
		}
	}

	bestBuyerAliases := ""
	if buyer, ok := bestBuyer(orders); ok {
		bestBuyerAliases = joinIDs(groups.Aliases(buyer))
	}

	result := domain.FolderResult{
		Folder:           folder,
		UniqueUsers:      groups.Count(),
		UniqueAuthors:    uniqueAuthors,
		PopularAuthor:    popularAuthor,
		TopDays:          topDays,
		BestBuyerAliases: bestBuyerAliases,
	}

	if err := ctx.Err(); err != nil {
		return domain.FolderResult{}, err
	}
	series := append([]domain.RevenuePoint(nil), revenue...)
	sort.Slice(series, func(i, j int) bool { return series[i].Day < series[j].Day })
	png, err := p.charts.Render(series, "Revenue Trend: "+folder)
	if err != nil {
		// A broken chart degrades to the report's fallback text rather than
		// losing the folder's numbers.
		p.logger.Warn("chart rendering failed", "folder", folder, "error", err)
	} else {
		result.ChartPNG = png
	}

	return result, nil
}

// cleanOrders applies the value cleaners and derives timestamps, day buckets,
// and paid amounts. Rows whose repaired timestamp still fails to parse are
// dropped and counted.
func (p *Pipeline) cleanOrders(table Table, roles map[Role]string) ([]domain.Order, int) {
	orders := make([]domain.Order, 0, len(table.Rows))
	dropped := 0
	for _, row := range table.Rows {
		ts, ok := parseTimestamp(clean.DateString(row[roles[RoleTimestamp]]))
		if !ok {
			dropped++
			continue
		}
		order := domain.Order{
			ItemID:    JoinKey(row[roles[RoleItem]]),
			UserID:    clean.Stringify(row[roles[RoleUser]]),
			Quantity:  clean.Number(row[roles[RoleQuantity]]),
			Timestamp: ts,
			Day:       ts.Format(time.DateOnly),
		}
		order.Paid = order.Quantity * clean.Price(row[roles[RolePrice]])
		orders = append(orders, order)
	}
	return orders, dropped
}

// parseTimestamp parses a repaired timestamp string, normalizing to UTC.
func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	ts, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return ts.UTC(), true
}

// joinCatalog left-joins orders to catalog rows on the normalized item key
// and reports whether the catalog exposes an author column. Orders without a
// catalog match keep an empty author.
func joinCatalog(orders []domain.Order, catalog Table, idColumn string) bool {
	hasAuthor := false
	for _, col := range catalog.Columns {
		if col == "author" {
			hasAuthor = true
			break
		}
	}

	authors := make(map[string]string, len(catalog.Rows))
	for _, row := range catalog.Rows {
		key := JoinKey(row[idColumn])
		if _, ok := authors[key]; ok {
			continue // first catalog row wins on duplicate IDs
		}
		if hasAuthor {
			authors[key] = clean.Stringify(row["author"])
		} else {
			authors[key] = ""
		}
	}

	for i := range orders {
		orders[i].Author = authors[orders[i].ItemID]
	}
	return hasAuthor
}

// dailyRevenue aggregates paid amounts per day bucket, sorted by revenue
// descending with equal days ordered by date ascending.
func dailyRevenue(orders []domain.Order) []domain.RevenuePoint {
	totals := make(map[string]float64)
	for _, o := range orders {
		totals[o.Day] += o.Paid
	}
	points := make([]domain.RevenuePoint, 0, len(totals))
	for day, total := range totals {
		points = append(points, domain.RevenuePoint{Day: day, Total: total})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Total != points[j].Total {
			return points[i].Total > points[j].Total
		}
		return points[i].Day < points[j].Day
	})
	return points
}

// countAuthors counts distinct usable author values in the catalog.
func countAuthors(catalog Table) int {
	distinct := make(map[string]struct{})
	for _, row := range catalog.Rows {
		if author, ok := usableAuthor(clean.Stringify(row["author"])); ok {
			distinct[author] = struct{}{}
		}
	}
	return len(distinct)
}

// mostPopularAuthor sums ordered quantities per author over the joined rows.
// Ties resolve to the lexicographically smallest author name.
func mostPopularAuthor(orders []domain.Order) (string, bool) {
	quantities := make(map[string]float64)
	for _, o := range orders {
		author, ok := usableAuthor(o.Author)
		if !ok {
			continue
		}
		quantities[author] += o.Quantity
	}
	return maxKey(quantities)
}

// bestBuyer sums paid amounts per canonical user ID. Ties resolve to the
// lexicographically smallest ID.
func bestBuyer(orders []domain.Order) (string, bool) {
	totals := make(map[string]float64)
	for _, o := range orders {
		totals[o.CanonicalUserID] += o.Paid
	}
	return maxKey(totals)
}

func maxKey(totals map[string]float64) (string, bool) {
	best := ""
	bestTotal := 0.0
	found := false
	for key, total := range totals {
		if !found || total > bestTotal || (total == bestTotal && key < best) {
			best = key
			bestTotal = total
			found = true
		}
	}
	return best, found
}

// usableAuthor trims an author cell and rejects missing markers.
func usableAuthor(author string) (string, bool) {
	author = strings.TrimSpace(author)
	if author == "" || author == "nan" {
		return "", false
	}
	return author, true
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
