package domain

// RevenuePoint is one day of aggregated revenue.
type RevenuePoint struct {
	Day   string // YYYY-MM-DD
	Total float64
}

// FolderResult is the per-folder report record. The pipeline builds it once;
// the assembler only reads it.
type FolderResult struct {
	Folder           string
	UniqueUsers      int
	UniqueAuthors    int
	PopularAuthor    string
	TopDays          []RevenuePoint
	BestBuyerAliases string
	ChartPNG         []byte
}
