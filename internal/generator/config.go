package generator

// Config drives the synthetic dataset generator.
type Config struct {
	NumUsers            int
	NumOrders           int
	NumBooks            int
	SharedContactChance float64
	GarbledDateChance   float64
	BrokenDateChance    float64
	EuroPriceChance     float64
	FloatIDChance       float64
	Seed                int64
}

// DefaultConfig returns baseline settings that produce datasets with every
// quirk the pipeline has to repair: shared contacts, meridiem-garbled and
// unsalvageable timestamps, Euro prices, and float-formatted item IDs.
func DefaultConfig() Config {
	return Config{
		NumUsers:            200,
		NumOrders:           2000,
		NumBooks:            40,
		SharedContactChance: 0.2,
		GarbledDateChance:   0.15,
		BrokenDateChance:    0.02,
		EuroPriceChance:     0.3,
		FloatIDChance:       0.25,
		Seed:                42,
	}
}
