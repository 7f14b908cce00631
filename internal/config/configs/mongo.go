package configs

// Mongo holds configuration for connecting to the MongoDB deployment backing
// the dashboard. URI and Database have no defaults on purpose: the application
// cannot serve a single page without the database, so a missing value is a
// fatal startup error rather than a silent fallback.
type Mongo struct {
	// URI is a MongoDB connection string (mongodb:// or mongodb+srv://).
	URI string `env:"URI,notEmpty"`
	// Database is the name of the database holding the businesses, ads,
	// campaigns and registrations collections.
	Database string `env:"DB,notEmpty"`
	// SeedDemo populates the demo tenants and sample data on startup.
	// Only honoured by main.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}
