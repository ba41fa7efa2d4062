package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 10
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// upper bound for a random seed, matching the web client's draw
	MaxRandomSeed = 1_000_000_000

	GenerateConcurrency = 4
)

const (
	SleeperProvider = "sleeper"
	UnknownOwner    = "Unknown"
)
