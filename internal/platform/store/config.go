package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string
	Version string

	// Driver selects the SQL backend, empty means sqlite
	Driver Dialect

	PG     PGConfig
	SQLite SQLiteConfig
	CH     CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the ping loop, 0 means 20
	ConnectRetries int
	// PingTimeout bounds each ping, 0 means 3s
	PingTimeout time.Duration
}

// SQLiteConfig configures the embedded database file
type SQLiteConfig struct {
	Path        string
	BusyTimeout time.Duration
	LogSQL      bool
	SlowQueryMs int
}

// CHConfig configures the optional clickhouse sink
type CHConfig struct {
	Enabled bool
	URL     string
}
