package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultBatchSize    = 100_000
	defaultMinBatchSize = 100
)

// Config represents the complete configuration for the RangeIndexor.
type Config struct {
	// Chain contains the chain RPC and head tracking configuration
	Chain ChainConfig `yaml:"chain" json:"chain" toml:"chain"`

	// Database contains the storage configuration shared by the range store and strategies
	Database DatabaseConfig `yaml:"database" json:"database" toml:"database"`

	// Maintenance contains optional database maintenance settings (sqlite only)
	Maintenance *MaintenanceConfig `yaml:"maintenance,omitempty" json:"maintenance,omitempty" toml:"maintenance,omitempty"`

	// Runner contains the strategy runner batching configuration
	Runner RunnerConfig `yaml:"runner" json:"runner" toml:"runner"`

	// Strategies contains the configuration for all indexing strategies
	Strategies []StrategyConfig `yaml:"strategies" json:"strategies" toml:"strategies"`

	// API contains the control API configuration
	API *APIConfig `yaml:"api,omitempty" json:"api,omitempty" toml:"api,omitempty"`

	// Logging contains logging configuration
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty" toml:"logging,omitempty"`

	// Metrics contains Prometheus metrics configuration
	Metrics *MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty" toml:"metrics,omitempty"`
}

// ChainConfig represents the configuration of the chain the strategies index.
type ChainConfig struct {
	// RPCURL is the Ethereum RPC endpoint URL
	RPCURL string `yaml:"rpc_url" json:"rpc_url" toml:"rpc_url"`

	// Finality specifies the finality mode: "finalized", "safe", or "latest"
	Finality string `yaml:"finality" json:"finality" toml:"finality"`

	// Confirmations is the number of blocks behind head considered final.
	// Only used when Finality is set to "latest"
	Confirmations uint64 `yaml:"confirmations" json:"confirmations" toml:"confirmations"`

	// PollInterval is how often the chain head is refreshed
	PollInterval common.Duration `yaml:"poll_interval" json:"poll_interval" toml:"poll_interval"`

	// HeadTimeout bounds a single head lookup; after it the head is reported stale
	HeadTimeout common.Duration `yaml:"head_timeout" json:"head_timeout" toml:"head_timeout"`

	// RateLimit caps RPC requests per second (0 = unlimited)
	RateLimit int `yaml:"rate_limit" json:"rate_limit" toml:"rate_limit"`

	// Retry contains RPC retry configuration with exponential backoff
	Retry *RetryConfig `yaml:"retry,omitempty" json:"retry,omitempty" toml:"retry,omitempty"`
}

// ApplyDefaults sets default values for optional chain configuration fields.
func (c *ChainConfig) ApplyDefaults() {
	if c.Finality == "" {
		c.Finality = "latest"
	}
	if c.PollInterval.Duration == 0 {
		c.PollInterval = common.NewDuration(5 * time.Second) //nolint:mnd
	}
	if c.HeadTimeout.Duration == 0 {
		c.HeadTimeout = common.NewDuration(10 * time.Second) //nolint:mnd
	}
	if c.Retry != nil {
		c.Retry.ApplyDefaults()
	}
}

// Validate checks if the chain configuration is valid.
func (c *ChainConfig) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("rpc_url is required")
	}
	if c.Finality != "finalized" && c.Finality != "safe" && c.Finality != "latest" {
		return fmt.Errorf("finality must be one of: 'finalized', 'safe', or 'latest'")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit cannot be negative")
	}
	return nil
}

// RetryConfig represents retry configuration with exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial request)
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts" toml:"max_attempts"`

	// InitialBackoff is the initial backoff duration before first retry
	InitialBackoff common.Duration `yaml:"initial_backoff" json:"initial_backoff" toml:"initial_backoff"`

	// MaxBackoff is the maximum backoff duration
	MaxBackoff common.Duration `yaml:"max_backoff" json:"max_backoff" toml:"max_backoff"`

	// BackoffMultiplier is the multiplier for exponential backoff
	BackoffMultiplier float64 `yaml:"backoff_multiplier" json:"backoff_multiplier" toml:"backoff_multiplier"`
}

// ApplyDefaults sets default values for retry configuration.
func (r *RetryConfig) ApplyDefaults() {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 5
	}
	if r.InitialBackoff.Duration == 0 {
		r.InitialBackoff = common.NewDuration(500 * time.Millisecond) //nolint:mnd
	}
	if r.MaxBackoff.Duration == 0 {
		r.MaxBackoff = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	if r.BackoffMultiplier == 0 {
		r.BackoffMultiplier = 2.0
	}
}

// DatabaseConfig represents database configuration.
type DatabaseConfig struct {
	// Driver selects the backend: "sqlite" (default) or "postgres"
	Driver string `yaml:"driver" json:"driver" toml:"driver"`

	// Path is the file path to the SQLite database
	Path string `yaml:"path" json:"path" toml:"path"`

	// DSN is the PostgreSQL connection string
	DSN string `yaml:"dsn" json:"dsn" toml:"dsn"`

	// JournalMode sets the SQLite journal mode (e.g., "WAL", "DELETE")
	// WAL mode is recommended for better concurrency
	JournalMode string `yaml:"journal_mode" json:"journal_mode" toml:"journal_mode"`

	// Synchronous sets the synchronization level ("FULL", "NORMAL", "OFF")
	Synchronous string `yaml:"synchronous" json:"synchronous" toml:"synchronous"`

	// BusyTimeout is the time in milliseconds to wait when the database is locked
	BusyTimeout int `yaml:"busy_timeout" json:"busy_timeout" toml:"busy_timeout"`

	// CacheSize is the size of the page cache (negative = KB, positive = pages)
	CacheSize int `yaml:"cache_size" json:"cache_size" toml:"cache_size"`

	// MaxOpenConnections is the maximum number of open database connections
	MaxOpenConnections int `yaml:"max_open_connections" json:"max_open_connections" toml:"max_open_connections"`

	// MaxIdleConnections is the maximum number of idle connections in the pool
	MaxIdleConnections int `yaml:"max_idle_connections" json:"max_idle_connections" toml:"max_idle_connections"`

	// EnableForeignKeys enables foreign key constraint enforcement
	EnableForeignKeys bool `yaml:"enable_foreign_keys" json:"enable_foreign_keys" toml:"enable_foreign_keys"`
}

// ApplyDefaults sets default values for optional database configuration fields.
func (d *DatabaseConfig) ApplyDefaults() {
	if d.Driver == "" {
		d.Driver = DriverSQLite
	}
	if d.JournalMode == "" {
		d.JournalMode = "WAL"
	}
	if d.Synchronous == "" {
		d.Synchronous = "NORMAL"
	}
	if d.BusyTimeout == 0 {
		d.BusyTimeout = 5000
	}
	if d.CacheSize == 0 {
		d.CacheSize = 10000
	}
	if d.MaxOpenConnections == 0 {
		d.MaxOpenConnections = 25
	}
	if d.MaxIdleConnections == 0 {
		d.MaxIdleConnections = 5
	}
}

// Validate checks if the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.Path == "" {
			return fmt.Errorf("path is required for the sqlite driver")
		}
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("driver must be one of: %s, %s", DriverSQLite, DriverPostgres)
	}

	if d.JournalMode != "" && !slices.Contains([]string{"WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY"}, d.JournalMode) {
		return fmt.Errorf("journal_mode must be one of: WAL, DELETE, TRUNCATE, PERSIST, MEMORY")
	}

	if d.Synchronous != "" && !slices.Contains([]string{"FULL", "NORMAL", "OFF"}, d.Synchronous) {
		return fmt.Errorf("synchronous must be one of: FULL, NORMAL, OFF")
	}

	return nil
}

// MaintenanceConfig configures database maintenance behavior.
type MaintenanceConfig struct {
	// Enabled controls whether background maintenance runs
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// CheckInterval is how often to run maintenance (e.g., "30m", "1h")
	CheckInterval common.Duration `yaml:"check_interval" json:"check_interval" toml:"check_interval"`

	// VacuumOnStartup runs maintenance immediately on startup
	VacuumOnStartup bool `yaml:"vacuum_on_startup" json:"vacuum_on_startup" toml:"vacuum_on_startup"`

	// WALCheckpointMode controls the WAL checkpoint aggressiveness
	// Options: PASSIVE, FULL, RESTART, TRUNCATE
	WALCheckpointMode string `yaml:"wal_checkpoint_mode" json:"wal_checkpoint_mode" toml:"wal_checkpoint_mode"`
}

// ApplyDefaults sets default values for optional maintenance configuration fields.
func (m *MaintenanceConfig) ApplyDefaults() {
	if m.CheckInterval.Duration == 0 {
		m.CheckInterval = common.NewDuration(30 * time.Minute) //nolint:mnd
	}
	if m.WALCheckpointMode == "" {
		m.WALCheckpointMode = "TRUNCATE"
	}
}

// Validate checks if the maintenance configuration is valid.
func (m *MaintenanceConfig) Validate() error {
	if m.WALCheckpointMode != "" {
		validModes := []string{"PASSIVE", "FULL", "RESTART", "TRUNCATE"}
		if !slices.Contains(validModes, m.WALCheckpointMode) {
			return fmt.Errorf("wal_checkpoint_mode: must be one of: PASSIVE, FULL, RESTART, TRUNCATE")
		}
	}

	return nil
}

// RunnerConfig configures how strategies walk block ranges.
type RunnerConfig struct {
	// BatchSize is the initial number of blocks processed per batch
	BatchSize uint64 `yaml:"batch_size" json:"batch_size" toml:"batch_size"`

	// MinBatchSize is the lower bound the adaptive batch size shrinks to
	MinBatchSize uint64 `yaml:"min_batch_size" json:"min_batch_size" toml:"min_batch_size"`

	// MaxBatchSize is the upper bound the adaptive batch size grows to (default 2x BatchSize)
	MaxBatchSize uint64 `yaml:"max_batch_size" json:"max_batch_size" toml:"max_batch_size"`

	// PollInterval is how long a caught-up strategy sleeps before checking the head again
	PollInterval common.Duration `yaml:"poll_interval" json:"poll_interval" toml:"poll_interval"`

	// Retry configures retries of failed batches for idempotent strategies
	Retry *RetryConfig `yaml:"retry,omitempty" json:"retry,omitempty" toml:"retry,omitempty"`
}

// ApplyDefaults sets default values for optional runner configuration fields.
func (r *RunnerConfig) ApplyDefaults() {
	if r.BatchSize == 0 {
		r.BatchSize = defaultBatchSize
	}
	if r.MinBatchSize == 0 {
		r.MinBatchSize = min(defaultMinBatchSize, r.BatchSize)
	}
	if r.MaxBatchSize == 0 {
		r.MaxBatchSize = r.BatchSize * 2 //nolint:mnd
	}
	if r.PollInterval.Duration == 0 {
		r.PollInterval = common.NewDuration(5 * time.Second) //nolint:mnd
	}
	if r.Retry == nil {
		r.Retry = &RetryConfig{}
	}
	r.Retry.ApplyDefaults()
}

// Validate checks if the runner configuration is valid.
func (r *RunnerConfig) Validate() error {
	if r.MinBatchSize > r.BatchSize || r.BatchSize > r.MaxBatchSize {
		return fmt.Errorf("batch sizes must satisfy min_batch_size <= batch_size <= max_batch_size")
	}
	return nil
}

// StrategyConfig represents the configuration for a single strategy.
type StrategyConfig struct {
	// Name is a unique identifier for this strategy; it keys the indexed range
	Name string `yaml:"name" json:"name" toml:"name"`

	// Type is the registered strategy type used to build the strategy
	Type string `yaml:"type" json:"type" toml:"type"`

	// FromBlock is the block number to start indexing from
	FromBlock uint64 `yaml:"from_block" json:"from_block" toml:"from_block"`

	// ForceReindex reprocesses the strategy from FromBlock once on startup
	ForceReindex bool `yaml:"force_reindex" json:"force_reindex" toml:"force_reindex"`

	// Contracts contains the list of contracts the strategy reads
	Contracts []ContractConfig `yaml:"contracts" json:"contracts" toml:"contracts"`
}

// ContractConfig represents a contract and its events to index.
type ContractConfig struct {
	// Address is the contract address to monitor
	Address string `yaml:"address" json:"address" toml:"address"`

	// Events is the list of event signatures to index
	// Format: "EventName(type1,type2,...)"
	Events []string `yaml:"events" json:"events" toml:"events"`
}

// APIConfig configures the control REST API.
type APIConfig struct {
	// Enabled controls whether the API server is started
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address the API binds to
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// APIKey is the value required in the X-API-Key header
	APIKey string `yaml:"api_key" json:"api_key" toml:"api_key"`

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout common.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout common.Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout common.Duration `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout"`

	// CORS contains cross-origin settings
	CORS CORSConfig `yaml:"cors" json:"cors" toml:"cors"`
}

// CORSConfig configures cross-origin resource sharing.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled" json:"enabled" toml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" toml:"allowed_origins"`
}

// ApplyDefaults sets default values for optional API configuration fields.
func (a *APIConfig) ApplyDefaults() {
	if a.ListenAddress == "" {
		a.ListenAddress = ":3000"
	}
	if a.APIKey == "" {
		a.APIKey = "changeme"
	}
	if a.ReadTimeout.Duration == 0 {
		a.ReadTimeout = common.NewDuration(15 * time.Second) //nolint:mnd
	}
	if a.WriteTimeout.Duration == 0 {
		a.WriteTimeout = common.NewDuration(15 * time.Second) //nolint:mnd
	}
	if a.IdleTimeout.Duration == 0 {
		a.IdleTimeout = common.NewDuration(60 * time.Second) //nolint:mnd
	}
	if a.CORS.Enabled && len(a.CORS.AllowedOrigins) == 0 {
		a.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks if the API configuration is valid.
func (a *APIConfig) Validate() error {
	if a.Enabled && a.ListenAddress == "" {
		return fmt.Errorf("listen_address is required when the API is enabled")
	}
	return nil
}

// LoggingConfig configures logging behavior with per-component log levels.
type LoggingConfig struct {
	// DefaultLevel is the default log level for all components
	// Options: "debug", "info", "warn", "error"
	DefaultLevel string `yaml:"default_level" json:"default_level" toml:"default_level"`

	// Development enables development mode (stack traces, console encoder)
	Development bool `yaml:"development" json:"development" toml:"development"`

	// ComponentLevels sets log levels for specific components
	// Available components:
	//   - coordinator: control state and strategy orchestration
	//   - runner: batch processing of block ranges
	//   - head-tracker: chain head polling
	//   - range-store: indexed range persistence
	//   - strategy: built-in strategies
	//   - maintenance: database maintenance
	//   - api: control REST API
	ComponentLevels map[string]string `yaml:"component_levels,omitempty" json:"component_levels,omitempty" toml:"component_levels,omitempty"` //nolint:lll
}

// ApplyDefaults sets default values for optional logging configuration fields.
func (l *LoggingConfig) ApplyDefaults() {
	if l.DefaultLevel == "" {
		l.DefaultLevel = "info"
	}
	if l.ComponentLevels == nil {
		l.ComponentLevels = make(map[string]string)
	}
}

// Validate checks if the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	if l.DefaultLevel != "" {
		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(l.DefaultLevel)]; !valid {
			return fmt.Errorf("logging.default_level: must be one of: debug, info, warn, error")
		}
	}

	for component, level := range l.ComponentLevels {
		if _, validComponent := common.AllComponents[common.ToLowerWithTrim(component)]; !validComponent {
			return fmt.Errorf("logging.component_levels: unknown component '%s'", component)
		}

		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(level)]; !valid {
			return fmt.Errorf("logging.component_levels[%s]: must be one of: debug, info, warn, error", component)
		}
	}

	return nil
}

// GetComponentLevel returns the log level for a specific component.
// Falls back to DefaultLevel if no component-specific level is set.
func (l *LoggingConfig) GetComponentLevel(component string) string {
	if l == nil {
		return ""
	}
	if level, ok := l.ComponentLevels[component]; ok {
		return common.ToLowerWithTrim(level)
	}
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// GetDefaultLevel returns the default log level.
func (l *LoggingConfig) GetDefaultLevel() string {
	if l == nil {
		return ""
	}
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// IsDevelopment returns whether development mode is enabled.
func (l *LoggingConfig) IsDevelopment() bool {
	return l != nil && l.Development
}

// MetricsConfig configures Prometheus metrics exposition.
type MetricsConfig struct {
	// Enabled controls whether metrics collection and HTTP endpoint are active
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the metrics HTTP server to
	// Format: "host:port" or ":port"
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// Path is the HTTP path where metrics are exposed
	Path string `yaml:"path" json:"path" toml:"path"`
}

// ApplyDefaults sets default values for optional metrics configuration fields.
func (m *MetricsConfig) ApplyDefaults() {
	if m.ListenAddress == "" {
		m.ListenAddress = ":9090"
	}
	if m.Path == "" {
		m.Path = "/metrics"
	}
}

// Validate checks if the metrics configuration is valid.
func (m *MetricsConfig) Validate() error {
	if m.Enabled {
		if m.ListenAddress == "" {
			return fmt.Errorf("listen_address is required when metrics are enabled")
		}
		if m.Path == "" {
			return fmt.Errorf("path is required when metrics are enabled")
		}
		if m.Path[0] != '/' {
			return fmt.Errorf("path must start with '/'")
		}
	}
	return nil
}

// ApplyDefaults sets default values for optional configuration fields.
func (c *Config) ApplyDefaults() {
	c.Chain.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Runner.ApplyDefaults()

	if c.Maintenance != nil {
		c.Maintenance.ApplyDefaults()
	}

	if c.API != nil {
		c.API.ApplyDefaults()
	}

	if c.Logging != nil {
		c.Logging.ApplyDefaults()
	}

	if c.Metrics != nil {
		c.Metrics.ApplyDefaults()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Chain.Validate(); err != nil {
		return fmt.Errorf("chain.%w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database.%w", err)
	}

	if c.Maintenance != nil {
		if err := c.Maintenance.Validate(); err != nil {
			return fmt.Errorf("maintenance.%w", err)
		}
	}

	if err := c.Runner.Validate(); err != nil {
		return fmt.Errorf("runner: %w", err)
	}

	if c.API != nil {
		if err := c.API.Validate(); err != nil {
			return fmt.Errorf("api: %w", err)
		}
	}

	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy must be configured")
	}

	names := make(map[string]bool)
	for i, strategy := range c.Strategies {
		if strategy.Name == "" {
			return fmt.Errorf("strategy[%d]: name is required", i)
		}

		if names[strategy.Name] {
			return fmt.Errorf("strategy[%d]: duplicate strategy name '%s'", i, strategy.Name)
		}
		names[strategy.Name] = true

		if strategy.Type == "" {
			return fmt.Errorf("strategy[%d] (%s): type is required", i, strategy.Name)
		}

		for j, contract := range strategy.Contracts {
			if contract.Address == "" {
				return fmt.Errorf("strategy[%d] (%s), contract[%d]: address is required", i, strategy.Name, j)
			}

			if len(contract.Events) == 0 {
				return fmt.Errorf("strategy[%d] (%s), contract[%d]: at least one event must be configured", i, strategy.Name, j)
			}
		}
	}

	return nil
}

// StrategyByName returns the configuration of the named strategy.
func (c *Config) StrategyByName(name string) (StrategyConfig, bool) {
	for _, s := range c.Strategies {
		if s.Name == name {
			return s, true
		}
	}
	return StrategyConfig{}, false
}
