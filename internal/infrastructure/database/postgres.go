package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type DBConfig struct {
	Host     string // PostgreSQL host (localhost, 10.0.0.5, ...)
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	MaxConns          int32         // upper bound of pooled connections
	MinConns          int32         // connections kept warm
	MaxConnLifetime   time.Duration // recycle connections older than this
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	MaxRetries     int           // connect attempts at startup
	RetryDelay     time.Duration // base delay, doubled every attempt
	ConnectTimeout time.Duration // per attempt
}

type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
		Pool:   nil, // set by Connect()
	}
}

// ConnectionString builds the postgres URL; credentials are escaped.
func (db *PostgresDB) ConnectionString() string {
	sslMode := db.Config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.Config.Username, db.Config.Password),
		Host:     fmt.Sprintf("%s:%d", db.Config.Host, db.Config.Port),
		Path:     "/" + db.Config.DBName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// connectWithRetry retries with exponential backoff: delay, 2*delay, 4*delay...
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var lastErr error

	attempts := db.Config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		log.Info().Int("attempt", attempt).Int("max", attempts).Msg("[DATABASE] Connection attempt")

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if lastErr == nil {
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
			} else {
				log.Info().Int("attempt", attempt).Msg("[DATABASE] Connected")
				return pool, nil
			}
		}

		log.Warn().Err(lastErr).Int("attempt", attempt).Msg("[DATABASE] Attempt failed")

		if attempt < attempts {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

func (db *PostgresDB) Connect(ctx context.Context) error {
	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool
	return nil
}

func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if err := db.Ping(ctx); err != nil {
		return err
	}

	stats := db.Pool.Stat()
	if stats.TotalConns() == 0 {
		return fmt.Errorf("no active database connections")
	}

	log.Debug().
		Int32("total", stats.TotalConns()).
		Int32("idle", stats.IdleConns()).
		Int32("acquired", stats.AcquiredConns()).
		Msg("[DATABASE] Health check passed")

	return nil
}
