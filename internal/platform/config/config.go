package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full process configuration assembled from the environment.
type Config struct {
	Server   Server
	Database Database
	Redis    RedisConfig
	Cache    Cache
	Filter   Filter
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// Database selects the record source.
type Database struct {
	Driver string
	DSN    string
}

// RedisConfig configures the shared redis client. An empty URL disables redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Cache controls the admissions snapshot cache.
type Cache struct {
	Enabled bool
	TTL     time.Duration
	// BreakerCooldown is how long a failing redis cache is skipped before a retry.
	BreakerCooldown time.Duration
}

// Filter holds the outlier filter thresholds.
type Filter struct {
	MinAverage          float64
	MinEntriesPerSchool int
}

const (
	DefaultAddr     = ":8080"
	DefaultCacheTTL = 7 * 24 * time.Hour
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
)

// FromEnv builds a Config from environment variables so main stays lean.
// Malformed numeric or duration values are reported rather than silently defaulted.
func FromEnv() (Config, error) {
	var errs []string
	env := envReader{errs: &errs}

	cfg := Config{
		Server: Server{
			Addr:            env.str("UNISTATS_ADDR", DefaultAddr),
			LogLevel:        env.level("LOG_LEVEL", slog.LevelInfo),
			ShutdownTimeout: env.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: Database{
			Driver: strings.ToLower(env.str("DB_DRIVER", DriverSQLite)),
			DSN:    env.str("DB_DSN", ""),
		},
		Redis: RedisConfig{
			URL:          env.str("REDIS_URL", ""),
			PoolSize:     env.integer("REDIS_POOL_SIZE", 10),
			MinIdleConns: env.integer("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  env.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  env.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: env.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Cache: Cache{
			Enabled:         env.boolean("CACHE_ENABLED", true),
			TTL:             env.duration("CACHE_TTL", DefaultCacheTTL),
			BreakerCooldown: env.duration("CACHE_BREAKER_COOLDOWN", 30*time.Second),
		},
		Filter: Filter{
			MinAverage:          env.float("MIN_AVERAGE", 60),
			MinEntriesPerSchool: env.integer("MIN_ENTRIES_PER_SCHOOL", 2),
		},
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Sprintf("DB_DRIVER: unsupported driver %q", cfg.Database.Driver))
	}
	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

type envReader struct {
	errs *[]string
}

func (e envReader) fail(key string, err error) {
	*e.errs = append(*e.errs, fmt.Sprintf("%s: %v", key, err))
}

func (e envReader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (e envReader) integer(key string, def int) int {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return n
}

func (e envReader) float(key string, def float64) float64 {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return f
}

func (e envReader) boolean(key string, def bool) bool {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return b
}

func (e envReader) duration(key string, def time.Duration) time.Duration {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return d
}

func (e envReader) level(key string, def slog.Level) slog.Level {
	v := e.str(key, "")
	if v == "" {
		return def
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		e.fail(key, err)
		return def
	}
	return lvl
}
