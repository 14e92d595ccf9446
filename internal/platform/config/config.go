package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	pkgstrings "udaan/pkg/platform/strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr              string
	CORSAllowedOrigin string
	SearchRateLimit   int // requests per minute per client IP; 0 disables
	RecordCacheTTL    time.Duration
	SearchLogBuffer   int
	TrustedProxies    []string // addresses or CIDRs whose forwarding headers are honoured
	HTTP              HTTPTimeouts
	Log               Log
	Database          Database
	Redis             RedisConfig
}

// HTTPTimeouts bounds each phase of a client connection. Zero values fall
// back to the server defaults.
type HTTPTimeouts struct {
	ReadHeader time.Duration
	Read       time.Duration
	Write      time.Duration
	Idle       time.Duration
}

// Log selects the slog handler.
type Log struct {
	Level  string
	Format string
}

// Database describes the Postgres connection.
type Database struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns URL when set, otherwise a postgres:// URL assembled from the parts.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else {
		u.User = url.User(d.User)
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// RedisConfig describes the optional record cache backend.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Unify configures the one-shot aggregation command.
type Unify struct {
	Concurrency int
	Log         Log
	Database    Database
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:              envString("UDAAN_ADDR", ":5000"),
		CORSAllowedOrigin: envString("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		SearchRateLimit:   envInt("SEARCH_RATE_LIMIT", 60),
		RecordCacheTTL:    envDuration("RECORD_CACHE_TTL", 5*time.Minute),
		SearchLogBuffer:   envInt("SEARCH_LOG_BUFFER", 256),
		TrustedProxies:    envList("TRUSTED_PROXIES"),
		HTTP: HTTPTimeouts{
			ReadHeader: envDuration("HTTP_READ_HEADER_TIMEOUT", 0),
			Read:       envDuration("HTTP_READ_TIMEOUT", 0),
			Write:      envDuration("HTTP_WRITE_TIMEOUT", 0),
			Idle:       envDuration("HTTP_IDLE_TIMEOUT", 0),
		},
		Log:               logFromEnv(),
		Database:          DatabaseFromEnv(),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 2*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", time.Second),
		},
	}
}

// UnifyFromEnv builds the aggregation command config.
func UnifyFromEnv() Unify {
	return Unify{
		Concurrency: envInt("UNIFY_CONCURRENCY", 8),
		Log:         logFromEnv(),
		Database:    DatabaseFromEnv(),
	}
}

// DatabaseFromEnv reads DATABASE_URL or the DB_* variables.
func DatabaseFromEnv() Database {
	return Database{
		URL:             os.Getenv("DATABASE_URL"),
		Host:            envString("DB_HOST", "localhost"),
		Port:            envInt("DB_PORT", 5432),
		User:            envString("DB_USER", "udaan"),
		Password:        os.Getenv("DB_PASSWORD"),
		Name:            envString("DB_NAME", "udaan_db"),
		SSLMode:         envString("DB_SSLMODE", "disable"),
		MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 20),
		MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}

func logFromEnv() Log {
	return Log{
		Level:  envString("LOG_LEVEL", "info"),
		Format: envString("LOG_FORMAT", "json"),
	}
}

func envString(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func envList(name string) []string {
	return pkgstrings.SplitLower(os.Getenv(name), ",")
}

func envInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func envDuration(name string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
