package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional integrations (Redis, RabbitMQ) are disabled when their address is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Payment PaymentConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
	Cache   CacheConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Rome"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Rome"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"lax"`
}

type PaymentConfig struct {
	DefaultPaymentMethod string        `envconfig:"PAYMENT_DEFAULT_METHOD" default:"pm_card_visa"`
	Concurrency          int           `envconfig:"PAYMENT_CONCURRENCY" default:"4"`
	CallTimeout          time.Duration `envconfig:"PAYMENT_CALL_TIMEOUT" default:"10s"`
	MaxRetries           int           `envconfig:"PAYMENT_MAX_RETRIES" default:"3"`
	RetryBase            time.Duration `envconfig:"PAYMENT_RETRY_BASE" default:"200ms"`
	RatePerSecond        float64       `envconfig:"PAYMENT_RATE_PER_SECOND" default:"20"`
	RateBurst            int           `envconfig:"PAYMENT_RATE_BURST" default:"5"`
	// MaxAttempts bounds automatic resumes of a failing intent.
	MaxAttempts int32 `envconfig:"PAYMENT_MAX_ATTEMPTS" default:"5"`
	// LockTTL is the margin added to a provisioning lease on top of the
	// worst case run time for the current hotel count.
	LockTTL time.Duration `envconfig:"PAYMENT_LOCK_TTL" default:"2m"`
	// APIURL points the client at stripe-mock or a test server when set.
	APIURL string `envconfig:"PAYMENT_API_URL" default:""`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type AMQPConfig struct {
	URL            string `envconfig:"AMQP_URL" default:""`
	ProvisionQueue string `envconfig:"AMQP_PROVISION_QUEUE" default:"provisioning.incomplete"`
	Prefetch       int    `envconfig:"AMQP_PREFETCH" default:"10"`
	// ResumeDelay is measured from the event's occurred_at.
	ResumeDelay time.Duration `envconfig:"AMQP_RESUME_DELAY" default:"30s"`
}

func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

type CacheConfig struct {
	HotelTTL time.Duration `envconfig:"CACHE_HOTEL_TTL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Rome",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Rome",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-hotel-backend",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "lax",
		},
		Payment: PaymentConfig{
			DefaultPaymentMethod: "pm_card_visa",
			Concurrency:          2,
			CallTimeout:          2 * time.Second,
			MaxRetries:           1,
			RetryBase:            time.Millisecond,
			RatePerSecond:        1000,
			RateBurst:            100,
			MaxAttempts:          3,
			LockTTL:              10 * time.Second,
		},
		AMQP: AMQPConfig{
			ProvisionQueue: "provisioning.incomplete",
			Prefetch:       1,
			ResumeDelay:    0,
		},
		Cache: CacheConfig{
			HotelTTL: time.Second,
		},
	}
}
