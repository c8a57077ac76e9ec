package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"ratelimit"`
	Upload      UploadConfig      `yaml:"upload"`
	Weather     WeatherConfig     `yaml:"weather"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"studytrack"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	AuthRequestsPerMinute int `yaml:"auth_requests_per_minute" env:"RATELIMIT_AUTH_PER_MINUTE" env-default:"20"`
}

// UploadConfig holds avatar upload settings.
type UploadConfig struct {
	Dir       string `yaml:"dir"        env:"UPLOAD_DIR"        env-default:"./uploads"`
	URLPrefix string `yaml:"url_prefix" env:"UPLOAD_URL_PREFIX" env-default:"/uploads"`
	MaxBytes  int64  `yaml:"max_bytes"  env:"UPLOAD_MAX_BYTES"  env-default:"5242880"`
}

// WeatherConfig holds the OpenWeatherMap client settings. An empty APIKey
// disables the weather endpoint.
type WeatherConfig struct {
	APIKey      string        `yaml:"api_key"      env:"WEATHER_API_KEY"`
	BaseURL     string        `yaml:"base_url"     env:"WEATHER_BASE_URL"     env-default:"https://api.openweathermap.org/data/2.5/weather"`
	Timeout     time.Duration `yaml:"timeout"      env:"WEATHER_TIMEOUT"      env-default:"10s"`
	DefaultCity string        `yaml:"default_city" env:"WEATHER_DEFAULT_CITY" env-default:"Tokyo"`
	DefaultLang string        `yaml:"default_lang" env:"WEATHER_DEFAULT_LANG" env-default:"en"`
}

// LeaderboardConfig holds leaderboard listing settings.
type LeaderboardConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"LEADERBOARD_DEFAULT_LIMIT" env-default:"10"`
	MaxLimit     int `yaml:"max_limit"     env:"LEADERBOARD_MAX_LIMIT"     env-default:"100"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// WeatherEnabled reports whether an API key is configured.
func (c WeatherConfig) WeatherEnabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}
