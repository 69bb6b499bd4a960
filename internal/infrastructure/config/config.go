package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	AI        AIConfig
	Chat      ChatConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Site      SiteConfig
	Log       LogConfig
	Telemetry TelemetryConfig
	Swagger   SwaggerConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// IsProduction reports whether the app runs in production
func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver          string // postgres or sqlite
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Path            string // sqlite file path
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// RedisConfig holds Redis connection settings. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Enabled reports whether a Redis server is configured
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// Addr returns host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AIConfig holds generative-AI provider settings
type AIConfig struct {
	Provider string // gemini or openai
	APIKey   string
	Model    string
	BaseURL  string // overrides the provider endpoint
}

// ChatConfig holds chat relay settings
type ChatConfig struct {
	ContextCacheTTL   time.Duration
	ContextTimeout    time.Duration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxMessages       int
}

// JWTConfig holds admin token settings
type JWTConfig struct {
	Secret          string
	Issuer          string
	TokenExpiration time.Duration
}

// StorageConfig holds S3-compatible object storage settings.
// An empty Bucket stores uploads under LocalDir instead.
type StorageConfig struct {
	LocalDir      string
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	UsePathStyle  bool
	PublicBaseURL string
	MaxUploadSize int64
}

// SiteConfig holds public site settings used for SEO documents
type SiteConfig struct {
	BaseURL string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// SwaggerConfig controls the /swagger API documentation endpoint
type SwaggerConfig struct {
	Enabled     bool
	RequireAuth bool     // admin bearer token required
	AllowedIPs  []string // IPs or CIDRs, empty allows everyone
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
	DBTraceEnabled    bool
}

// defaults are registered with viper so a key missing from both config.toml
// and the environment still resolves. Values set to zero explicitly are kept.
var defaults = map[string]any{
	"app.name": "portfolio-api",
	"app.env":  "development",
	"app.port": "8080",

	"http.read_timeout":       15 * time.Second,
	// Chat replies stream for a while; the write timeout bounds the whole response.
	"http.write_timeout":      2 * time.Minute,
	"http.idle_timeout":       60 * time.Second,
	"http.max_header_bytes":   1 << 20,
	"http.max_body_size":      10 << 20,
	"http.cors_allow_methods": []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	"http.cors_allow_headers": []string{"Content-Type", "Authorization", "X-Request-ID"},

	"database.driver":             "postgres",
	"database.host":               "localhost",
	"database.port":               5432,
	"database.user":               "postgres",
	"database.dbname":             "portfolio",
	"database.sslmode":            "disable",
	"database.path":               "portfolio.db",
	"database.max_open_conns":     10,
	"database.max_idle_conns":     2,
	"database.conn_max_lifetime":  60,
	"database.conn_max_idle_time": 30,

	"redis.port": 6379,

	"ai.provider": "gemini",
	"ai.model":    "gemini-2.5-flash-preview-09-2025",

	"chat.context_cache_ttl":   5 * time.Minute,
	"chat.context_timeout":     5 * time.Second,
	"chat.rate_limit_requests": 20,
	"chat.rate_limit_window":   time.Minute,
	"chat.max_messages":        0,

	"jwt.issuer":           "portfolio-api",
	"jwt.token_expiration": 12 * time.Hour,

	"storage.region":          "us-east-1",
	"storage.local_dir":       "uploads",
	"storage.use_ssl":         true,
	"storage.max_upload_size": 5 << 20,

	"site.base_url": "http://localhost:3000",

	"log.level":  "info",
	"log.format": "console",
	"log.output": "stdout",

	"telemetry.collector_endpoint": "localhost:4317",
	"telemetry.sampling_ratio":     1.0,

	"swagger.enabled": true,
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return decode(newViper())
}

// Load reads config.toml and the environment, falling back to defaults.
// Priority (highest to lowest):
// 1. Environment variables with PORTFOLIO_ prefix (e.g., PORTFOLIO_DATABASE_PASSWORD)
// 2. GEMINI_API_KEY for ai.api_key
// 3. config.toml
// 4. Built-in defaults
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, dir := range []string{".", "./config", "/etc/portfolio"} {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The key keeps its conventional name so existing deployments work unchanged.
	if err := v.BindEnv("ai.api_key", "PORTFOLIO_AI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding ai.api_key: %w", err)
	}

	cfg := decode(v)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(v *viper.Viper) *Config {
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("database.driver"),
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			Path:            v.GetString("database.path"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		AI: AIConfig{
			Provider: v.GetString("ai.provider"),
			APIKey:   v.GetString("ai.api_key"),
			Model:    v.GetString("ai.model"),
			BaseURL:  v.GetString("ai.base_url"),
		},
		Chat: ChatConfig{
			ContextCacheTTL:   v.GetDuration("chat.context_cache_ttl"),
			ContextTimeout:    v.GetDuration("chat.context_timeout"),
			RateLimitRequests: v.GetInt("chat.rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("chat.rate_limit_window"),
			MaxMessages:       v.GetInt("chat.max_messages"),
		},
		JWT: JWTConfig{
			Secret:          v.GetString("jwt.secret"),
			Issuer:          v.GetString("jwt.issuer"),
			TokenExpiration: v.GetDuration("jwt.token_expiration"),
		},
		Storage: StorageConfig{
			Endpoint:      v.GetString("storage.endpoint"),
			Region:        v.GetString("storage.region"),
			Bucket:        v.GetString("storage.bucket"),
			AccessKey:     v.GetString("storage.access_key"),
			SecretKey:     v.GetString("storage.secret_key"),
			UseSSL:        v.GetBool("storage.use_ssl"),
			UsePathStyle:  v.GetBool("storage.use_path_style"),
			PublicBaseURL: v.GetString("storage.public_base_url"),
			MaxUploadSize: v.GetInt64("storage.max_upload_size"),
			LocalDir:      v.GetString("storage.local_dir"),
		},
		Site: SiteConfig{
			BaseURL: v.GetString("site.base_url"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
			DBTraceEnabled:    v.GetBool("telemetry.db_trace_enabled"),
		},
		Swagger: SwaggerConfig{
			Enabled:     v.GetBool("swagger.enabled"),
			RequireAuth: v.GetBool("swagger.require_auth"),
			AllowedIPs:  v.GetStringSlice("swagger.allowed_ips"),
		},
	}

	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
	return cfg
}

// validate performs validation on the configuration.
// A missing AI key is not an error here; the chat relay reports it per request.
func (c *Config) validate() error {
	if port, err := strconv.Atoi(c.App.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("app.port must be between 1 and 65535, got %q", c.App.Port)
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be 'postgres' or 'sqlite', got %q", c.Database.Driver)
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	switch c.AI.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("ai.provider must be 'gemini' or 'openai', got %q", c.AI.Provider)
	}

	if c.Chat.RateLimitRequests < 0 {
		return fmt.Errorf("chat.rate_limit_requests cannot be negative")
	}

	if _, err := url.ParseRequestURI(c.Site.BaseURL); err != nil {
		return fmt.Errorf("site.base_url is not a valid URL: %w", err)
	}

	if c.App.IsProduction() {
		if len(c.JWT.Secret) < 32 {
			return fmt.Errorf("jwt.secret must be at least 32 characters in production")
		}
		if c.Database.Driver == "postgres" {
			if c.Database.Password == "" {
				return fmt.Errorf("database.password is required in production")
			}
			if c.Database.SSLMode == "disable" {
				return fmt.Errorf("database.sslmode cannot be 'disable' in production")
			}
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
		if c.Swagger.Enabled && !c.Swagger.RequireAuth && len(c.Swagger.AllowedIPs) == 0 {
			return fmt.Errorf("swagger must be disabled, require auth, or restrict allowed_ips in production")
		}
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
