package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	AI       AIConfig
	DocIntel DocIntelConfig
	Storage  StorageConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	FrontendURL string
	CORSOrigins []string
	LogJSON     bool
	LogDebug    bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type AuthConfig struct {
	JWTAccessSecret   string
	JWTRefreshSecret  string
	AccessExpiresIn   time.Duration
	RefreshExpiresIn  time.Duration
	CookieSecure      bool
	GoogleClientID    string
	GoogleSecret      string
	GoogleCallbackURL string
}

type AIConfig struct {
	// Provider is one of azure, gemini, openrouter. Empty disables remote scoring.
	Provider string

	AzureEndpoint   string
	AzureAPIKey     string
	AzureDeployment string
	AzureAPIVersion string

	GeminiAPIKey string
	GeminiModel  string

	OpenRouterAPIKey string
	OpenRouterModel  string

	Timeout time.Duration
}

type DocIntelConfig struct {
	Endpoint   string
	APIKey     string
	APIVersion string
}

type StorageConfig struct {
	AzureContainerSASURL string
	LocalDir             string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads a .env file when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}
	optDefault := func(key, def string) string {
		if s := opt(key); s != "" {
			return s
		}
		return def
	}

	cfg.App = AppConfig{
		AppName:     optDefault("APP_NAME", "talent-match"),
		Environment: optDefault("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
		FrontendURL: strings.TrimRight(optDefault("FRONTEND_URL", "http://localhost:8080"), "/"),
		CORSOrigins: splitList(opt("CORS_ORIGINS")),
		LogJSON:     parseBool(opt("LOG_JSON"), true),
		LogDebug:    parseBool(opt("LOG_DEBUG"), false),
	}
	if len(cfg.App.CORSOrigins) == 0 {
		cfg.App.CORSOrigins = []string{cfg.App.FrontendURL}
	}

	cfg.Database = DatabaseConfig{
		DBHost:                req("DB_HOST"),
		DBPort:                optDefault("DB_PORT", "5432"),
		DBName:                req("DB_NAME"),
		DBUser:                req("DB_USER"),
		DBPassword:            opt("DB_PASSWORD"),
		DBSSLMode:             optDefault("DB_SSL_MODE", "disable"),
		ConnectTimeout:        parseSeconds(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:          int32(parseInt(opt("DB_POOL_MAX_CONNS"), 10)),
		PoolMinConns:          int32(parseInt(opt("DB_POOL_MIN_CONNS"), 0)),
		PoolMaxConnLifetime:   parseSeconds(opt("DB_POOL_MAX_CONN_LIFETIME"), time.Hour),
		PoolMaxConnIdleTime:   parseSeconds(opt("DB_POOL_MAX_CONN_IDLE_TIME"), 30*time.Minute),
		PoolHealthCheckPeriod: parseSeconds(opt("DB_POOL_HEALTH_CHECK_PERIOD"), time.Minute),
		MigrationsDir:         optDefault("MIGRATIONS_DIR", "migrations"),
	}

	cfg.Redis = RedisConfig{
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      parseSeconds(opt("REDIS_TTL"), 600*time.Second),
	}

	cfg.Auth = AuthConfig{
		JWTAccessSecret:   req("JWT_ACCESS_SECRET"),
		JWTRefreshSecret:  req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:   parseSeconds(opt("JWT_ACCESS_EXPIRES_IN"), 24*time.Hour),
		RefreshExpiresIn:  parseSeconds(opt("JWT_REFRESH_EXPIRES_IN"), 7*24*time.Hour),
		CookieSecure:      parseBool(opt("COOKIE_SECURE"), false),
		GoogleClientID:    opt("GOOGLE_CLIENT_ID"),
		GoogleSecret:      opt("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL: opt("GOOGLE_CALLBACK_URL"),
	}

	cfg.AI = AIConfig{
		Provider:         strings.ToLower(opt("AI_PROVIDER")),
		AzureEndpoint:    opt("AZURE_OPENAI_ENDPOINT"),
		AzureAPIKey:      opt("AZURE_OPENAI_API_KEY"),
		AzureDeployment:  optDefault("AZURE_OPENAI_DEPLOYMENT_NAME", "gpt-4o"),
		AzureAPIVersion:  optDefault("AZURE_OPENAI_API_VERSION", "2024-04-01-preview"),
		GeminiAPIKey:     opt("GEMINI_API_KEY"),
		GeminiModel:      opt("GEMINI_MODEL"),
		OpenRouterAPIKey: opt("OPENROUTER_API_KEY"),
		OpenRouterModel:  optDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini"),
		Timeout:          parseSeconds(opt("AI_TIMEOUT"), 60*time.Second),
	}

	cfg.DocIntel = DocIntelConfig{
		Endpoint:   strings.TrimRight(opt("AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT"), "/"),
		APIKey:     opt("AZURE_DOCUMENT_INTELLIGENCE_KEY"),
		APIVersion: optDefault("AZURE_DOCUMENT_INTELLIGENCE_API_VERSION", "2024-11-30"),
	}

	cfg.Storage = StorageConfig{
		AzureContainerSASURL: opt("AZURE_STORAGE_CONTAINER_SAS_URL"),
		LocalDir:             optDefault("CV_UPLOAD_DIR", "uploads"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}

func parseInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// parseSeconds accepts either a Go duration ("15m") or a plain number of seconds.
func parseSeconds(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
