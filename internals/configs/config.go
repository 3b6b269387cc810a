package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config is the runtime surface of the service. Every field comes from ENV.
type Config struct {
	Port       string
	Production bool

	JWTSecret string

	DBDriver      string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBSSLMode     string
	MongoURI      string
	MongoDatabase string
	AutoMigrate   bool
	SeedFile      string

	CorsOrigins     []string
	GuardWrites     bool
	TokenRateLimit  int
	GlobalRateLimit int

	LogLevel  string
	LogFormat string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn().Msg("⚠️ .env not found, using system ENV")
		} else {
			log.Info().Msg("✅ .env loaded")
		}
	} else {
		log.Info().Msg("🚀 Running in Railway, using system ENV")
	}
}

// Load reads the typed config. LoadEnv should run first so .env values are visible.
func Load() Config {
	cfg := Config{
		Port:       GetEnv("PORT", "5000"),
		Production: isProduction(),

		JWTSecret: firstNonEmpty(GetEnv("ACCESS_TOKEN_SECRET"), GetEnv("JWT_SECRET")),

		DBDriver:      strings.ToLower(GetEnv("DB_DRIVER", DriverPostgres)),
		DBUser:        GetEnv("DB_USER"),
		DBPassword:    firstNonEmpty(GetEnv("DB_PASSWORD"), GetEnv("DB_PASS")),
		DBHost:        GetEnv("DB_HOST", "localhost"),
		DBPort:        GetEnv("DB_PORT", "5432"),
		DBName:        GetEnv("DB_NAME", "assignments"),
		DBSSLMode:     GetEnv("DB_SSLMODE", "disable"),
		MongoURI:      GetEnv("MONGO_URI"),
		MongoDatabase: GetEnv("MONGO_DATABASE", "reset-Assignment-11"),
		AutoMigrate:   getBool("DB_AUTO_MIGRATE", true),
		SeedFile:      GetEnv("SEED_FILE"),

		CorsOrigins:     splitList(GetEnv("CORS_ORIGINS", "http://localhost:5173")),
		GuardWrites:     getBool("AUTH_GUARD_WRITES", true),
		TokenRateLimit:  getInt("TOKEN_RATE_LIMIT", 20),
		GlobalRateLimit: getInt("GLOBAL_RATE_LIMIT", 100),

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "console"),
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverMongo, DriverMemory:
	default:
		log.Warn().Str("driver", cfg.DBDriver).Msg("❌ unknown DB_DRIVER, falling back to postgres")
		cfg.DBDriver = DriverPostgres
	}

	if cfg.JWTSecret == "" {
		log.Error().Msg("❌ ACCESS_TOKEN_SECRET is not set")
	} else {
		log.Info().Msg("✅ ACCESS_TOKEN_SECRET loaded")
	}
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func isProduction() bool {
	env := firstNonEmpty(GetEnv("APP_ENV"), GetEnv("NODE_ENV"))
	return strings.EqualFold(strings.TrimSpace(env), "production")
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(GetEnv(key)))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
