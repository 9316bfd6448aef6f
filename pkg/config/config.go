package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/anonto42/chyll/backend/pkg/logger"
)

type Config struct {
	Port                    string
	Env                     string
	MetricsPort             string
	FirebaseCredentialsPath string
	FirebaseProjectID       string
	PostgresConnStr         string
	SQLitePath              string
	MongoURI                string
	MongoDatabase           string
	RedisAddr               string
	RedisPassword           string
	AuthBrokerURL           string
	SessionSecret           string
	CORSOrigins             []string
	GeminiAPIKey            string
	GeminiModel             string
	YouTubeAPIKey           string
	TwitterBearerToken      string
	RedditClientID          string
	RedditClientSecret      string
	// PlatformCredentials holds <PLATFORM>_CLIENT_ID/_CLIENT_SECRET for
	// platforms served from sample catalogs, keyed by lower-case platform.
	PlatformCredentials map[string][2]string
}

var samplePlatforms = []string{"facebook", "instagram", "tiktok", "linkedin", "pinterest", "threads", "snapchat"}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("no .env file found, assuming environment variables are set")
	}

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		MetricsPort:             getEnv("METRICS_PORT", "9090"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		SQLitePath:              getEnv("SQLITE_PATH", "chyll.db"),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDatabase:           getEnv("MONGO_DB", "chyll"),
		RedisAddr:               getEnv("REDIS_ADDR", ""),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		AuthBrokerURL:           getEnv("AUTH_BROKER_URL", ""),
		SessionSecret:           getEnv("SESSION_SECRET", ""),
		CORSOrigins:             splitList(getEnv("CORS_ORIGINS", "*")),
		GeminiAPIKey:            getEnv("GEMINI_API_KEY", ""),
		GeminiModel:             getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		YouTubeAPIKey:           getEnv("YOUTUBE_API_KEY", ""),
		TwitterBearerToken:      getEnv("TWITTER_BEARER_TOKEN", ""),
		RedditClientID:          getEnv("REDDIT_CLIENT_ID", ""),
		RedditClientSecret:      getEnv("REDDIT_CLIENT_SECRET", ""),
		PlatformCredentials:     make(map[string][2]string),
	}

	for _, p := range samplePlatforms {
		prefix := strings.ToUpper(p)
		cfg.PlatformCredentials[p] = [2]string{
			getEnv(prefix+"_CLIENT_ID", ""),
			getEnv(prefix+"_CLIENT_SECRET", ""),
		}
	}
	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
