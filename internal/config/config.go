package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Supabase
	SupabaseURL           string
	SupabaseKey           string
	SupabaseJWTSecret     string
	SupabaseStorageBucket string

	// Database (optional, enables direct SQL access and migrations)
	DatabaseURL string

	// Session
	SessionCookieName string

	// Storage
	StorageDriver  string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	UploadMaxWidth int

	// GitHub
	GitHubUsername        string
	GitHubToken           string
	GitHubAPIURL          string
	GitHubContributionURL string

	// Terminal
	QnAFile string

	// Server
	Port           string
	Environment    string
	BaseURL        string
	LogLevel       string
	AllowedOrigins []string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// win over it.
func Load() (*Config, error) {
	cfg := load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadTerminal is Load without the server requirements, for the local
// terminal which only talks to public GitHub endpoints.
func LoadTerminal() *Config {
	return load()
}

func load() *Config {
	_ = godotenv.Load()

	return &Config{
		SupabaseURL:           strings.TrimSuffix(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseKey:           getEnv("SUPABASE_KEY", ""),
		SupabaseJWTSecret:     getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "project-images"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "sb-access-token"),

		StorageDriver:  getEnv("STORAGE_DRIVER", "supabase"),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "project-images"),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),
		UploadMaxWidth: getEnvInt("UPLOAD_MAX_WIDTH", 1920),

		GitHubUsername:        getEnv("GITHUB_USERNAME", "octocat"),
		GitHubToken:           getEnv("GITHUB_TOKEN", ""),
		GitHubAPIURL:          getEnv("GITHUB_API_URL", "https://api.github.com"),
		GitHubContributionURL: getEnv("GITHUB_CONTRIBUTIONS_URL", "https://github-contributions-api.jogruber.de"),

		QnAFile: getEnv("QNA_FILE", ""),

		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),
	}
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseKey == "" {
		return fmt.Errorf("SUPABASE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	switch c.StorageDriver {
	case "supabase":
	case "minio":
		if c.MinioAccessKey == "" || c.MinioSecretKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for the minio storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
