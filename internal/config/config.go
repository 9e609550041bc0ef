package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/EduardoZeca/Professor-Bob/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr  string   `env:"SERVER_ADDR" envDefault:":8000"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://127.0.0.1:3000,http://localhost:3000"`

	// External service configuration
	GeminiCfg GeminiConnectorConfig `envPrefix:"GEMINI_"`

	// Knowledge base configuration
	KnowledgeCfg KnowledgeConfig `envPrefix:"KNOWLEDGE_"`

	// Retrieval configuration
	RetrievalCfg RetrievalConfig `envPrefix:"RETRIEVAL_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GeminiConnectorConfig configures the Gemini embedding/generation connector.
type GeminiConnectorConfig struct {
	HTTPClientConfig
	APIKey          string               `env:"API_KEY"`
	EmbeddingModel  string               `env:"EMBEDDING_MODEL" envDefault:"embedding-001"`
	GenerationModel string               `env:"GENERATION_MODEL" envDefault:"gemini-2.5-flash"`
	EmbedTimeout    time.Duration        `env:"EMBED_TIMEOUT" envDefault:"15s"`
	GenerateTimeout time.Duration        `env:"GENERATE_TIMEOUT" envDefault:"30s"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	Url                   string        `env:"SERVICE_URL" envDefault:"https://generativelanguage.googleapis.com"`
}

// KnowledgeConfig controls corpus ingestion and artifact persistence.
type KnowledgeConfig struct {
	CorpusDir     string        `env:"CORPUS_DIR" envDefault:"apostilas"`
	IndexFile     string        `env:"INDEX_FILE" envDefault:"data/vector_index.bin"`
	MetadataFile  string        `env:"METADATA_FILE" envDefault:"data/chunks_metadata.json"`
	ChunkSize     int           `env:"CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap  int           `env:"CHUNK_OVERLAP" envDefault:"100"`
	EmbedDelay    time.Duration `env:"EMBED_DELAY" envDefault:"100ms"`
	ProgressEvery int           `env:"PROGRESS_EVERY" envDefault:"50"`
}

// RetrievalConfig controls the query-time search behaviour.
type RetrievalConfig struct {
	SearchK      int           `env:"SEARCH_K" envDefault:"20"`
	ContextLimit int           `env:"CONTEXT_LIMIT" envDefault:"3"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	CacheCleanup time.Duration `env:"CACHE_CLEANUP" envDefault:"30m"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	// Mock runs never call the real API, so the key is only required when
	// mocks are disabled.
	if !cfg.EnableMocks && cfg.GeminiCfg.APIKey == "" {
		errors = append(errors, "GEMINI_API_KEY is required when ENABLE_MOCKS is false")
	}

	if cfg.KnowledgeCfg.ChunkSize < 1 {
		errors = append(errors, fmt.Sprintf("KNOWLEDGE_CHUNK_SIZE must be positive, got %d", cfg.KnowledgeCfg.ChunkSize))
	}

	if cfg.KnowledgeCfg.ChunkOverlap < 0 || cfg.KnowledgeCfg.ChunkOverlap >= cfg.KnowledgeCfg.ChunkSize {
		errors = append(errors, fmt.Sprintf("KNOWLEDGE_CHUNK_OVERLAP must be between 0 and CHUNK_SIZE(%d), got %d", cfg.KnowledgeCfg.ChunkSize, cfg.KnowledgeCfg.ChunkOverlap))
	}

	if cfg.RetrievalCfg.SearchK < 1 {
		errors = append(errors, fmt.Sprintf("RETRIEVAL_SEARCH_K must be positive, got %d", cfg.RetrievalCfg.SearchK))
	}

	if cfg.RetrievalCfg.ContextLimit < 1 || cfg.RetrievalCfg.ContextLimit > cfg.RetrievalCfg.SearchK {
		errors = append(errors, fmt.Sprintf("RETRIEVAL_CONTEXT_LIMIT must be between 1 and SEARCH_K(%d), got %d", cfg.RetrievalCfg.SearchK, cfg.RetrievalCfg.ContextLimit))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
