package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
// Note: This is a stateless configuration - the catalogue, metadata and
// vector index are read-only files loaded once at startup.
type Config struct {
	// Environment
	Environment string
	Port        string

	// LLM API Keys
	OpenAIAPIKey string // OpenAI API key for GPT models
	GeminiAPIKey string // Google Gemini API key

	// Models for the two LLM boundaries
	VisionaryModel  string
	CalculatorModel string

	// Retrieval data files (read-only at runtime)
	CataloguePath   string
	MetadataPath    string
	VectorIndexPath string

	// Retrieval tuning. These are tuned constants, not algorithmic
	// invariants; keep them configurable.
	OversampleFactor int     // nearest-neighbor oversampling multiplier
	EngineBoost      float64 // weight of exact-engine overlap in ranking

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		VisionaryModel:    getEnv("VISIONARY_MODEL", "gpt-5-mini"),
		CalculatorModel:   getEnv("CALCULATOR_MODEL", "gpt-5-mini"),
		CataloguePath:     getEnv("CATALOGUE_PATH", "data/golden_corpus.json"),
		MetadataPath:      getEnv("METADATA_PATH", "data/corpus_metadata.json"),
		VectorIndexPath:   getEnv("VECTOR_INDEX_PATH", "data/corpus_vectors.bin"),
		OversampleFactor:  getEnvInt("ORACLE_OVERSAMPLE", 10),
		EngineBoost:       getEnvFloat("ORACLE_ENGINE_BOOST", 10.0),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && v > 0 {
		return v
	}
	return defaultValue
}
