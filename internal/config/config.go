package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"wedding-planner/internal/models"
)

// Config holds the application configuration
type Config struct {
	DataDir       string `yaml:"data_dir"`
	StorageDriver string `yaml:"storage"`

	GeminiAPIKey  string `yaml:"gemini_api_key"`
	GeminiModel   string `yaml:"gemini_model"`
	GeminiBaseURL string `yaml:"gemini_base_url"`

	Wedding WeddingConfig `yaml:"wedding"`

	// CouplePhone is the WhatsApp number whose messages go to the assistant.
	CouplePhone string `yaml:"couple_phone"`

	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

// WeddingConfig is the YAML form of the wedding data.
type WeddingConfig struct {
	Names    string `yaml:"names"`
	Date     string `yaml:"date"`
	Budget   string `yaml:"budget"`
	Location string `yaml:"location"`
}

func defaults() *Config {
	w := models.DefaultWedding()
	return &Config{
		DataDir:       "data",
		StorageDriver: "file",
		Wedding: WeddingConfig{
			Names:    w.Names,
			Date:     w.Date,
			Budget:   w.Budget.String(),
			Location: w.Location,
		},
		LogFormat: "json",
		LogLevel:  "info",
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// at path, and environment variables, in that order of precedence.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = os.Getenv("WEDDING_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.DataDir = getEnv("WEDDING_DATA_DIR", cfg.DataDir)
	cfg.StorageDriver = getEnv("WEDDING_STORAGE", cfg.StorageDriver)
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", getEnv("API_KEY", cfg.GeminiAPIKey))
	cfg.GeminiModel = getEnv("GEMINI_MODEL", cfg.GeminiModel)
	cfg.GeminiBaseURL = getEnv("GEMINI_BASE_URL", cfg.GeminiBaseURL)
	cfg.Wedding.Names = getEnv("WEDDING_NAMES", cfg.Wedding.Names)
	cfg.Wedding.Date = getEnv("WEDDING_DATE", cfg.Wedding.Date)
	cfg.Wedding.Budget = getEnv("WEDDING_BUDGET", cfg.Wedding.Budget)
	cfg.Wedding.Location = getEnv("WEDDING_LOCATION", cfg.Wedding.Location)
	cfg.CouplePhone = getEnv("COUPLE_PHONE", cfg.CouplePhone)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if _, err := cfg.WeddingData(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WeddingData converts the configured wedding into the model type.
func (c *Config) WeddingData() (models.WeddingData, error) {
	budget, err := decimal.NewFromString(strings.TrimSpace(c.Wedding.Budget))
	if err != nil {
		return models.WeddingData{}, fmt.Errorf("invalid wedding budget %q: %w", c.Wedding.Budget, err)
	}
	if budget.IsNegative() {
		return models.WeddingData{}, fmt.Errorf("invalid wedding budget %q: negative", c.Wedding.Budget)
	}
	w := models.WeddingData{
		Names:    c.Wedding.Names,
		Date:     c.Wedding.Date,
		Budget:   budget,
		Location: c.Wedding.Location,
	}
	if _, err := w.EventDate(); err != nil {
		return models.WeddingData{}, err
	}
	return w, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
