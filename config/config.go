package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"solar-inspector/internal/domain/severity"
)

const (
	defaultPort             = 5000
	defaultDataDir          = "data"
	defaultStaticDir        = "static"
	defaultArtifactCacheTTL = 10 * time.Minute
	defaultSessionTTL       = 30 * time.Minute
)

type Config struct {
	Port             int
	Debug            bool
	DataDir          string
	StaticDir        string
	ThresholdsFile   string
	Thresholds       severity.Thresholds
	AnalyzeLatency   time.Duration
	ArtifactCacheTTL time.Duration
	CORSOrigins      []string
	MetricsEnabled   bool
	SessionTTL       time.Duration
	TelegramToken    string
}

// ReportPath путь к detection_report.json
func (c *Config) ReportPath() string {
	return filepath.Join(c.DataDir, "detection_report.json")
}

// SummaryPath путь к summary_statistics.json
func (c *Config) SummaryPath() string {
	return filepath.Join(c.DataDir, "summary_statistics.json")
}

// OriginalDir каталог исходных снимков
func (c *Config) OriginalDir() string {
	return filepath.Join(c.StaticDir, "images", "original")
}

// ResultDir каталог размеченных снимков
func (c *Config) ResultDir() string {
	return filepath.Join(c.StaticDir, "images", "results")
}

// Addr адрес для http.Server
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             defaultPort,
		DataDir:          envOr("DATA_DIR", defaultDataDir),
		StaticDir:        envOr("STATIC_DIR", defaultStaticDir),
		ThresholdsFile:   os.Getenv("THRESHOLDS_FILE"),
		Thresholds:       severity.DefaultThresholds(),
		ArtifactCacheTTL: defaultArtifactCacheTTL,
		MetricsEnabled:   true,
		SessionTTL:       defaultSessionTTL,
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
	}

	var err error
	if v := os.Getenv("PORT"); v != "" {
		if cfg.Port, err = strconv.Atoi(v); err != nil || cfg.Port <= 0 || cfg.Port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
	}
	if cfg.Debug, err = envBool("DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.MetricsEnabled, err = envBool("METRICS_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.AnalyzeLatency, err = envDuration("ANALYZE_LATENCY", 0); err != nil {
		return nil, err
	}
	if cfg.ArtifactCacheTTL, err = envDuration("ARTIFACT_CACHE_TTL", defaultArtifactCacheTTL); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = envDuration("SESSION_TTL", defaultSessionTTL); err != nil {
		return nil, err
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
					return nil, fmt.Errorf("invalid CORS origin %q: must start with http:// or https://", origin)
				}
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	if cfg.ThresholdsFile != "" {
		if cfg.Thresholds, err = LoadThresholds(cfg.ThresholdsFile, cfg.Thresholds); err != nil {
			return nil, err
		}
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("thresholds: %w", err)
	}

	return cfg, nil
}

// LoadThresholds читает YAML с порогами поверх base; отсутствующие ключи сохраняют значения base.
func LoadThresholds(path string, base severity.Thresholds) (severity.Thresholds, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read thresholds %s: %w", path, err)
	}

	var doc struct {
		Thresholds *severity.Thresholds `yaml:"thresholds"`
	}
	doc.Thresholds = &base
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return base, fmt.Errorf("parse thresholds %s: %w", path, err)
	}
	if doc.Thresholds == nil {
		return base, errors.New("thresholds file has an empty thresholds section")
	}
	return *doc.Thresholds, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q", key, v)
	}
	return b, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d < 0 {
		return fallback, fmt.Errorf("invalid %s %q", key, v)
	}
	return d, nil
}
