package utils

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	TMDB    TMDBConfig
	Image   ImageConfig
	Limiter LimiterConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// TMDBConfig holds the upstream catalog settings. APIKey is a secret: it is
// attached to outgoing requests and must never be logged.
type TMDBConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type ImageConfig struct {
	BaseURL string
}

type LimiterConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(envFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "moviehub")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("TMDB_API_KEY", "")
	v.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	v.SetDefault("TMDB_TIMEOUT", "0s")
	v.SetDefault("IMAGE_BASE_URL", "https://image.tmdb.org/t/p")
	v.SetDefault("LIMITER_ENABLED", true)
	v.SetDefault("LIMITER_RPS", 10)
	v.SetDefault("LIMITER_BURST", 20)

	// .env bersifat opsional, environment tetap dibaca
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		TMDB: TMDBConfig{
			APIKey:  v.GetString("TMDB_API_KEY"),
			BaseURL: v.GetString("TMDB_BASE_URL"),
			Timeout: v.GetDuration("TMDB_TIMEOUT"),
		},
		Image: ImageConfig{
			BaseURL: v.GetString("IMAGE_BASE_URL"),
		},
		Limiter: LimiterConfig{
			Enabled: v.GetBool("LIMITER_ENABLED"),
			RPS:     v.GetFloat64("LIMITER_RPS"),
			Burst:   v.GetInt("LIMITER_BURST"),
		},
	}

	return config, nil
}
