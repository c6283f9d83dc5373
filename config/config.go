package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log         Logger            `mapstructure:"logger"`
	DB          Database          `mapstructure:"database"`
	API         API               `mapstructure:"api"`
	Session     Session           `mapstructure:"session"`
	Calendar    Calendar          `mapstructure:"calendar"`
	Gemini      Gemini            `mapstructure:"gemini"`
	Maintenance MaintenanceConfig `mapstructure:"maintenance"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port int `mapstructure:"port"`
}

// Session controls the analysis session store. Backend is either "memory"
// (go-cache, bounded by TTL + janitor sweep) or "postgres".
type Session struct {
	Backend         string        `mapstructure:"backend"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// Calendar selects the chart calculation authority. Provider "local" runs the
// in-process engine, "remote" calls an external provider over HTTP.
type Calendar struct {
	Provider string        `mapstructure:"provider"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type Gemini struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseURL             string        `mapstructure:"base_url"`
	BaseModel           string        `mapstructure:"base_model"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int           `mapstructure:"max_token_per_minute"`
	Temperature         float64       `mapstructure:"temperature"`
	MaxOutputTokens     int           `mapstructure:"max_output_tokens"`
}

type MaintenanceConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	CleanupSchedule string `mapstructure:"cleanup_schedule"`
}

func Load() (*Config, error) {
	// Local development convenience, ignored when no .env exists.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("session.backend", "memory")
	viper.SetDefault("session.ttl", 24*time.Hour)
	viper.SetDefault("session.cleanup_interval", time.Hour)
	viper.SetDefault("calendar.provider", "local")
	viper.SetDefault("calendar.timeout", 10*time.Second)
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("gemini.base_model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", 30*time.Second)
	viper.SetDefault("gemini.max_request_per_minute", 15)
	viper.SetDefault("gemini.max_token_per_minute", 1000000)
	viper.SetDefault("gemini.temperature", 0.7)
	viper.SetDefault("gemini.max_output_tokens", 500)
	viper.SetDefault("maintenance.enabled", true)
	viper.SetDefault("maintenance.cleanup_schedule", "*/30 * * * *")
}
