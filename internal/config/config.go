package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	API      APIConfig      `yaml:"api"`
	Cache    CacheConfig    `yaml:"cache"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Watch    WatchConfig    `yaml:"watch"`
	LogLevel string         `yaml:"log_level"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// APIConfig configures the video platform client. An empty APIKey is not a
// load error; requests fail with a configuration error instead.
type APIConfig struct {
	BaseURL         string        `yaml:"base_url"`
	APIKey          string        `yaml:"api_key"`
	PageSize        int           `yaml:"page_size"`
	Timeout         time.Duration `yaml:"timeout"`
	WindowStartDays int           `yaml:"window_start_days"`
	WindowEndDays   int           `yaml:"window_end_days"`
}

// CacheConfig controls the outbound revalidation window. A negative TTL
// disables it.
type CacheConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type WatchConfig struct {
	Interval   time.Duration  `yaml:"interval"`
	RunTimeout time.Duration  `yaml:"run_timeout"`
	Keywords   []WatchKeyword `yaml:"keywords"`
}

type WatchKeyword struct {
	Keyword string `yaml:"keyword"`
	Type    string `yaml:"type"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.RequestTimeout == 0 {
		c.HTTP.RequestTimeout = 15 * time.Second
	}
	if c.HTTP.ShutdownTimeout == 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if c.API.APIKey == "" {
		c.API.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = 50
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 10 * time.Second
	}
	if c.API.WindowStartDays == 0 {
		c.API.WindowStartDays = 30
	}
	if c.API.WindowEndDays == 0 {
		c.API.WindowEndDays = 7
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Hour
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "trend_hunter"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "rankings"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "ranking_events"
	}
	if c.Watch.Interval == 0 {
		c.Watch.Interval = time.Hour
	}
	if c.Watch.RunTimeout == 0 {
		c.Watch.RunTimeout = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
