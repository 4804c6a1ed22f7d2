package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"studio/internal/products"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type ScraperConfig struct {
	UserAgent     string `yaml:"userAgent"`
	PageTimeoutMs int    `yaml:"pageTimeoutMs"`
	FeedTimeoutMs int    `yaml:"feedTimeoutMs"`
	MaxProducts   int    `yaml:"maxProducts"`
	MinCandidates int    `yaml:"minCandidates"`
}

type BrandConfig struct {
	TimeoutMs int `yaml:"timeoutMs"`
}

type ProxyConfig struct {
	TimeoutMs    int   `yaml:"timeoutMs"`
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`
}

type RobotsConfig struct {
	Respect bool `yaml:"respect"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	URL string `yaml:"url"`
}

type RateLimitConfig struct {
	DefaultPerMinute int `yaml:"defaultPerMinute"`
}

type RetentionConfig struct {
	Enabled              bool `yaml:"enabled"`
	SessionDays          int  `yaml:"sessionDays"`
	SweepIntervalMinutes int  `yaml:"sweepIntervalMinutes"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scraper   ScraperConfig   `yaml:"scraper"`
	Brand     BrandConfig     `yaml:"brand"`
	Proxy     ProxyConfig     `yaml:"proxy"`
	Robots    RobotsConfig    `yaml:"robots"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Retention RetentionConfig `yaml:"retention"`
}

func Load(path string) *Config {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open config file: %v", err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		log.Fatalf("failed to decode config: %v", err)
	}

	return &cfg
}

// ScraperOptions converts the YAML scraper section into an immutable
// products.Options value; zero fields keep the package defaults.
func (c *Config) ScraperOptions() products.Options {
	opts := products.DefaultOptions()
	if c.Scraper.UserAgent != "" {
		opts.UserAgent = c.Scraper.UserAgent
	}
	if c.Scraper.PageTimeoutMs > 0 {
		opts.PageTimeout = time.Duration(c.Scraper.PageTimeoutMs) * time.Millisecond
	}
	if c.Scraper.FeedTimeoutMs > 0 {
		opts.FeedTimeout = time.Duration(c.Scraper.FeedTimeoutMs) * time.Millisecond
	}
	if c.Scraper.MaxProducts > 0 {
		opts.MaxProducts = c.Scraper.MaxProducts
	}
	if c.Scraper.MinCandidates > 0 {
		opts.MinCandidates = c.Scraper.MinCandidates
	}
	opts.RespectRobots = c.Robots.Respect
	return opts
}
