// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Shopee  ShopeeConfig  `yaml:"shopee"`
	Bot     BotConfig     `yaml:"bot"`
	Digest  DigestConfig  `yaml:"digest"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// ShopeeConfig defines the affiliate API credentials and endpoint settings.
type ShopeeConfig struct {
	AppID      string           `yaml:"app_id"`
	Secret     string           `yaml:"secret"`
	BaseURL    string           `yaml:"base_url"`
	Timeout    time.Duration    `yaml:"timeout"`
	Pagination PaginationConfig `yaml:"pagination"`
}

// PaginationConfig bounds report pagination.
type PaginationConfig struct {
	MaxPages  int           `yaml:"max_pages"`
	PageDelay time.Duration `yaml:"page_delay"`
}

// BotConfig defines Telegram bot settings.
type BotConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Token       string        `yaml:"token"`
	PollTimeout time.Duration `yaml:"poll_timeout"`
	AdminChatID int64         `yaml:"admin_chat_id"`
}

// DigestConfig defines the scheduled commission digest.
type DigestConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Window   time.Duration `yaml:"window"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyShopeeDefaults(&cfg.Shopee)
	applyBotDefaults(&cfg.Bot)
	applyDigestDefaults(&cfg.Digest)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyShopeeDefaults(s *ShopeeConfig) {
	if s.BaseURL == "" {
		s.BaseURL = "https://open-api.affiliate.shopee.com.br/graphql"
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	if s.Pagination.MaxPages == 0 {
		s.Pagination.MaxPages = 10
	}
	if s.Pagination.PageDelay == 0 {
		s.Pagination.PageDelay = time.Second
	}
}

func applyBotDefaults(b *BotConfig) {
	if b.PollTimeout == 0 {
		b.PollTimeout = 30 * time.Second
	}
}

func applyDigestDefaults(d *DigestConfig) {
	if d.Interval == 0 {
		d.Interval = 24 * time.Hour
	}
	if d.Window == 0 {
		d.Window = 24 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Shopee.AppID == "" {
		errs = append(errs, fmt.Errorf("shopee.app_id is required"))
	}
	if cfg.Shopee.Secret == "" {
		errs = append(errs, fmt.Errorf("shopee.secret is required"))
	}

	if cfg.Bot.Enabled && cfg.Bot.Token == "" {
		errs = append(errs, fmt.Errorf("bot.token is required when the bot is enabled"))
	}

	if cfg.Digest.Enabled {
		if !cfg.Bot.Enabled {
			errs = append(errs, fmt.Errorf("digest requires the bot to be enabled"))
		}
		if cfg.Bot.AdminChatID == 0 {
			errs = append(errs, fmt.Errorf("bot.admin_chat_id is required when the digest is enabled"))
		}
	}

	return errors.Join(errs...)
}
