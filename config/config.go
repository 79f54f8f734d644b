package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"service-desk-bot/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Bot
	Telegram TelegramConfig
	Webhook  WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken string
	// BaseURL is the externally reachable origin, e.g. https://bot.onrender.com
	BaseURL                 string
	AdminChatID             int64
	APITimeout              time.Duration
	DropPendingUpdates      bool
	DeleteWebhookOnShutdown bool
}

// VerifyMode selects which webhook authentication checks run.
type VerifyMode string

const (
	VerifyPathToken    VerifyMode = "path_token"
	VerifyHeaderSecret VerifyMode = "header_secret"
	VerifyBoth         VerifyMode = "both"
)

type WebhookConfig struct {
	Secret     string
	VerifyMode VerifyMode
}

var (
	ErrMissingBotToken   = errors.New("telegram.bot_token (BOT_TOKEN) is required")
	ErrMissingBaseURL    = errors.New("telegram.base_url (BASE_URL) is required")
	ErrInvalidBaseURL    = errors.New("telegram.base_url must be an absolute http(s) URL")
	ErrInvalidVerifyMode = errors.New("webhook.verify_mode must be one of path_token, header_secret, both")
	ErrInvalidPort       = errors.New("http_server.port must be positive")
)

// envAliases lists the environment variables accepted for each key, in priority order.
var envAliases = map[string][]string{
	"environment.name":                    {"ENVIRONMENT_NAME"},
	"http_server.port":                    {"HTTP_SERVER_PORT", "PORT"},
	"http_server.mode":                    {"HTTP_SERVER_MODE"},
	"logger.level":                        {"LOGGER_LEVEL"},
	"logger.mode":                         {"LOGGER_MODE"},
	"logger.encoding":                     {"LOGGER_ENCODING"},
	"logger.color_enabled":                {"LOGGER_COLOR_ENABLED"},
	"telegram.bot_token":                  {"TELEGRAM_BOT_TOKEN", "BOT_TOKEN"},
	"telegram.base_url":                   {"TELEGRAM_BASE_URL", "BASE_URL"},
	"telegram.admin_chat_id":              {"TELEGRAM_ADMIN_CHAT_ID", "ADMIN_ID"},
	"telegram.api_timeout":                {"TELEGRAM_API_TIMEOUT"},
	"telegram.drop_pending_updates":       {"TELEGRAM_DROP_PENDING_UPDATES"},
	"telegram.delete_webhook_on_shutdown": {"TELEGRAM_DELETE_WEBHOOK_ON_SHUTDOWN"},
	"webhook.secret":                      {"WEBHOOK_SECRET"},
	"webhook.verify_mode":                 {"WEBHOOK_VERIFY_MODE"},
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = strings.TrimSpace(v.GetString("telegram.bot_token"))
	cfg.Telegram.BaseURL = strings.TrimRight(strings.TrimSpace(v.GetString("telegram.base_url")), "/")
	cfg.Telegram.AdminChatID = v.GetInt64("telegram.admin_chat_id")
	cfg.Telegram.APITimeout = v.GetDuration("telegram.api_timeout")
	cfg.Telegram.DropPendingUpdates = v.GetBool("telegram.drop_pending_updates")
	cfg.Telegram.DeleteWebhookOnShutdown = v.GetBool("telegram.delete_webhook_on_shutdown")

	// Webhook
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	cfg.Webhook.VerifyMode = VerifyMode(strings.ToLower(strings.TrimSpace(v.GetString("webhook.verify_mode"))))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Telegram.BotToken == "" {
		result = multierror.Append(result, ErrMissingBotToken)
	}

	if c.Telegram.BaseURL == "" {
		result = multierror.Append(result, ErrMissingBaseURL)
	} else if u, err := url.Parse(c.Telegram.BaseURL); err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		result = multierror.Append(result, ErrInvalidBaseURL)
	}

	switch c.Webhook.VerifyMode {
	case VerifyPathToken, VerifyHeaderSecret, VerifyBoth:
	default:
		result = multierror.Append(result, ErrInvalidVerifyMode)
	}

	if c.HTTPServer.Port <= 0 {
		result = multierror.Append(result, ErrInvalidPort)
	}

	return result.ErrorOrNil()
}

// WebhookPath is the route Telegram posts updates to.
func (c *Config) WebhookPath() string {
	return "/webhook/" + c.Telegram.BotToken
}

// WebhookURL is the externally reachable URL registered with setWebhook.
func (c *Config) WebhookURL() string {
	return c.Telegram.BaseURL + c.WebhookPath()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)
	v.SetDefault("telegram.admin_chat_id", 0)
	v.SetDefault("telegram.api_timeout", "10s")
	v.SetDefault("telegram.drop_pending_updates", true)
	v.SetDefault("telegram.delete_webhook_on_shutdown", true)
	v.SetDefault("webhook.verify_mode", string(VerifyBoth))
}
