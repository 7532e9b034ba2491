package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyAPIBaseURL         = "api.base_url"
	KeyAPITimeout         = "api.timeout"
	KeyRealtimeURL        = "realtime.url"
	KeySessionPath        = "session.path"
	KeySessionPersist     = "session.persist"
	KeyFeedPageSize       = "feed.page_size"
	KeyFeedRemoveOnAction = "feed.remove_on_action"
	KeyChatSendRate       = "chat.send_rate"
	KeyAuthListen         = "auth.listen"
	KeyAuthTimeout        = "auth.timeout"
	KeyLogLevel           = "log.level"
	KeyLogFormat          = "log.format"
	KeyCredentialsDir     = "credentials.dir"
	KeyCredentialsBackend = "credentials.backend"

	EnvPrefix = "TSL"

	BackendChain = "chain"
	BackendFile  = "file"

	configDir  = ".techsillies"
	configFile = "config.toml"
)

type Config struct {
	APIBaseURL         string
	APITimeout         time.Duration
	RealtimeURL        string
	FeedPageSize       int
	FeedRemoveOnAction bool
	ChatSendRate       float64
	AuthListen         string
	AuthTimeout        time.Duration
	LogLevel           string
	LogFormat          string
	CredentialsDir     string
	CredentialsBackend string
	ConfigFile         string

	// Viper carries the session.* keys through to the session repository.
	Viper *viper.Viper
}

type LoadOptions struct {
	Home       string
	WorkDir    string
	ConfigFile string
}

// Load merges defaults, the TOML config file and TSL_* environment variables,
// in increasing precedence. A .env in the working directory only fills
// variables that are not already set.
func Load(opts LoadOptions) (Config, error) {
	if opts.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		opts.Home = home
	}

	if opts.WorkDir != "" {
		if err := godotenv.Load(filepath.Join(opts.WorkDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v, opts.Home)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := opts.ConfigFile
	if configPath == "" {
		configPath = v.GetString("config")
	}
	if configPath == "" {
		configPath = filepath.Join(opts.Home, configDir, configFile)
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
	}

	cfg := Config{
		APIBaseURL:         strings.TrimRight(strings.TrimSpace(v.GetString(KeyAPIBaseURL)), "/"),
		APITimeout:         v.GetDuration(KeyAPITimeout),
		RealtimeURL:        strings.TrimSpace(v.GetString(KeyRealtimeURL)),
		FeedPageSize:       v.GetInt(KeyFeedPageSize),
		FeedRemoveOnAction: v.GetBool(KeyFeedRemoveOnAction),
		ChatSendRate:       v.GetFloat64(KeyChatSendRate),
		AuthListen:         v.GetString(KeyAuthListen),
		AuthTimeout:        v.GetDuration(KeyAuthTimeout),
		LogLevel:           v.GetString(KeyLogLevel),
		LogFormat:          v.GetString(KeyLogFormat),
		CredentialsDir:     v.GetString(KeyCredentialsDir),
		CredentialsBackend: strings.ToLower(strings.TrimSpace(v.GetString(KeyCredentialsBackend))),
		ConfigFile:         configPath,
		Viper:              v,
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, home string) {
	base := filepath.Join(home, configDir)

	v.SetDefault(KeyAPIBaseURL, "http://localhost:7777")
	v.SetDefault(KeyAPITimeout, 30*time.Second)
	v.SetDefault(KeyRealtimeURL, "")
	v.SetDefault(KeySessionPath, filepath.Join(base, "session.toml"))
	v.SetDefault(KeySessionPersist, []string{"user", "feed", "connections", "requests"})
	v.SetDefault(KeyFeedPageSize, 20)
	v.SetDefault(KeyFeedRemoveOnAction, false)
	v.SetDefault(KeyChatSendRate, 5.0)
	v.SetDefault(KeyAuthListen, "127.0.0.1:0")
	v.SetDefault(KeyAuthTimeout, 5*time.Minute)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyCredentialsDir, filepath.Join(base, "credentials"))
	v.SetDefault(KeyCredentialsBackend, BackendChain)
}

func (c Config) validate() error {
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", KeyAPIBaseURL, c.APIBaseURL)
	}
	if c.RealtimeURL != "" {
		parsed, err := url.Parse(c.RealtimeURL)
		if err != nil || (parsed.Scheme != "ws" && parsed.Scheme != "wss") || parsed.Host == "" {
			return fmt.Errorf("%s must be a ws(s) URL, got %q", KeyRealtimeURL, c.RealtimeURL)
		}
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyAPITimeout)
	}
	if c.AuthTimeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyAuthTimeout)
	}
	if c.FeedPageSize <= 0 {
		return fmt.Errorf("%s must be positive", KeyFeedPageSize)
	}
	if c.ChatSendRate <= 0 {
		return fmt.Errorf("%s must be positive", KeyChatSendRate)
	}
	switch c.CredentialsBackend {
	case BackendChain, BackendFile:
	default:
		return fmt.Errorf("unsupported %s %q (chain|file)", KeyCredentialsBackend, c.CredentialsBackend)
	}
	return nil
}
