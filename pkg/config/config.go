package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the client
type Config struct {
	// Remote endpoint configuration
	API APIConfig `mapstructure:"api"`

	// Streaming upload configuration
	Upload UploadConfig `mapstructure:"upload"`

	// Local persistent storage configuration
	Storage StorageConfig `mapstructure:"storage"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
}

// APIConfig holds the remote endpoint and transport timeouts. Defaults are
// generous so large media uploads survive slow mobile networks.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	ConnectTimeout int    `mapstructure:"connect_timeout"` // seconds
	ReadTimeout    int    `mapstructure:"read_timeout"`    // minutes
	WriteTimeout   int    `mapstructure:"write_timeout"`   // minutes
}

// UploadConfig holds the streaming upload parameters, including the
// extended-timeout tier used above the large-file threshold.
type UploadConfig struct {
	ChunkSize           int   `mapstructure:"chunk_size"`            // bytes
	ProgressInterval    int   `mapstructure:"progress_interval"`     // milliseconds
	LargeFileThreshold  int64 `mapstructure:"large_file_threshold"`  // bytes
	LargeConnectTimeout int   `mapstructure:"large_connect_timeout"` // seconds
	LargeReadTimeout    int   `mapstructure:"large_read_timeout"`    // minutes
	LargeWriteTimeout   int   `mapstructure:"large_write_timeout"`   // minutes
}

// StorageConfig holds the local key-value store location
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// ConnectTimeoutDuration returns the default connect timeout as a duration
func (c *APIConfig) ConnectTimeoutDuration() time.Duration {
	return time.Duration(c.ConnectTimeout) * time.Second
}

// ReadTimeoutDuration returns the default read timeout as a duration
func (c *APIConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Minute
}

// WriteTimeoutDuration returns the default write timeout as a duration
func (c *APIConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(c.WriteTimeout) * time.Minute
}

// ProgressIntervalDuration returns the progress throttle as a duration
func (u *UploadConfig) ProgressIntervalDuration() time.Duration {
	return time.Duration(u.ProgressInterval) * time.Millisecond
}

// Host returns the host component of the configured base URL
func (c *APIConfig) Host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("aprcv")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".aprcv"))
	}

	setDefaults()

	viper.SetEnvPrefix("aprcv")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideWithEnv(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration without touching disk or env;
// used by tests and as the base for programmatic construction.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://capstoneproject-production-2a06.up.railway.app/",
			ConnectTimeout: 60,
			ReadTimeout:    30,
			WriteTimeout:   60,
		},
		Upload: UploadConfig{
			ChunkSize:           16 * 1024,
			ProgressInterval:    250,
			LargeFileThreshold:  100 * 1024 * 1024,
			LargeConnectTimeout: 90,
			LargeReadTimeout:    60,
			LargeWriteTimeout:   90,
		},
		Storage:  StorageConfig{Path: defaultStoragePath()},
		LogLevel: "info",
	}
}

// setDefaults sets default configuration values
func setDefaults() {
	d := Default()

	viper.SetDefault("api.base_url", d.API.BaseURL)
	viper.SetDefault("api.connect_timeout", d.API.ConnectTimeout)
	viper.SetDefault("api.read_timeout", d.API.ReadTimeout)
	viper.SetDefault("api.write_timeout", d.API.WriteTimeout)

	viper.SetDefault("upload.chunk_size", d.Upload.ChunkSize)
	viper.SetDefault("upload.progress_interval", d.Upload.ProgressInterval)
	viper.SetDefault("upload.large_file_threshold", d.Upload.LargeFileThreshold)
	viper.SetDefault("upload.large_connect_timeout", d.Upload.LargeConnectTimeout)
	viper.SetDefault("upload.large_read_timeout", d.Upload.LargeReadTimeout)
	viper.SetDefault("upload.large_write_timeout", d.Upload.LargeWriteTimeout)

	viper.SetDefault("storage.path", d.Storage.Path)
	viper.SetDefault("log_level", d.LogLevel)
}

// overrideWithEnv overrides configuration with plain environment variables
func overrideWithEnv(config *Config) {
	if base := os.Getenv("APRCV_SERVER"); base != "" {
		config.API.BaseURL = base
	}
	if path := os.Getenv("APRCV_STORAGE_PATH"); path != "" {
		config.Storage.Path = path
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
}

// validate validates the configuration
func validate(config *Config) error {
	u, err := url.Parse(config.API.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid api base URL: %q", config.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api base URL must be http(s): %q", config.API.BaseURL)
	}

	if cs := config.Upload.ChunkSize; cs < 8*1024 || cs > 64*1024 {
		return fmt.Errorf("upload chunk size must be between 8 KiB and 64 KiB: %d", cs)
	}
	if config.Upload.ProgressInterval <= 0 {
		return fmt.Errorf("upload progress interval must be positive")
	}
	if config.Upload.LargeFileThreshold <= 0 {
		return fmt.Errorf("large file threshold must be positive")
	}

	if config.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}

	return nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aprcv"
	}
	return filepath.Join(home, ".aprcv")
}
