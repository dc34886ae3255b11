package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	HTTPAddr string `mapstructure:"http_addr"`

	// Demand simulation
	RefreshInterval    time.Duration `mapstructure:"refresh_interval"`
	ManualRefreshDelay time.Duration `mapstructure:"manual_refresh_delay"`
	CacheTTL           time.Duration `mapstructure:"cache_ttl"`
	Ticks              int           `mapstructure:"ticks"`

	// Device origin; when both are zero the provider reports unavailable
	// and the simulator falls back to the default origin.
	DeviceLat float64 `mapstructure:"device_latitude"`
	DeviceLng float64 `mapstructure:"device_longitude"`

	GeocoderBaseURL string `mapstructure:"geocoder_base_url"`

	// Event pipeline
	KafkaEnabled      bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList   string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs  int    `mapstructure:"session_timeout_ms"`
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputFormat      string `mapstructure:"output_format"`
	OutputDestination string `mapstructure:"output_destination"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`

	// Stores
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	PostgresDSN   string `mapstructure:"postgres_dsn"`
	SeedEntities  int    `mapstructure:"seed_entities"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("http_addr", ":8080")
	viper.SetDefault("refresh_interval", "30s")
	viper.SetDefault("manual_refresh_delay", "1s")
	viper.SetDefault("cache_ttl", "5m")
	viper.SetDefault("geocoder_base_url", "https://api.bigdatacloud.net/data")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// HasDeviceOrigin reports whether the config pins a device position.
func (cfg *Config) HasDeviceOrigin() bool {
	return cfg.DeviceLat != 0 || cfg.DeviceLng != 0
}
