package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App   AppConfig   `yaml:"app"`
	Demo  DemoConfig  `yaml:"demo"`
	HTTP  HTTPConfig  `yaml:"http"`
	Redis RedisConfig `yaml:"redis"`
	Kafka KafkaConfig `yaml:"kafka"`
}

type AppConfig struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
}

type DemoConfig struct {
	Enabled bool `yaml:"enabled"`
}

type HTTPConfig struct {
	Enabled      bool     `yaml:"enabled"`
	Address      string   `yaml:"address"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type RedisConfig struct {
	Addr            string `yaml:"addr"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	BoardTTLSeconds int    `yaml:"board_ttl_seconds"`
}

// Enabled reports whether a redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
	PublishRetries     int      `yaml:"publish_retries"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func Default() *Config {
	return &Config{
		App:  AppConfig{Env: "development"},
		HTTP: HTTPConfig{Address: ":8080", AllowOrigins: []string{"*"}},
		Redis: RedisConfig{
			BoardTTLSeconds: 30,
		},
		Kafka: KafkaConfig{
			BookingTopic:       "flight-bookings",
			NotificationsTopic: "flight-notifications",
			GroupID:            "flightregistry-worker",
			PublishRetries:     3,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file
// is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
