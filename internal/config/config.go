package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type StorefrontConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	StoreDB    `yaml:"store_db"`
	Redis      `yaml:"redis"`
	Kafka      `yaml:"kafka"`
	Assets     `yaml:"assets"`
	Payments   `yaml:"payments"`
	LogConfig  `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type StoreDB struct {
	Dsn           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
}

type Redis struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	PageTTL  time.Duration `yaml:"page_ttl"`
}

type Kafka struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	OrderTopic string `yaml:"order_topic"`
	StoreTopic string `yaml:"store_topic"`
}

type Assets struct {
	BaseURL   string `yaml:"base_url"`
	UploadDir string `yaml:"upload_dir"`
	Bucket    string `yaml:"bucket"`
}

type Payments struct {
	// SimulatedDelay is how long the mocked gateway waits before marking a
	// payment completed, standing in for an out-of-process callback.
	SimulatedDelay time.Duration `yaml:"simulated_delay"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func MustLoad() *StorefrontConfig {

	// Processing env config variable and file
	configPath := os.Getenv("STOREFRONT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("STOREFRONT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg StorefrontConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
