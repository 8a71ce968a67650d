package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	LockLocal = "local"
	LockRedis = "redis"
)

type Config struct {
	ServiceHost   string
	ServicePort   int
	Storage       string
	RedisEndpoint string
	RedisPassword string
	LockBackend   string
	LockTTL       time.Duration
	LockWait      time.Duration
	LogLevel      string
}

func NewConfig() (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 3000)
	v.SetDefault("Storage", StoragePostgres)
	v.SetDefault("LockBackend", LockLocal)
	v.SetDefault("LockTTL", "30s")
	v.SetDefault("LockWait", "10s")
	v.SetDefault("LogLevel", "info")

	err = v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	// Чтение .env
	err = godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}

	v.BindEnv("ServicePort", "PORT")
	v.BindEnv("Storage", "STORAGE")
	v.BindEnv("RedisEndpoint", "REDIS_ENDPOINT")
	v.BindEnv("RedisPassword", "REDIS_PASSWORD")
	v.BindEnv("LockBackend", "LOCK_BACKEND")
	v.BindEnv("LogLevel", "LOG_LEVEL")

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("unknown log level %q, keeping %s", cfg.LogLevel, logrus.GetLevel())
	}

	logrus.Info("config parsed")
	return cfg, nil
}
