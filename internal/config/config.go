package config

import (
	"errors"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Engine EngineConfig `mapstructure:"engine"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Batch  BatchConfig  `mapstructure:"batch"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig guards the API when Secret is non-empty.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Expire int    `mapstructure:"expire"` // hours
}

type EngineConfig struct {
	MaxHandSize int    `mapstructure:"maxHandSize"`
	LevelsFile  string `mapstructure:"levelsFile"`
}

type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttlSeconds"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
	MaxStates   int `mapstructure:"maxStates"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

var GlobalConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire", 72)
	v.SetDefault("engine.maxHandSize", 12)
	v.SetDefault("engine.levelsFile", "")
	v.SetDefault("cache.ttlSeconds", 600)
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("batch.maxStates", 64)
	v.SetDefault("cors.allowOrigins", []string{})
}

// Load reads the YAML file at path over the built-in defaults, then
// SPECTATOR_* environment variables (SPECTATOR_REDIS_ADDR for redis.addr).
// A missing file is not an error; every key has a default.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SPECTATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default is the configuration with no file at all.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		log.Fatalf("Unable to build default config, %v", err)
	}
	return cfg
}

func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}
	GlobalConfig = cfg
}
