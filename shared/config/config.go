package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// Duration parses "15s" style values, which yaml.v2 does not do for
// time.Duration on its own.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Public struct {
	Server         Server   `yaml:"server"`
	StorageBackend string   `yaml:"storage_backend"` // "mongo" or "memory" (dev/testing)
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Secure         bool     `yaml:"secure"`          // set HSTS when served over TLS
	MaxBodyLen     int      `yaml:"max_body_len"`    // rune limit for comment/message bodies
	StorageTimeout Duration `yaml:"storage_timeout"` // per-call document store deadline
	MongoDatabase  string   `yaml:"mongo_database"`
}

type Server struct {
	Port            string   `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	IdleTimeout     Duration `yaml:"idle_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

type Private struct {
	MongoURI string `yaml:"mongo_uri"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.Server.Port == "" {
		c.Public.Server.Port = "8080"
	}
	if c.Public.Server.ReadTimeout == 0 {
		c.Public.Server.ReadTimeout = Duration(15 * time.Second)
	}
	if c.Public.Server.WriteTimeout == 0 {
		c.Public.Server.WriteTimeout = Duration(15 * time.Second)
	}
	if c.Public.Server.IdleTimeout == 0 {
		c.Public.Server.IdleTimeout = Duration(60 * time.Second)
	}
	if c.Public.Server.ShutdownTimeout == 0 {
		c.Public.Server.ShutdownTimeout = Duration(30 * time.Second)
	}
	if c.Public.StorageBackend == "" {
		c.Public.StorageBackend = "mongo"
	}
	if c.Public.StorageTimeout == 0 {
		c.Public.StorageTimeout = Duration(10 * time.Second)
	}
	if c.Public.MaxBodyLen == 0 {
		c.Public.MaxBodyLen = 10_000
	}
	if c.Public.MongoDatabase == "" {
		c.Public.MongoDatabase = "shelfmates"
	}
}
