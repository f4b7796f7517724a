package config

import (
	"os"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is loaded in three layers: config.yaml (if present), then
// environment variables with the HRMS prefix, then command line flags.
type Config struct {
	APIHost       string `yaml:"api_host" conf:"flag:api-host"`
	BaseURL       string `yaml:"base_url" conf:"flag:base-url"`
	DBUsername    string `yaml:"db_username"`
	DBPassword    string `yaml:"db_password" conf:"noprint"`
	DBHost        string `yaml:"db_host"`
	DBPort        string `yaml:"db_port"`
	DBName        string `yaml:"db_name"`
	DisableTLS    bool   `yaml:"disable_tls"`
	DebugQueries  bool   `yaml:"debug_queries"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password" conf:"noprint"`
	JWTKey        string `yaml:"jwt_key" conf:"noprint"`
}

// ErrHelp is returned when the user asked for usage output.
var ErrHelp = conf.ErrHelpWanted

func NewConfig() (*Config, error) {
	var c Config

	if raw, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, errors.Wrap(err, "parsing config.yaml")
		}
	}

	if err := conf.Parse(os.Args[1:], "HRMS", &c); err != nil {
		if err == conf.ErrHelpWanted {
			usage, uErr := conf.Usage("HRMS", &c)
			if uErr != nil {
				return nil, errors.Wrap(uErr, "generating usage")
			}
			os.Stdout.WriteString(usage + "\n")
			return nil, ErrHelp
		}
		return nil, errors.Wrap(err, "parsing configuration")
	}

	if c.APIHost == "" {
		c.APIHost = ":8080"
	}
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}

	if c.DBUsername == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.JWTKey == "" {
		return nil, errors.New("missing jwt signing key")
	}

	return &c, nil
}
