package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App    *AppConfig
	Server *ServerConfig
	Seed   *SeedConfig
}

type AppConfig struct {
	Name            string
	Version         string
	Environment     string
	LogLevel        string
	LogFormat       string
	DefaultCurrency string
}

type ServerConfig struct {
	Host string
	Port int
}

type SeedConfig struct {
	Enabled bool
}

// Load reads configuration from command-line flags with CARAUCTION_-prefixed
// environment variable overrides (e.g. CARAUCTION_SERVER_PORT).
func Load() (*Config, error) {
	flags := pflag.NewFlagSet("carauction", pflag.ContinueOnError)

	// app config
	flags.String("environment", "development", "deployment environment")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text or json)")
	flags.String("default-currency", "USD", "currency assumed when requests omit one")

	// server config
	flags.String("server-host", "0.0.0.0", "listen host")
	flags.Int("server-port", 8080, "listen port")

	// seed config
	flags.Bool("seed", false, "seed demo vehicles and auctions at startup")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	v.AutomaticEnv()
	v.SetEnvPrefix("CARAUCTION")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return &Config{
		App: &AppConfig{
			Name:            "CarAuction",
			Version:         "1.0.0",
			Environment:     v.GetString("environment"),
			LogLevel:        v.GetString("log-level"),
			LogFormat:       v.GetString("log-format"),
			DefaultCurrency: v.GetString("default-currency"),
		},
		Server: &ServerConfig{
			Host: v.GetString("server-host"),
			Port: v.GetInt("server-port"),
		},
		Seed: &SeedConfig{
			Enabled: v.GetBool("seed"),
		},
	}, nil
}
