package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PHISHSTATS"

// Config holds the application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Data     DataConfig     `mapstructure:"data"`
	Audit    AuditConfig    `mapstructure:"audit"`
	Report   ReportConfig   `mapstructure:"report"`
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DataConfig points at the JSON inputs.
type DataConfig struct {
	Users string `mapstructure:"users"`
	Legal string `mapstructure:"legal"`
}

// AuditConfig configures the weak password audit. Key is only used by keyed
// algorithms.
type AuditConfig struct {
	Wordlist  string `mapstructure:"wordlist"`
	Encoding  string `mapstructure:"encoding"`
	Algorithm string `mapstructure:"algorithm"`
	Key       string `mapstructure:"key"`
}

type ReportConfig struct {
	Top    int    `mapstructure:"top"`
	Format string `mapstructure:"format"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"db":        "database.path",
	"users":     "data.users",
	"legal":     "data.legal",
	"wordlist":  "audit.wordlist",
	"encoding":  "audit.encoding",
	"algorithm": "audit.algorithm",
	"key":       "audit.key",
	"top":       "report.top",
	"format":    "report.format",
	"log-level": "log.level",
	"log-file":  "log.file",
	"port":      "server.port",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "database.db")
	v.SetDefault("data.users", "users_data_online.json")
	v.SetDefault("data.legal", "legal_data_online.json")
	v.SetDefault("audit.wordlist", "rockyou.txt")
	v.SetDefault("audit.encoding", "latin-1")
	v.SetDefault("audit.algorithm", "md5")
	v.SetDefault("audit.key", "")
	v.SetDefault("report.top", 10)
	v.SetDefault("report.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("server.port", 8080)
}

// Load resolves the configuration from defaults, an optional YAML file, a .env
// file in the working directory, PHISHSTATS_* environment variables and the
// flags that were set on the command line, later sources winning. An explicit
// configFile must exist; otherwise phishstats.yaml is looked up in the working
// directory and $HOME/.phishstats.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("phishstats")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.phishstats")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no command can work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database.path must not be empty")
	}
	if c.Report.Top < 0 {
		return fmt.Errorf("report.top must not be negative, got %d", c.Report.Top)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}
