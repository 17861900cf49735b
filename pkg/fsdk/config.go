package fsdk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL    string `mapstructure:"baseUrl"`
	APIVersion string `mapstructure:"apiVersion"`
	ExportDir  string `mapstructure:"exportDir"`

	v *viper.Viper // instance-specific viper
}

const (
	EnvPrefix  = "FINTRACK"
	ConfigName = "fintrack"
	ConfigRoot = ".fintrack"

	BaseUrlKey    = "baseUrl"
	ApiVersionKey = "apiVersion"
	ExportDirKey  = "exportDir"

	// DefaultBaseURL is the development backend address.
	DefaultBaseURL = "http://localhost:8000"
)

// LoadConfig creates a new Config instance with its own viper.
// This is the only way to load config (no global state).
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	} else {
		// Project config (tracked) - fintrack.yaml in the current directory
		for _, name := range []string{"fintrack.yaml", "fintrack.yml", ".fintrack.yaml"} {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				if err := v.ReadInConfig(); err == nil {
					break
				}
			}
		}

		// Merge local overrides (untracked) - .fintrack/config.yaml
		localConfigPath := filepath.Join(ConfigRoot, "config.yaml")
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("merging local config: %w", err)
			}
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.v = v
	return &cfg, nil
}

// GetString returns a string value from the underlying viper instance.
func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

// Viper returns the underlying viper instance, for CLI flag binding and
// dynamic config access.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

func setDefaults(v *viper.Viper) {
	if !v.IsSet(BaseUrlKey) {
		v.SetDefault(BaseUrlKey, DefaultBaseURL)
	} else {
		normalized := strings.TrimRight(v.GetString(BaseUrlKey), "/")
		v.Set(BaseUrlKey, normalized)
	}

	if !v.IsSet(ApiVersionKey) {
		v.SetDefault(ApiVersionKey, "v1")
	}

	// Registered with an empty default so env overrides reach Unmarshal.
	v.SetDefault(ExportDirKey, "")
}

// ConfigFileUsed returns the config file that was used (if any).
func (c *Config) ConfigFileUsed() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}
