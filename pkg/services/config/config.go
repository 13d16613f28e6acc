package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/services/sov"
)

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type SourceConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// TablesConfig carries the optional overrides for the fixed lookup
// tables. Empty fields keep the defaults.
type TablesConfig struct {
	BrandSynonyms  map[string]string `mapstructure:"brand_synonyms"`
	DisplayBrands  []string          `mapstructure:"display_brands"`
	ReferenceBrand string            `mapstructure:"reference_brand"`
}

type Config struct {
	Server     ServerConfig `mapstructure:"server"`
	Source     SourceConfig `mapstructure:"source"`
	Categories []string     `mapstructure:"categories"`
	Tables     TablesConfig `mapstructure:"tables"`
}

// Load reads the YAML config file at path and fills in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("source.timeout", 30*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LookupTables merges the config overrides onto the default lookup
// tables.
func (c *Config) LookupTables() sov.Tables {
	t := sov.DefaultTables()
	if len(c.Tables.BrandSynonyms) > 0 {
		t.BrandSynonyms = c.Tables.BrandSynonyms
	}
	if len(c.Tables.DisplayBrands) > 0 {
		t.DisplayBrands = c.Tables.DisplayBrands
	}
	if c.Tables.ReferenceBrand != "" {
		t.ReferenceBrand = c.Tables.ReferenceBrand
	}
	return t
}
