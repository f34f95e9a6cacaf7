package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Pricing  PricingConfig
	Menu     MenuConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// PricingConfig holds prices as decimal strings ("2.00").
type PricingConfig struct {
	UnitPrice        string `mapstructure:"unit_price"`
	SameDaySurcharge string `mapstructure:"same_day_surcharge"`
}

// MenuConfig lists what can be ordered.
type MenuConfig struct {
	Flavors    []string
	Quantities []QuantityOption
}

// QuantityOption is one choice on the start screen.
type QuantityOption struct {
	Label string
	Count int
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
}

var defaultFlavors = []string{"Vanilla", "Chocolate", "Red Velvet", "Salted Caramel", "Coffee"}

func defaultQuantities() []map[string]any {
	return []map[string]any{
		{"label": "One Cupcake", "count": 1},
		{"label": "Six Cupcakes", "count": 6},
		{"label": "Twelve Cupcakes", "count": 12},
	}
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return home, nil
}

// DefaultPath is ~/.config/cupcake/config.toml.
func DefaultPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cupcake", "config.toml"), nil
}

// ResolvePath picks the config file: path, else $CUPCAKE_CONFIG, else DefaultPath.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if env := os.Getenv("CUPCAKE_CONFIG"); env != "" {
		return env, nil
	}
	return DefaultPath()
}

func newViper(home string) *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "cupcake", "cupcake.db"))
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.date_format", "Mon Jan 2")
	v.SetDefault("pricing.unit_price", "2.00")
	v.SetDefault("pricing.same_day_surcharge", "3.00")
	v.SetDefault("menu.flavors", defaultFlavors)
	v.SetDefault("menu.quantities", defaultQuantities())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", filepath.Join(home, ".local", "state", "cupcake", "cupcake.log"))
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetConfigType("toml")
	v.SetEnvPrefix("CUPCAKE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from file and env. Env var overrides use prefix CUPCAKE_.
// An explicit path wins over CUPCAKE_CONFIG, which wins over ~/.config/cupcake.
func Load(path string) (Config, error) {
	home, err := homeDir()
	if err != nil {
		return Config{}, err
	}
	v := newViper(home)

	if path == "" {
		path = os.Getenv("CUPCAKE_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "cupcake"))
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Defaults returns the built-in configuration with env overrides, ignoring any file.
func Defaults() (Config, error) {
	home, err := homeDir()
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := newViper(home).Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal defaults: %w", err)
	}
	return c, nil
}

// Validate rejects configs the order flow cannot run with.
func (c Config) Validate() error {
	if len(c.Menu.Flavors) == 0 {
		return errors.New("config: menu.flavors is empty")
	}
	if len(c.Menu.Quantities) == 0 {
		return errors.New("config: menu.quantities is empty")
	}
	for _, q := range c.Menu.Quantities {
		if strings.TrimSpace(q.Label) == "" {
			return errors.New("config: quantity option without label")
		}
		if q.Count <= 0 {
			return fmt.Errorf("config: quantity %q must be positive, got %d", q.Label, q.Count)
		}
	}
	if _, err := c.UnitPrice(); err != nil {
		return err
	}
	if _, err := c.SameDaySurcharge(); err != nil {
		return err
	}
	return nil
}

// UnitPrice parses pricing.unit_price.
func (c Config) UnitPrice() (decimal.Decimal, error) {
	return parsePrice("pricing.unit_price", c.Pricing.UnitPrice)
}

// SameDaySurcharge parses pricing.same_day_surcharge.
func (c Config) SameDaySurcharge() (decimal.Decimal, error) {
	return parsePrice("pricing.same_day_surcharge", c.Pricing.SameDaySurcharge)
}

func parsePrice(key, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s: %w", key, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("config: %s must not be negative", key)
	}
	return d, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config, path string) error {
	path, err := ResolvePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	quantities := make([]map[string]any, 0, len(cfg.Menu.Quantities))
	for _, q := range cfg.Menu.Quantities {
		quantities = append(quantities, map[string]any{"label": q.Label, "count": q.Count})
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("pricing.unit_price", cfg.Pricing.UnitPrice)
	v.Set("pricing.same_day_surcharge", cfg.Pricing.SameDaySurcharge)
	v.Set("menu.flavors", cfg.Menu.Flavors)
	v.Set("menu.quantities", quantities)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.Set("log.max_backups", cfg.Log.MaxBackups)
	v.Set("log.max_age_days", cfg.Log.MaxAgeDays)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
