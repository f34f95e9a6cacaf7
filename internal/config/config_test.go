package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CUPCAKE_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "cupcake", "cupcake.db"), cfg.Database.Path)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, "Mon Jan 2", cfg.UI.DateFormat)
	require.Equal(t, []string{"Vanilla", "Chocolate", "Red Velvet", "Salted Caramel", "Coffee"}, cfg.Menu.Flavors)
	require.Equal(t, []QuantityOption{
		{Label: "One Cupcake", Count: 1},
		{Label: "Six Cupcakes", Count: 6},
		{Label: "Twelve Cupcakes", Count: 12},
	}, cfg.Menu.Quantities)

	unit, err := cfg.UnitPrice()
	require.NoError(t, err)
	require.Equal(t, "2", unit.String())
	surcharge, err := cfg.SameDaySurcharge()
	require.NoError(t, err)
	require.Equal(t, "3", surcharge.String())
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[ui]
currency_symbol = "€"

[pricing]
unit_price = "2.50"

[menu]
flavors = ["Lemon", "Mint"]

[[menu.quantities]]
label = "Box of four"
count = 4
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("CUPCAKE_PRICING_SAME_DAY_SURCHARGE", "1.25")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
	require.Equal(t, []string{"Lemon", "Mint"}, cfg.Menu.Flavors)
	require.Equal(t, []QuantityOption{{Label: "Box of four", Count: 4}}, cfg.Menu.Quantities)

	unit, err := cfg.UnitPrice()
	require.NoError(t, err)
	require.Equal(t, "2.5", unit.String())
	surcharge, err := cfg.SameDaySurcharge()
	require.NoError(t, err)
	require.Equal(t, "1.25", surcharge.String())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Pricing: PricingConfig{UnitPrice: "2.00", SameDaySurcharge: "3.00"},
			Menu: MenuConfig{
				Flavors:    []string{"Vanilla"},
				Quantities: []QuantityOption{{Label: "One", Count: 1}},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no flavors", mutate: func(c *Config) { c.Menu.Flavors = nil }, wantErr: true},
		{name: "no quantities", mutate: func(c *Config) { c.Menu.Quantities = nil }, wantErr: true},
		{name: "zero count", mutate: func(c *Config) { c.Menu.Quantities[0].Count = 0 }, wantErr: true},
		{name: "blank label", mutate: func(c *Config) { c.Menu.Quantities[0].Label = "  " }, wantErr: true},
		{name: "bad price", mutate: func(c *Config) { c.Pricing.UnitPrice = "two" }, wantErr: true},
		{name: "negative surcharge", mutate: func(c *Config) { c.Pricing.SameDaySurcharge = "-1" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := Load("")
	require.NoError(t, err)
	cfg.UI.CurrencySymbol = "£"
	cfg.Menu.Flavors = []string{"Earl Grey"}
	cfg.Menu.Quantities = []QuantityOption{{Label: "Pair", Count: 2}}
	require.NoError(t, Save(cfg, path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "£", got.UI.CurrencySymbol)
	require.Equal(t, []string{"Earl Grey"}, got.Menu.Flavors)
	require.Equal(t, []QuantityOption{{Label: "Pair", Count: 2}}, got.Menu.Quantities)
}

func TestUnsetHomeIsAnError(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("CUPCAKE_CONFIG", "")

	_, err := Load("")
	require.ErrorContains(t, err, "home dir")
	_, err = Defaults()
	require.ErrorContains(t, err, "home dir")
	require.ErrorContains(t, Save(Config{}, ""), "home dir")
}

func TestResolvePath(t *testing.T) {
	home := isolate(t)

	got, err := ResolvePath("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "cupcake", "config.toml"), got)

	t.Setenv("CUPCAKE_CONFIG", "/tmp/from-env.toml")
	got, err = ResolvePath("")
	require.NoError(t, err)
	require.Equal(t, "/tmp/from-env.toml", got)

	got, err = ResolvePath("explicit.toml")
	require.NoError(t, err)
	require.Equal(t, "explicit.toml", got)
}

func TestDefaultsMatchLoadWithoutFile(t *testing.T) {
	isolate(t)
	def, err := Defaults()
	require.NoError(t, err)
	loaded, err := Load("")
	require.NoError(t, err)
	require.Equal(t, loaded, def)
	require.NoError(t, def.Validate())
}
