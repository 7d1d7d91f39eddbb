package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverSheets = "sheets"
	StoreDriverFile   = "file"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Household orders specifics
	App          AppConfig
	Store        StoreConfig
	GoogleSheets GoogleSheetsConfig
	FileStore    FileStoreConfig
	Pages        PagesConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AppConfig struct {
	Title    string
	Timezone string
}

type StoreConfig struct {
	Driver string
}

type GoogleSheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	SheetName       string
}

type FileStoreConfig struct {
	Path string
}

type PagesConfig struct {
	Cards    []CardConfig
	Links    []LinkConfig
	MapQuery string
}

type CardConfig struct {
	Name     string
	ImageURL string
}

type LinkConfig struct {
	Label string
	URL   string
	Group string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	return load(viper.GetViper())
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// App
	cfg.App.Title = v.GetString("app.title")
	cfg.App.Timezone = v.GetString("app.timezone")

	// Store
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(v.GetString("store.driver")))

	cfg.GoogleSheets.CredentialsPath = v.GetString("google_sheets.credentials_path")
	cfg.GoogleSheets.SpreadsheetID = v.GetString("google_sheets.spreadsheet_id")
	cfg.GoogleSheets.SheetName = v.GetString("google_sheets.sheet_name")
	if creds := v.GetString("google_sheets_credentials"); creds != "" {
		cfg.GoogleSheets.CredentialsPath = creds
	}
	if id := v.GetString("google_sheets_spreadsheet_id"); id != "" {
		cfg.GoogleSheets.SpreadsheetID = id
	}

	cfg.FileStore.Path = v.GetString("file_store.path")

	// Pages
	cfg.Pages.MapQuery = v.GetString("pages.map_query")
	for _, m := range getMapList(v, "pages.cards") {
		cfg.Pages.Cards = append(cfg.Pages.Cards, CardConfig{
			Name:     getStringFromMap(m, "name"),
			ImageURL: getStringFromMap(m, "image_url"),
		})
	}
	for _, m := range getMapList(v, "pages.links") {
		cfg.Pages.Links = append(cfg.Pages.Links, LinkConfig{
			Label: getStringFromMap(m, "label"),
			URL:   getStringFromMap(m, "url"),
			Group: getStringFromMap(m, "group"),
		})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 60)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("app.title", "Ordine Casa")
	v.SetDefault("app.timezone", "Europe/Rome")
	v.SetDefault("store.driver", StoreDriverSheets)
	v.SetDefault("google_sheets.sheet_name", "Ordini")
	v.SetDefault("file_store.path", "orders.json")
}

// Validate checks the settings a run cannot start without.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("app.timezone: %w", err)
	}

	switch c.Store.Driver {
	case StoreDriverSheets:
		if c.GoogleSheets.SpreadsheetID == "" {
			return fmt.Errorf("google_sheets.spreadsheet_id is required with store.driver=%s", StoreDriverSheets)
		}
		if c.GoogleSheets.CredentialsPath == "" {
			return fmt.Errorf("google_sheets.credentials_path is required with store.driver=%s", StoreDriverSheets)
		}
		if c.GoogleSheets.SheetName == "" {
			return fmt.Errorf("google_sheets.sheet_name must not be empty")
		}
	case StoreDriverFile:
		if c.FileStore.Path == "" {
			return fmt.Errorf("file_store.path is required with store.driver=%s", StoreDriverFile)
		}
	default:
		return fmt.Errorf("unknown store.driver %q (want %s or %s)", c.Store.Driver, StoreDriverSheets, StoreDriverFile)
	}

	if c.HTTPServer.RateLimitPerMin < 0 {
		return fmt.Errorf("http_server.rate_limit_per_min must not be negative")
	}
	return nil
}

// getMapList reads a list of YAML mappings.
func getMapList(v *viper.Viper, key string) []map[string]interface{} {
	if !v.IsSet(key) {
		return nil
	}
	raw, ok := v.Get(key).([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// Helper to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return strings.TrimSpace(str)
		}
	}
	return ""
}
