package config

// Viper configuration loader: reads config.yaml from the user config dir or the working directory

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration loaded from config.yaml
type Config struct {
	// Logging configuration
	Logging struct {
		Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
	} `mapstructure:"logging"`

	// Storage configuration (the key-value document tasks are mirrored into)
	Storage struct {
		File string `mapstructure:"file"`
		Key  string `mapstructure:"key"`
	} `mapstructure:"storage"`

	// Task configuration
	Task struct {
		IDStyle string `mapstructure:"idStyle"` // "uuid" or "nanoid"
	} `mapstructure:"task"`

	// Appearance configuration
	Appearance struct {
		Theme     string `mapstructure:"theme"` // "dark", "light", "auto"
		Gradients bool   `mapstructure:"gradients"`
	} `mapstructure:"appearance"`

	// Header configuration
	Header struct {
		Visible bool `mapstructure:"visible"`
	} `mapstructure:"header"`
}

// DefaultStorageKey is the key the task list is stored under
const DefaultStorageKey = "todos"

var appConfig *Config

// LoadConfig loads configuration from config.yaml.
// Priority order (first found wins): user config → current directory (dev).
// flags may be nil; when set, its log-level and storage flags override file values.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	// Reset viper to clear any previous configuration
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(GetConfigDir())
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("no config.yaml found, using defaults")
		} else {
			slog.Error("error reading config file", "error", err)
			return nil, err
		}
	} else {
		slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
	}

	// Allow environment variables to override config file
	viper.SetEnvPrefix("TODOS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(flags); err != nil {
			slog.Warn("failed to bind command line flags", "error", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		slog.Error("failed to unmarshal config", "error", err)
		return nil, err
	}

	appConfig = cfg
	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("logging.level", "error")
	viper.SetDefault("storage.file", "")
	viper.SetDefault("storage.key", DefaultStorageKey)
	viper.SetDefault("task.idStyle", IDStyleUUID)
	viper.SetDefault("appearance.theme", "auto")
	viper.SetDefault("appearance.gradients", true)
	viper.SetDefault("header.visible", true)
}

// bindFlags binds supported command line flags to viper so they can override config values.
func bindFlags(flags *pflag.FlagSet) error {
	if f := flags.Lookup(FlagLogLevel); f != nil {
		if err := viper.BindPFlag("logging.level", f); err != nil {
			return err
		}
	}
	if f := flags.Lookup(FlagStorage); f != nil {
		if err := viper.BindPFlag("storage.file", f); err != nil {
			return err
		}
	}
	return nil
}

// GetConfig returns the loaded configuration
// If config hasn't been loaded yet, it loads it first
func GetConfig() *Config {
	if appConfig == nil {
		cfg, err := LoadConfig(nil)
		if err != nil {
			slog.Warn("failed to load config, using defaults", "error", err)
			setDefaults()
			cfg = &Config{}
			_ = viper.Unmarshal(cfg)
		}
		appConfig = cfg
	}
	return appConfig
}

// GetLogLevel returns the configured log level name
func GetLogLevel() string {
	return viper.GetString("logging.level")
}

// GetStorageFile returns the key-value storage path, falling back to the data dir default
func GetStorageFile() string {
	if path := viper.GetString("storage.file"); path != "" {
		return path
	}
	return GetDefaultStorageFile()
}

// GetStorageKey returns the key the task list is persisted under
func GetStorageKey() string {
	key := strings.TrimSpace(viper.GetString("storage.key"))
	if key == "" {
		return DefaultStorageKey
	}
	return key
}

// GetIDStyle returns the task ID style ("uuid" or "nanoid")
func GetIDStyle() string {
	switch style := strings.ToLower(viper.GetString("task.idStyle")); style {
	case IDStyleUUID, IDStyleNanoID:
		return style
	default:
		return IDStyleUUID
	}
}

// GetTheme returns the appearance theme setting
func GetTheme() string {
	theme := viper.GetString("appearance.theme")
	if theme == "" {
		return "auto"
	}
	return theme
}

// GetEffectiveTheme resolves "auto" to actual theme based on terminal detection
func GetEffectiveTheme() string {
	theme := GetTheme()
	if theme != "auto" {
		return theme
	}
	// Detect via COLORFGBG env var (format: "fg;bg")
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		if len(parts) >= 2 {
			// 0-6 and 8 are dark backgrounds, 7 and 9-15 light ones
			if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil && (bg == 7 || bg >= 9) {
				return "light"
			}
		}
	}
	return "dark"
}

// UseGradients reports whether captions are drawn with a gradient or a solid color
func UseGradients() bool {
	return viper.GetBool("appearance.gradients")
}

// GetContentBackgroundColor returns the background color for markdown content areas
// Dark theme needs black background for light text; light theme uses terminal default
func GetContentBackgroundColor() tcell.Color {
	if GetEffectiveTheme() == "dark" {
		return tcell.ColorBlack
	}
	return tcell.ColorDefault
}

// GetHeaderVisible returns the saved header visibility preference
func GetHeaderVisible() bool {
	return viper.GetBool("header.visible")
}

// SaveHeaderVisible stores the header visibility preference in the user config file.
// Only the header.visible key is touched; flag and environment overrides are never written.
func SaveHeaderVisible(visible bool) error {
	if GetHeaderVisible() == visible {
		return nil
	}
	viper.Set("header.visible", visible)

	path := GetConfigFile()
	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("read %s: %w", path, err)
	}

	header, _ := doc["header"].(map[string]any)
	if header == nil {
		header = map[string]any{}
	}
	header["visible"] = visible
	doc["header"] = header

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Debug("saved header visibility", "visible", visible, "file", path)
	return nil
}
