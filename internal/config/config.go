package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andrei-cloud/widgetdemos/pkg/logger"
	"github.com/andrei-cloud/widgetdemos/pkg/utils"
)

// EnvPrefix prefixes environment overrides, e.g. WIDGETDEMOS_LOG_LEVEL.
const EnvPrefix = "WIDGETDEMOS"

// Config holds program configuration.
type Config struct {
	App      AppConfig
	Window   WindowConfig
	Log      LogConfig
	Notebook NotebookConfig
}

// AppConfig identifies the application to the toolkit.
type AppConfig struct {
	ID string
}

// WindowConfig holds the initial main window size.
type WindowConfig struct {
	Width  int
	Height int
}

// LogConfig holds logger settings. An empty path logs to stderr.
type LogConfig struct {
	Path  string
	Level string
}

// NotebookConfig holds notebook demo settings.
type NotebookConfig struct {
	Tabs    int
	Session string
}

// Defaults are the per-program values applied before file, env and flags.
type Defaults struct {
	AppID  string
	Width  int
	Height int
}

// Flags registers the command line flags shared by every program.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a TOML config file")
	fs.String("app.id", "", "application ID")
	fs.Int("window.width", 0, "initial window width")
	fs.Int("window.height", 0, "initial window height")
	fs.String("log.path", "", "write JSON log records to this file (default: stderr)")
	fs.String("log.level", "", "log level: debug, info or error")
	fs.Int("notebook.tabs", 0, "number of tabs the notebook opens with")
	fs.String("notebook.session", "", "file used to remember open notebook tabs")

	return fs
}

// Load reads configuration from defaults, a TOML file, the environment and
// flags, in increasing precedence. fs may be nil. Only flags that were set
// override other sources.
func Load(d Defaults, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("app.id", d.AppID)
	v.SetDefault("window.width", d.Width)
	v.SetDefault("window.height", d.Height)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("notebook.tabs", 3)
	v.SetDefault("notebook.session", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv(EnvPrefix + "_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "widgetdemos"))
		}
		v.SetConfigName("config")
		// A missing default config file is fine.
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" || !f.Changed || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(f.Name, f)
		})
		if bindErr != nil {
			return Config{}, fmt.Errorf("bind flags: %w", bindErr)
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

// Validate checks every field.
func (c Config) Validate() error {
	if err := utils.ValidateAppID(c.App.ID); err != nil {
		return fmt.Errorf("app.id: %w", err)
	}
	if err := utils.ValidateWindowSize(c.Window.Width, c.Window.Height); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if err := utils.ValidateTabCount(c.Notebook.Tabs); err != nil {
		return fmt.Errorf("notebook.tabs: %w", err)
	}

	return nil
}

// OpenLogger opens the configured logger. The returned logger must be closed.
func (c Config) OpenLogger(callback func(logger.Entry)) (*logger.Logger, error) {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	if c.Log.Path == "" {
		return logger.New(os.Stderr, level, callback), nil
	}

	return logger.NewFile(c.Log.Path, level, callback)
}
