// nolint:all // test package
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei-cloud/widgetdemos/pkg/logger"
)

var testDefaults = Defaults{AppID: "com.github.notebook", Width: 640, Height: 480}

// isolate points HOME at an empty directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvPrefix+"_CONFIG", "")
	t.Setenv(EnvPrefix+"_LOG_LEVEL", "")
	os.Unsetenv(EnvPrefix + "_LOG_LEVEL")

	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load(testDefaults, nil)
	require.NoError(t, err)

	assert.Equal(t, "com.github.notebook", c.App.ID)
	assert.Equal(t, 640, c.Window.Width)
	assert.Equal(t, 480, c.Window.Height)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, 3, c.Notebook.Tabs)
	assert.Empty(t, c.Notebook.Session)
}

func TestLoad_Precedence(t *testing.T) {
	home := isolate(t)

	cfgPath := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[window]
width = 800
height = 600

[notebook]
tabs = 5

[log]
level = "error"
`), 0o600))

	t.Setenv(EnvPrefix+"_LOG_LEVEL", "debug")

	fs := Flags("notebook")
	require.NoError(t, fs.Parse([]string{"--config", cfgPath, "--notebook.tabs", "7"}))

	c, err := Load(testDefaults, fs)
	require.NoError(t, err)

	assert.Equal(t, 800, c.Window.Width, "file overrides default")
	assert.Equal(t, "debug", c.Log.Level, "env overrides file")
	assert.Equal(t, 7, c.Notebook.Tabs, "flag overrides file")
	assert.Equal(t, "com.github.notebook", c.App.ID, "unset flag keeps default")
}

func TestLoad_DefaultConfigLocation(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "widgetdemos")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[notebook]\nsession = \"/tmp/tabs.json\"\n"), 0o600))

	c, err := Load(testDefaults, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tabs.json", c.Notebook.Session)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing_config_file", []string{"--config", "/nonexistent/widgetdemos.toml"}},
		{"bad_app_id", []string{"--app.id", "notebook"}},
		{"bad_window", []string{"--window.width", "10"}},
		{"bad_level", []string{"--log.level", "loud"}},
		{"bad_tabs", []string{"--notebook.tabs=-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			fs := Flags("test")
			require.NoError(t, fs.Parse(tt.args))

			_, err := Load(testDefaults, fs)
			assert.Error(t, err)
		})
	}
}

func TestConfig_OpenLogger(t *testing.T) {
	c := Config{Log: LogConfig{Path: filepath.Join(t.TempDir(), "logs", "app.log"), Level: "debug"}}

	var got []logger.Entry
	l, err := c.OpenLogger(func(e logger.Entry) { got = append(got, e) })
	require.NoError(t, err)
	defer l.Close()

	l.Debug("Opened", "OK", "")
	require.Len(t, got, 1)

	data, err := os.ReadFile(c.Log.Path)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte(`"event":"Opened"`)))

	_, err = Config{Log: LogConfig{Level: "loud"}}.OpenLogger(nil)
	assert.Error(t, err)
}
