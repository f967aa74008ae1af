package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crownpick/internal/debounce"
	"crownpick/internal/picker"
	"crownpick/internal/timeinput"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crownpick.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	v := viper.New()
	require.NoError(t, Init(v, ""))

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "datetime", c.Components)
	assert.Equal(t, debounce.DefaultWindow, c.Debounce)
	assert.Equal(t, 500, c.YearSpan)
	assert.Equal(t, "json", c.Format)

	opts, err := c.PickerOptions()
	require.NoError(t, err)
	assert.Equal(t, picker.DateAndTime, opts.Components)
	assert.Equal(t, "en-US", opts.Locale.ID())
	assert.Nil(t, opts.TwentyFourHour)
	assert.Nil(t, opts.MonthBeforeDay)
	assert.Nil(t, opts.Bounds.Min)
}

func TestFileAndEnv(t *testing.T) {
	path := writeFile(t, `
locale: fi-FI
components: time
twentyFourHour: "false"
indicator: hidden
debounce: 300ms
minDate: "2023-06-15"
maxDate: "2023-06-20"
crown:
  devices:
    - /dev/input/event3
  velocityMultiplier: 2.5
`)
	t.Setenv("CROWNPICK_HOURONLY", "true")
	t.Setenv("CROWNPICK_CROWN_VELOCITYTHRESHOLD", "6")

	v := viper.New()
	require.NoError(t, Init(v, path))
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"/dev/input/event3"}, c.Crown.Devices)
	assert.True(t, c.HourOnly)
	assert.Equal(t, 300*time.Millisecond, c.Debounce)

	opts, err := c.PickerOptions()
	require.NoError(t, err)
	assert.Equal(t, picker.HourAndMinute, opts.Components)
	assert.Equal(t, "fi", opts.Locale.ID())
	require.NotNil(t, opts.TwentyFourHour)
	assert.False(t, *opts.TwentyFourHour)
	assert.Equal(t, timeinput.IndicatorHidden, opts.Indicator)
	require.NotNil(t, opts.Bounds.Min)
	require.NotNil(t, opts.Bounds.Max)
	assert.Equal(t, 15, opts.Bounds.Min.Day())
	assert.Equal(t, 20, opts.Bounds.Max.Day())

	vel := c.Velocity()
	assert.Equal(t, 6, vel.Threshold)
	assert.Equal(t, 2.5, vel.Multiplier)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "components: date\n")
	v := viper.New()
	require.NoError(t, Init(v, path))
	v.Set("components", "datetime")

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "datetime", c.Components)
}

func TestInitMissingExplicitFile(t *testing.T) {
	err := Init(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{Components: "datetime", Format: "json", LogLevel: "info"}
	}
	require.NoError(t, base().Validate())

	cases := map[string]func(*Config){
		"locale":      func(c *Config) { c.Locale = "!!" },
		"components":  func(c *Config) { c.Components = "weekday" },
		"24h":         func(c *Config) { c.TwentyFourHour = "sometimes" },
		"order":       func(c *Config) { c.MonthBeforeDay = "maybe" },
		"indicator":   func(c *Config) { c.Indicator = "blinking" },
		"debounce":    func(c *Config) { c.Debounce = -time.Second },
		"yearSpan":    func(c *Config) { c.YearSpan = -1 },
		"minDate":     func(c *Config) { c.MinDate = "15/06/2023" },
		"logLevel":    func(c *Config) { c.LogLevel = "loud" },
		"format":      func(c *Config) { c.Format = "xml" },
		"glyphs":      func(c *Config) { c.Glyphs = "emoji" },
		"theme":       func(c *Config) { c.Theme = "sepia" },
		"multiplier":  func(c *Config) { c.Crown.VelocityMultiplier = 0.5 },
		"threshold":   func(c *Config) { c.Crown.VelocityThreshold = -2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestParseAuto(t *testing.T) {
	for _, s := range []string{"", "auto", "AUTOMATIC"} {
		b, err := ParseAuto(s)
		require.NoError(t, err)
		assert.Nil(t, b)
	}
	b, err := ParseAuto("true")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, *b)

	b, err = ParseAuto("0")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.False(t, *b)
}
