// Package config loads picker settings from ~/.crownpick.yaml, CROWNPICK_*
// environment variables and command flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"crownpick/internal/crown"
	"crownpick/internal/dateinput"
	"crownpick/internal/debounce"
	"crownpick/internal/format"
	"crownpick/internal/locale"
	"crownpick/internal/picker"
	"crownpick/internal/timeinput"
)

const (
	EnvPrefix = "CROWNPICK"
	FileName  = ".crownpick"
)

// Config is the decoded settings tree. Tri-state booleans are strings:
// "auto" (or empty) defers to the locale.
type Config struct {
	Locale            string        `mapstructure:"locale"`
	Components        string        `mapstructure:"components"`
	TwentyFourHour    string        `mapstructure:"twentyFourHour"`
	HourOnly          bool          `mapstructure:"hourOnly"`
	MonthBeforeDay    string        `mapstructure:"monthBeforeDay"`
	MonthSymbols      bool          `mapstructure:"monthSymbols"`
	ZeroPadHour       bool          `mapstructure:"zeroPadHour"`
	Indicator         string        `mapstructure:"indicator"`
	Debounce          time.Duration `mapstructure:"debounce"`
	YearSpan          int           `mapstructure:"yearSpan"`
	MinDate           string        `mapstructure:"minDate"`
	MaxDate           string        `mapstructure:"maxDate"`
	ConfirmationTitle string        `mapstructure:"confirmationTitle"`
	LogLevel          string        `mapstructure:"logLevel"`
	LogFile           string        `mapstructure:"logFile"`
	Format            string        `mapstructure:"format"`
	Glyphs            string        `mapstructure:"glyphs"`
	Theme             string        `mapstructure:"theme"`
	Crown             Crown         `mapstructure:"crown"`
}

type Crown struct {
	Devices            []string      `mapstructure:"devices"`
	VelocityWindow     time.Duration `mapstructure:"velocityWindow"`
	VelocityThreshold  int           `mapstructure:"velocityThreshold"`
	VelocityMultiplier float64       `mapstructure:"velocityMultiplier"`
}

// SetDefaults registers every key so environment variables are seen by
// Unmarshal even when no config file exists.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("locale", "")
	v.SetDefault("components", "datetime")
	v.SetDefault("twentyFourHour", "auto")
	v.SetDefault("hourOnly", false)
	v.SetDefault("monthBeforeDay", "auto")
	v.SetDefault("monthSymbols", false)
	v.SetDefault("zeroPadHour", false)
	v.SetDefault("indicator", "automatic")
	v.SetDefault("debounce", debounce.DefaultWindow)
	v.SetDefault("yearSpan", dateinput.DefaultYearSpan)
	v.SetDefault("minDate", "")
	v.SetDefault("maxDate", "")
	v.SetDefault("confirmationTitle", "")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("format", "json")
	v.SetDefault("glyphs", "unicode")
	v.SetDefault("theme", "auto")
	v.SetDefault("crown.devices", []string{})
	v.SetDefault("crown.velocityWindow", crown.DefaultVelocityWindow)
	v.SetDefault("crown.velocityThreshold", crown.DefaultVelocityThreshold)
	v.SetDefault("crown.velocityMultiplier", crown.DefaultVelocityMultiplier)
}

// Init prepares v: defaults, environment binding, and the config file at
// path (or ~/.crownpick.yaml). A missing default file is not an error; a
// missing explicit file is.
func Init(v *viper.Viper, path string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// DefaultPath is where Init looks when no path is given.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName+".yaml"), nil
}

// Load decodes and validates v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := locale.Lookup(c.Locale); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if _, err := picker.ParseComponents(c.Components); err != nil {
		return fmt.Errorf("components: %w", err)
	}
	if _, err := ParseAuto(c.TwentyFourHour); err != nil {
		return fmt.Errorf("twentyFourHour: %w", err)
	}
	if _, err := ParseAuto(c.MonthBeforeDay); err != nil {
		return fmt.Errorf("monthBeforeDay: %w", err)
	}
	if _, err := timeinput.ParseIndicator(c.Indicator); err != nil {
		return fmt.Errorf("indicator: %w", err)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce: must not be negative, got %s", c.Debounce)
	}
	if c.YearSpan < 0 {
		return fmt.Errorf("yearSpan: must not be negative, got %d", c.YearSpan)
	}
	if _, err := c.Bounds(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil && c.LogLevel != "" {
		return fmt.Errorf("logLevel: %w", err)
	}
	if _, err := format.Parse(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	switch strings.ToLower(c.Glyphs) {
	case "", "unicode", "ascii":
	default:
		return fmt.Errorf("glyphs: unknown value %q (want unicode or ascii)", c.Glyphs)
	}
	switch strings.ToLower(c.Theme) {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("theme: unknown value %q (want auto, dark or light)", c.Theme)
	}
	if c.Crown.VelocityWindow < 0 || c.Crown.VelocityThreshold < 0 {
		return fmt.Errorf("crown: velocity window and threshold must not be negative")
	}
	if c.Crown.VelocityMultiplier != 0 && c.Crown.VelocityMultiplier < 1 {
		return fmt.Errorf("crown.velocityMultiplier: must be at least 1, got %v", c.Crown.VelocityMultiplier)
	}
	return nil
}

// ParseAuto parses a tri-state flag. "auto" and "" return nil.
func ParseAuto(s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "automatic":
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("unknown value %q (want auto, true or false)", s)
	}
	return &b, nil
}

// Bounds parses minDate and maxDate (YYYY-MM-DD, local time).
func (c Config) Bounds() (dateinput.Bounds, error) {
	var b dateinput.Bounds
	if s := strings.TrimSpace(c.MinDate); s != "" {
		t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
		if err != nil {
			return b, fmt.Errorf("minDate: %w", err)
		}
		b.Min = &t
	}
	if s := strings.TrimSpace(c.MaxDate); s != "" {
		t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
		if err != nil {
			return b, fmt.Errorf("maxDate: %w", err)
		}
		b.Max = &t
	}
	return b, nil
}

// PickerOptions converts c into session options. Hooks (clock, schedule,
// logger, events) are left for the host to fill in.
func (c Config) PickerOptions() (picker.Options, error) {
	if err := c.Validate(); err != nil {
		return picker.Options{}, err
	}
	loc, _ := locale.Lookup(c.Locale)
	comps, _ := picker.ParseComponents(c.Components)
	h24, _ := ParseAuto(c.TwentyFourHour)
	mbd, _ := ParseAuto(c.MonthBeforeDay)
	ind, _ := timeinput.ParseIndicator(c.Indicator)
	bounds, _ := c.Bounds()
	return picker.Options{
		Components:        comps,
		Locale:            loc,
		Bounds:            bounds,
		YearSpan:          c.YearSpan,
		MonthBeforeDay:    mbd,
		MonthSymbols:      c.MonthSymbols,
		TwentyFourHour:    h24,
		HourOnly:          c.HourOnly,
		Indicator:         ind,
		ZeroPadHour:       c.ZeroPadHour,
		ConfirmationTitle: c.ConfirmationTitle,
		Debounce:          c.Debounce,
	}, nil
}

// Velocity builds the crown spin accelerator from the crown settings.
func (c Config) Velocity() *crown.Velocity {
	v := crown.NewVelocity()
	if c.Crown.VelocityWindow > 0 {
		v.Window = c.Crown.VelocityWindow
	}
	if c.Crown.VelocityThreshold > 0 {
		v.Threshold = c.Crown.VelocityThreshold
	}
	if c.Crown.VelocityMultiplier > 0 {
		v.Multiplier = c.Crown.VelocityMultiplier
	}
	return v
}
