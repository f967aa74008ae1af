package cli

import (
	"github.com/spf13/cobra"

	"crownpick/internal/config"
)

// configView is config.Config with durations spelled the way they are
// written in the file.
type configView struct {
	Locale            string    `json:"locale"`
	Components        string    `json:"components"`
	TwentyFourHour    string    `json:"twentyFourHour"`
	HourOnly          bool      `json:"hourOnly"`
	MonthBeforeDay    string    `json:"monthBeforeDay"`
	MonthSymbols      bool      `json:"monthSymbols"`
	ZeroPadHour       bool      `json:"zeroPadHour"`
	Indicator         string    `json:"indicator"`
	Debounce          string    `json:"debounce"`
	YearSpan          int       `json:"yearSpan"`
	MinDate           string    `json:"minDate"`
	MaxDate           string    `json:"maxDate"`
	ConfirmationTitle string    `json:"confirmationTitle"`
	LogLevel          string    `json:"logLevel"`
	LogFile           string    `json:"logFile"`
	Format            string    `json:"format"`
	Glyphs            string    `json:"glyphs"`
	Theme             string    `json:"theme"`
	Crown             crownView `json:"crown"`
}

type crownView struct {
	Devices            []string `json:"devices"`
	VelocityWindow     string   `json:"velocityWindow"`
	VelocityThreshold  int      `json:"velocityThreshold"`
	VelocityMultiplier float64  `json:"velocityMultiplier"`
}

func newConfigView(c config.Config) configView {
	devices := c.Crown.Devices
	if devices == nil {
		devices = []string{}
	}
	return configView{
		Locale:            c.Locale,
		Components:        c.Components,
		TwentyFourHour:    c.TwentyFourHour,
		HourOnly:          c.HourOnly,
		MonthBeforeDay:    c.MonthBeforeDay,
		MonthSymbols:      c.MonthSymbols,
		ZeroPadHour:       c.ZeroPadHour,
		Indicator:         c.Indicator,
		Debounce:          c.Debounce.String(),
		YearSpan:          c.YearSpan,
		MinDate:           c.MinDate,
		MaxDate:           c.MaxDate,
		ConfirmationTitle: c.ConfirmationTitle,
		LogLevel:          c.LogLevel,
		LogFile:           c.LogFile,
		Format:            c.Format,
		Glyphs:            c.Glyphs,
		Theme:             c.Theme,
		Crown: crownView{
			Devices:            devices,
			VelocityWindow:     c.Crown.VelocityWindow.String(),
			VelocityThreshold:  c.Crown.VelocityThreshold,
			VelocityMultiplier: c.Crown.VelocityMultiplier,
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, the config file,
CROWNPICK_* environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			used := app.v.ConfigFileUsed()
			path := used
			if path == "" {
				path, _ = config.DefaultPath()
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"path":   path,
				"loaded": used != "",
				"config": newConfigView(app.cfg),
			}})
		},
	}
}
