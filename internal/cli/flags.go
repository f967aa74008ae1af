package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"crownpick/internal/crown"
	"crownpick/internal/dateinput"
	"crownpick/internal/debounce"
	"crownpick/internal/picker"
)

// addPickerFlags adds the flags shared by every command that opens a
// session. Defaults only feed --help; config defaults decide the values.
func addPickerFlags(fs *pflag.FlagSet) {
	fs.String("components", "datetime", "Picker components (date|time|datetime)")
	fs.String("twenty-four-hour", "auto", "24-hour clock (auto|true|false)")
	fs.Bool("hour-only", false, "Only select the hour")
	fs.String("month-before-day", "auto", "Month wheel before day wheel (auto|true|false)")
	fs.Bool("month-symbols", false, "Show month names instead of numbers")
	fs.Bool("zero-pad-hour", false, "Zero-pad 12-hour hours")
	fs.String("indicator", "automatic", "24 hr badge (automatic|visible|hidden)")
	fs.Duration("debounce", debounce.DefaultWindow, "How long the crown must rest before a commit")
	fs.Int("year-span", dateinput.DefaultYearSpan, "Years either side of today on an unbounded year wheel")
	fs.String("min-date", "", "Earliest selectable date (YYYY-MM-DD)")
	fs.String("max-date", "", "Latest selectable date (YYYY-MM-DD)")
	fs.String("confirmation-title", "", "Caption for the confirm action (default Continue/Set)")

	fs.String("at", "", "Initial selection (now, YYYY-MM-DD, YYYY-MM-DD HH:MM, HH:MM or RFC3339)")
	fs.String("default", "", "Value to start from when there is no selection")
}

// addHostFlags adds the flags of the interactive picker.
func addHostFlags(fs *pflag.FlagSet) {
	fs.String("glyphs", "unicode", "Glyph set (unicode|ascii)")
	fs.String("theme", "auto", "Background theme (auto|dark|light)")
	fs.StringSlice("crown", nil, "evdev crown devices, e.g. /dev/input/event3")
	fs.Duration("velocity-window", crown.DefaultVelocityWindow, "Fast-spin detection window")
	fs.Int("velocity-threshold", crown.DefaultVelocityThreshold, "Detents within the window that count as a fast spin")
	fs.Float64("velocity-multiplier", crown.DefaultVelocityMultiplier, "Detent multiplier during a fast spin")
	fs.Bool("inline", false, "Draw in the normal screen instead of the alternate screen")
}

// pickerSetup builds session options from config and the selection flags.
// The returned selection is nil when --at is not given.
func (app *App) pickerSetup(cmd *cobra.Command) (picker.Options, *time.Time, error) {
	opts, err := app.cfg.PickerOptions()
	if err != nil {
		return picker.Options{}, nil, err
	}
	now := app.now()

	var sel *time.Time
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		t, err := parseWhen(at, now, time.Local)
		if err != nil {
			return picker.Options{}, nil, errInvalidArg("--at", at, err)
		}
		sel = &t
	}
	if def, _ := cmd.Flags().GetString("default"); def != "" {
		t, err := parseWhen(def, now, time.Local)
		if err != nil {
			return picker.Options{}, nil, errInvalidArg("--default", def, err)
		}
		opts.Default = &t
	}
	return opts, sel, nil
}

// readScript returns the script from args, or from --file ("-" is stdin).
func readScript(cmd *cobra.Command, args []string, file string) (string, error) {
	if file == "" {
		return strings.Join(args, " "), nil
	}
	if file == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read script from stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(b), nil
}
