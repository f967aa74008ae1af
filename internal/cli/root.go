// Package cli implements the crownpick command tree.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"crownpick/internal/config"
	"crownpick/internal/format"
	"crownpick/internal/logging"
)

type App struct {
	ConfigFile string
	PrettyJSON bool

	v   *viper.Viper
	cfg config.Config
	// now is the wall clock; tests pin it.
	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	app := &App{v: viper.New(), now: time.Now}

	var pick *cobra.Command
	cmd := &cobra.Command{
		Use:          "crownpick",
		Short:        "Crown-driven date and time picker for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a date and time (same as: crownpick pick)
  crownpick

  # Start the picker on a given value
  crownpick 2023-06-15
  crownpick pick --components time --at 22:05

  # Drive a picker from a script
  crownpick simulate --components time --at 22:05 'rotate:hour:-22 wait:200ms confirm'
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker.
			if len(args) == 0 {
				return pick.RunE(cmd, args)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.initConfig(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.ConfigFile, "config", "", "Config file (default is $HOME/.crownpick.yaml)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON and EDN output")
	cmd.PersistentFlags().String("format", "json", "Output format (json|edn|yaml)")
	cmd.PersistentFlags().String("locale", "", "Locale identifier, e.g. en-US, fi, zh-Hant")
	cmd.PersistentFlags().StringP("log-level", "l", "info", "Log level (debug|info|warn|error|fatal)")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file while the picker is on screen")

	pick = newPickCmd(app)
	addPickerFlags(cmd.Flags())
	addHostFlags(cmd.Flags())

	cmd.AddCommand(pick)
	cmd.AddCommand(newSimulateCmd(app))
	cmd.AddCommand(newLocalesCmd(app))
	cmd.AddCommand(newRangesCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"format":              "format",
	"locale":              "locale",
	"log-level":           "logLevel",
	"log-file":            "logFile",
	"components":          "components",
	"twenty-four-hour":    "twentyFourHour",
	"hour-only":           "hourOnly",
	"month-before-day":    "monthBeforeDay",
	"month-symbols":       "monthSymbols",
	"zero-pad-hour":       "zeroPadHour",
	"indicator":           "indicator",
	"debounce":            "debounce",
	"year-span":           "yearSpan",
	"min-date":            "minDate",
	"max-date":            "maxDate",
	"confirmation-title":  "confirmationTitle",
	"glyphs":              "glyphs",
	"theme":               "theme",
	"crown":               "crown.devices",
	"velocity-window":     "crown.velocityWindow",
	"velocity-threshold":  "crown.velocityThreshold",
	"velocity-multiplier": "crown.velocityMultiplier",
}

// initConfig reads the config file and environment, binds the flags of the
// command being run, and sets up logging.
func (app *App) initConfig(cmd *cobra.Command) error {
	if err := config.Init(app.v, app.ConfigFile); err != nil {
		return writeErr(cmd, err)
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = app.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return writeErr(cmd, bindErr)
	}
	cfg, err := config.Load(app.v)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.cfg.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
