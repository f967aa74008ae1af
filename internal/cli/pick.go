package cli

import (
	"github.com/spf13/cobra"

	"crownpick/internal/crown"
	"crownpick/internal/logging"
	"crownpick/internal/tui"
)

func newPickCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive picker and print the result",
		Long: `Open the interactive picker. The picker is drawn on stderr so stdout only
carries the result envelope.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app)
		},
	}
	addPickerFlags(cmd.Flags())
	addHostFlags(cmd.Flags())
	return cmd
}

func runPick(cmd *cobra.Command, app *App) error {
	opts, sel, err := app.pickerSetup(cmd)
	if err != nil {
		return writeErr(cmd, err)
	}
	events := &eventLog{}
	opts.OnEvent = events.add
	opts.Logger = logging.For("picker")

	var src tui.CrownSource
	if devices := app.cfg.Crown.Devices; len(devices) > 0 {
		r, err := crown.Open(devices...)
		if err != nil {
			return writeErr(cmd, err)
		}
		defer r.Close()
		src = r
	}
	inline, _ := cmd.Flags().GetBool("inline")

	// Log lines would corrupt the screen while the picker is up.
	closeLog, err := logging.Redirect(app.cfg.LogFile)
	if err != nil {
		return writeErr(cmd, err)
	}
	s, runErr := tui.Run(cmd.Context(), tui.Options{
		Picker:    opts,
		Selection: sel,
		Crown:     src,
		Velocity:  app.cfg.Velocity(),
		Glyphs:    app.cfg.Glyphs,
		Theme:     app.cfg.Theme,
		Output:    cmd.ErrOrStderr(),
		Inline:    inline,
	})
	_ = closeLog()
	logging.Restore()
	if runErr != nil {
		return writeErr(cmd, runErr)
	}
	return writeOut(cmd, app, map[string]any{"data": newResult(s, events.events)})
}
