package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"crownpick/internal/debounce"
	"crownpick/internal/logging"
	"crownpick/internal/picker"
)

func newSimulateCmd(app *App) *cobra.Command {
	var file, nowFlag string

	cmd := &cobra.Command{
		Use:   "simulate [script...]",
		Short: "Drive a picker from a script on a virtual clock",
		Long: strings.TrimSpace(`
Run a picker session without a terminal. Waits advance a virtual clock, so
debounced commits happen exactly when the script says. See
'crownpick docs scripting' for the action list.`),
		Example: strings.TrimSpace(`
  crownpick simulate --components time --at 22:05 'rotate:hour:-22 wait:200ms step:minute:+ confirm'
  crownpick simulate --file steps.txt --at 2024-02-29
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readScript(cmd, args, file)
			if err != nil {
				return writeErr(cmd, err)
			}
			actions, err := picker.ParseScript(src)
			if err != nil {
				return writeErr(cmd, err)
			}

			start := app.now()
			if nowFlag != "" {
				t, err := parseWhen(nowFlag, start, start.Location())
				if err != nil {
					return writeErr(cmd, errInvalidArg("--now", nowFlag, err))
				}
				start = t
			}
			clock := debounce.NewManualClock(start)
			app.now = clock.Now

			opts, sel, err := app.pickerSetup(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			events := &eventLog{}
			opts.Clock = clock
			opts.OnEvent = events.add
			opts.Logger = logging.For("simulate")

			s, err := picker.New(sel, opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := picker.Run(s, actions, clock.Advance); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": newResult(s, events.events)})
		},
	}
	addPickerFlags(cmd.Flags())
	cmd.Flags().StringVar(&file, "file", "", "Read the script from a file (- for stdin)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Start time of the virtual clock (default: the real time)")
	return cmd
}
