package cli

import (
	"github.com/spf13/cobra"

	"crownpick/internal/locale"
)

func newLocalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locales [id]",
		Short: "List supported locales, or show the one an identifier resolves to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				t, err := locale.Lookup(args[0])
				if err != nil {
					return writeErr(cmd, errInvalidArg("locale", args[0], err))
				}
				return writeOut(cmd, app, map[string]any{"data": locale.Describe(t)})
			}
			ids := locale.Supported()
			out := make([]locale.Info, 0, len(ids))
			for _, id := range ids {
				out = append(out, locale.Describe(locale.MustLookup(id)))
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}
