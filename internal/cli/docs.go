package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"crownpick/internal/docs"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the key map, crown, config and scripting guides",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": docs.Index()}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("%w (run `crownpick docs` to list topics)", errNotFound("docs topic", topic)))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"topic": topic, "title": titleOf(topic), "markdown": body}})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")
	return cmd
}

func titleOf(topic string) string {
	for _, t := range docs.Index() {
		if strings.EqualFold(t.Name, strings.TrimSpace(topic)) {
			return t.Title
		}
	}
	return topic
}
