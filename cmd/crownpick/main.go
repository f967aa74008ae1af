package main

import (
	"os"
	"strings"

	"crownpick/internal/cli"
)

// valueFlags are the root flags that take a separate value, so the value is
// not mistaken for the first positional.
var valueFlags = map[string]bool{
	"--config":              true,
	"--format":              true,
	"--locale":              true,
	"--log-level":           true,
	"-l":                    true,
	"--log-file":            true,
	"--components":          true,
	"--twenty-four-hour":    true,
	"--month-before-day":    true,
	"--indicator":           true,
	"--debounce":            true,
	"--year-span":           true,
	"--min-date":            true,
	"--max-date":            true,
	"--confirmation-title":  true,
	"--at":                  true,
	"--default":             true,
	"--glyphs":              true,
	"--theme":               true,
	"--crown":               true,
	"--velocity-window":     true,
	"--velocity-threshold":  true,
	"--velocity-multiplier": true,
}

// rewriteWhenArgs makes `crownpick <when>` work like `crownpick pick --at <when>`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Flags may come first (`crownpick --locale fi 10:00`), so the
// first positional is searched for rather than assumed to be argv[1].
func rewriteWhenArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	rewrite := func(i, skip int) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[0], "pick")
		out = append(out, argv[1:i]...)
		out = append(out, "--at", argv[i+skip])
		out = append(out, argv[i+skip+1:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && cli.LooksLikeWhen(argv[i+1]) {
				// Drop the "--" so --at is parsed as a flag.
				return rewrite(i, 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		// First positional token.
		if cli.LooksLikeWhen(a) {
			return rewrite(i, 0)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteWhenArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
