package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	homedir "github.com/mitchellh/go-homedir"
)

func init() {
	// Tests point HOME at a fresh directory each time.
	homedir.DisableCache = true
}

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()
	return runCLIWithInput(t, nil, args)
}

func runCLIWithInput(t *testing.T, in io.Reader, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	if in != nil {
		cmd.SetIn(in)
	}
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// isolate gives the test an empty HOME so no user config leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func decodeData(t *testing.T, out []byte) map[string]any {
	t.Helper()
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(out, &env); err != nil {
		t.Fatalf("unmarshal output: %v\nstdout:\n%s", err, string(out))
	}
	return env.Data
}

func decodeResult(t *testing.T, out []byte) pickResult {
	t.Helper()
	var env struct {
		Data pickResult `json:"data"`
	}
	if err := json.Unmarshal(out, &env); err != nil {
		t.Fatalf("unmarshal output: %v\nstdout:\n%s", err, string(out))
	}
	return env.Data
}

func eventKinds(r pickResult) []string {
	out := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		out = append(out, e.Kind)
	}
	return out
}

func parseValue(t *testing.T, r pickResult) time.Time {
	t.Helper()
	if r.Value == nil {
		t.Fatalf("expected a value, got none: %+v", r)
	}
	v, err := time.Parse(time.RFC3339, *r.Value)
	if err != nil {
		t.Fatalf("parse value %q: %v", *r.Value, err)
	}
	return v
}

func TestSimulate_TimeOnly(t *testing.T) {
	isolate(t)

	out, errOut, err := runCLI(t, []string{
		"simulate", "--components", "time", "--at", "22:05",
		"rotate:hour:-22 wait:200ms step:minute:+ confirm",
	})
	if err != nil {
		t.Fatalf("simulate error: %v\nstderr:\n%s", err, string(errOut))
	}

	res := decodeResult(t, out)
	if res.Outcome != "confirmed" {
		t.Fatalf("expected confirmed, got %q", res.Outcome)
	}
	// 10 PM turned back 22 hours reads 12 and keeps PM.
	v := parseValue(t, res)
	if v.Hour() != 12 || v.Minute() != 6 {
		t.Fatalf("expected 12:06, got %s", v.Format("15:04"))
	}
	if got := strings.Join(eventKinds(res), ","); got != "committed,committed,confirmed" {
		t.Fatalf("unexpected events %s", got)
	}
	if res.Title != "12:06 PM" {
		t.Fatalf("expected title 12:06 PM, got %q", res.Title)
	}
	if res.Time != nil || res.Date != nil {
		t.Fatalf("finished sessions carry no snapshot")
	}
}

func TestSimulate_DateThenTime(t *testing.T) {
	isolate(t)

	out, errOut, err := runCLI(t, []string{
		"simulate", "--at", "2024-01-30 07:00",
		"step:month:+", "confirm", "toggle:pm", "confirm",
	})
	if err != nil {
		t.Fatalf("simulate error: %v\nstderr:\n%s", err, string(errOut))
	}
	res := decodeResult(t, out)
	v := parseValue(t, res)
	if got := v.Format("2006-01-02 15:04"); got != "2024-02-29 19:00" {
		t.Fatalf("expected day clamped to Feb 29 at 19:00, got %s", got)
	}
	if res.Components != "datetime" {
		t.Fatalf("expected datetime components, got %q", res.Components)
	}
	// Confirm flushes the pending month change before advancing.
	if got := strings.Join(eventKinds(res), ","); got != "committed,advanced,committed,confirmed" {
		t.Fatalf("unexpected events %s", got)
	}
}

func TestSimulate_OpenSessionReportsSnapshot(t *testing.T) {
	isolate(t)

	out, errOut, err := runCLI(t, []string{
		"simulate", "--components", "time", "--at", "09:30", "--twenty-four-hour", "true",
		"step:hour:+",
	})
	if err != nil {
		t.Fatalf("simulate error: %v\nstderr:\n%s", err, string(errOut))
	}
	res := decodeResult(t, out)
	if res.Outcome != "open" || res.Screen != "time" {
		t.Fatalf("expected an open time screen, got %q/%q", res.Outcome, res.Screen)
	}
	if res.Time == nil {
		t.Fatalf("expected a time snapshot")
	}
	if res.Time.Hour != "10" || res.Time.Minute != "30" || !res.Time.TwentyFourHour {
		t.Fatalf("unexpected snapshot %+v", *res.Time)
	}
	// The step has not settled yet.
	if len(res.Events) != 0 {
		t.Fatalf("expected no events, got %v", eventKinds(res))
	}
}

func TestSimulate_ScriptFromStdin(t *testing.T) {
	isolate(t)

	script := "# pick tomorrow\nstep:day:+\nconfirm\n"
	out, errOut, err := runCLIWithInput(t, strings.NewReader(script), []string{
		"simulate", "--components", "date", "--at", "2024-12-31", "--file", "-",
	})
	if err != nil {
		t.Fatalf("simulate error: %v\nstderr:\n%s", err, string(errOut))
	}
	v := parseValue(t, decodeResult(t, out))
	// The day wheel wraps inside the month.
	if got := v.Format(time.DateOnly); got != "2024-12-01" {
		t.Fatalf("expected 2024-12-01, got %s", got)
	}
}

func TestSimulate_ScriptFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "steps.txt")
	if err := os.WriteFile(path, []byte("clear\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	out, errOut, err := runCLI(t, []string{"simulate", "--at", "now", "--file", path})
	if err != nil {
		t.Fatalf("simulate error: %v\nstderr:\n%s", err, string(errOut))
	}
	res := decodeResult(t, out)
	if res.Outcome != "cleared" || res.Value != nil {
		t.Fatalf("expected a cleared selection, got %+v", res)
	}
}

func TestSimulate_Errors(t *testing.T) {
	isolate(t)

	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"bad action", []string{"simulate", "spin"}, "bad script action"},
		{"bad at", []string{"simulate", "--at", "tomorrowish", "confirm"}, "invalid --at"},
		{"bad default", []string{"simulate", "--default", "13/01", "confirm"}, "invalid --default"},
		{"bad now", []string{"simulate", "--now", "soon", "confirm"}, "invalid --now"},
		{"after dismiss", []string{"simulate", "cancel", "confirm"}, "already dismissed"},
		{"bad components", []string{"simulate", "--components", "seconds", "confirm"}, "components"},
		{"missing file", []string{"simulate", "--file", filepath.Join(t.TempDir(), "nope")}, "read script"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, errOut, err := runCLI(t, tc.args)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in error, got %v", tc.want, err)
			}
			if !strings.Contains(string(errOut), tc.want) {
				t.Fatalf("expected error on stderr, got:\n%s", string(errOut))
			}
		})
	}
}

func TestSimulate_VirtualNow(t *testing.T) {
	isolate(t)

	// No --at: a time picker starts at the next whole hour.
	out, errOut, err := runCLI(t, []string{"simulate", "--components", "time", "--now", "2023-06-15 22:05", "confirm"})
	if err != nil {
		t.Fatalf("simulate error: %v\nstderr:\n%s", err, string(errOut))
	}
	v := parseValue(t, decodeResult(t, out))
	if got := v.Format("2006-01-02 15:04"); got != "2023-06-15 23:00" {
		t.Fatalf("expected next hour, got %s", got)
	}
}

func TestSimulate_YAMLAndEDN(t *testing.T) {
	isolate(t)

	args := []string{"simulate", "--components", "time", "--at", "08:15", "confirm"}

	out, _, err := runCLI(t, append([]string{"--format", "yaml"}, args...))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(string(out), "outcome: confirmed") {
		t.Fatalf("unexpected yaml:\n%s", string(out))
	}

	out, _, err = runCLI(t, append([]string{"--format", "edn"}, args...))
	if err != nil {
		t.Fatalf("edn: %v", err)
	}
	if !strings.Contains(string(out), `:outcome "confirmed"`) {
		t.Fatalf("unexpected edn:\n%s", string(out))
	}

	_, _, err = runCLI(t, append([]string{"--format", "xml"}, args...))
	if err == nil {
		t.Fatalf("expected unknown format to fail")
	}
}

func TestLocales(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"locales"})
	if err != nil {
		t.Fatalf("locales: %v", err)
	}
	var list struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &list); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, string(out))
	}
	if len(list.Data) == 0 || list.Data[0].ID != "en-US" {
		t.Fatalf("expected en-US first, got %+v", list.Data)
	}

	out, _, err = runCLI(t, []string{"locales", "fi-FI"})
	if err != nil {
		t.Fatalf("locales fi-FI: %v", err)
	}
	data := decodeData(t, out)
	if data["id"] != "fi" || data["uses24HourTime"] != true {
		t.Fatalf("unexpected locale %v", data)
	}

	if _, _, err := runCLI(t, []string{"locales", "!!"}); err == nil {
		t.Fatalf("expected malformed identifier to fail")
	}
}

func TestRanges(t *testing.T) {
	isolate(t)

	out, errOut, err := runCLI(t, []string{
		"ranges", "--min-date", "2024-02-10", "--max-date", "2025-11-20", "--year", "2024", "--month", "2",
	})
	if err != nil {
		t.Fatalf("ranges: %v\nstderr:\n%s", err, string(errOut))
	}
	data := decodeData(t, out)
	want := map[string][2]float64{
		"years":  {2024, 2025},
		"months": {2, 12},
		"days":   {10, 29},
	}
	for key, w := range want {
		r, ok := data[key].(map[string]any)
		if !ok {
			t.Fatalf("missing %s in %v", key, data)
		}
		if r["min"] != w[0] || r["max"] != w[1] {
			t.Fatalf("%s: expected %v, got %v", key, w, r)
		}
	}
	if data["bounded"] != true || data["selectable"] != true {
		t.Fatalf("expected bounded and selectable, got %v", data)
	}

	out, _, err = runCLI(t, []string{
		"ranges", "--min-date", "2024-02-10", "--year", "2024", "--month", "1",
	})
	if err != nil {
		t.Fatalf("ranges: %v", err)
	}
	if data := decodeData(t, out); data["selectable"] != false {
		t.Fatalf("expected January 2024 to be out of reach, got %v", data)
	}

	if _, _, err := runCLI(t, []string{"ranges", "--month", "13"}); err == nil {
		t.Fatalf("expected month 13 to fail")
	}
}

func TestRanges_MisconfiguredBoundsAreIgnored(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{
		"ranges", "--min-date", "2025-01-01", "--max-date", "2024-01-01", "--year", "2024", "--month", "2",
	})
	if err != nil {
		t.Fatalf("ranges: %v", err)
	}
	data := decodeData(t, out)
	if data["bounded"] != false {
		t.Fatalf("expected bounds to be dropped, got %v", data)
	}
	days := data["days"].(map[string]any)
	if days["min"] != float64(1) || days["max"] != float64(29) {
		t.Fatalf("unexpected days %v", days)
	}
}

func TestDocs(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	topics, _ := decodeData(t, out)["topics"].([]any)
	if len(topics) == 0 {
		t.Fatalf("expected topics")
	}
	first, _ := topics[0].(map[string]any)
	if first["name"] != "config" || first["title"] != "Configuration" {
		t.Fatalf("expected config topic with its heading as title, got %v", topics[0])
	}

	out, _, err = runCLI(t, []string{"docs", "Scripting"})
	if err != nil {
		t.Fatalf("docs scripting: %v", err)
	}
	if got := decodeData(t, out)["title"]; got != "Scripting" {
		t.Fatalf("expected scripting title, got %v", got)
	}

	out, _, err = runCLI(t, []string{"docs", "keys", "--raw"})
	if err != nil {
		t.Fatalf("docs keys: %v", err)
	}
	if !strings.HasPrefix(string(out), "#") {
		t.Fatalf("expected raw markdown, got:\n%s", string(out))
	}

	_, _, err = runCLI(t, []string{"docs", "nope"})
	if err == nil || !strings.Contains(err.Error(), "docs topic not found: nope") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestConfig_Precedence(t *testing.T) {
	home := isolate(t)
	if err := os.WriteFile(filepath.Join(home, ".crownpick.yaml"), []byte("locale: fi\ndebounce: 250ms\nglyphs: ascii\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CROWNPICK_DEBOUNCE", "300ms")

	out, errOut, err := runCLI(t, []string{"config", "--locale", "de"})
	if err != nil {
		t.Fatalf("config: %v\nstderr:\n%s", err, string(errOut))
	}
	data := decodeData(t, out)
	if data["loaded"] != true {
		t.Fatalf("expected the config file to be loaded: %v", data)
	}
	cfg := data["config"].(map[string]any)
	if cfg["locale"] != "de" {
		t.Fatalf("flag should win, got %v", cfg["locale"])
	}
	if cfg["debounce"] != "300ms" {
		t.Fatalf("env should beat the file, got %v", cfg["debounce"])
	}
	if cfg["glyphs"] != "ascii" {
		t.Fatalf("file should beat the default, got %v", cfg["glyphs"])
	}
}

func TestConfig_InvalidValue(t *testing.T) {
	isolate(t)
	t.Setenv("CROWNPICK_INDICATOR", "sometimes")

	if _, _, err := runCLI(t, []string{"config"}); err == nil {
		t.Fatalf("expected invalid indicator to fail")
	}
}
