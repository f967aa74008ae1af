package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}(?::\d{2})?$`)
	reTimeOnly = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// parseWhen parses a selection value:
// - now
// - YYYY-MM-DD (midnight)
// - YYYY-MM-DD HH:MM[:SS]
// - HH:MM (on the day of now)
// - RFC3339, keeping its offset
//
// Wall times are read in loc.
func parseWhen(s string, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return time.Time{}, fmt.Errorf("empty value")
	case strings.EqualFold(s, "now"):
		return now.In(loc), nil
	case reDateOnly.MatchString(s):
		return time.ParseInLocation(time.DateOnly, s, loc)
	case reDateTime.MatchString(s):
		s = strings.Replace(s, "T", " ", 1)
		layout := "2006-01-02 15:04"
		if len(s) > len(layout) {
			layout = time.DateTime
		}
		return time.ParseInLocation(layout, s, loc)
	case reTimeOnly.MatchString(s):
		hm, err := time.Parse("15:04", s)
		if err != nil {
			return time.Time{}, err
		}
		n := now.In(loc)
		return time.Date(n.Year(), n.Month(), n.Day(), hm.Hour(), hm.Minute(), 0, 0, loc), nil
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("expected now, YYYY-MM-DD, YYYY-MM-DD HH:MM, HH:MM or RFC3339")
}

// LooksLikeWhen reports whether s is a date or time that parseWhen accepts.
// main uses it to treat `crownpick 2023-06-15` as `crownpick pick --at`.
func LooksLikeWhen(s string) bool {
	s = strings.TrimSpace(s)
	if reDateOnly.MatchString(s) || reDateTime.MatchString(s) || reTimeOnly.MatchString(s) {
		return true
	}
	_, err := time.Parse(time.RFC3339Nano, s)
	return err == nil
}
