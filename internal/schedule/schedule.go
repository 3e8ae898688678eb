// Package schedule converts caller-supplied local times into the UTC
// timestamps listmonk expects for campaign send_at.
package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout is the UTC rendering sent to listmonk, e.g. 2024-07-24T17:00:00Z.
const Layout = time.RFC3339

var timeOfDay = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// Converter resolves partial inputs against Now in Location.
type Converter struct {
	Now      func() time.Time
	Location *time.Location
}

// Default uses the wall clock and the host time zone.
var Default = Converter{Now: time.Now, Location: time.Local}

// ToUTC converts input using Default.
func ToUTC(input string) string {
	return Default.ToUTC(input)
}

// ToUTC accepts, in order:
//
//	H:MM or H:MM:SS                 today at that time
//	YYYY-MM-DD HH:MM:SS             that instant (a "T" separator also works)
//	YYYY-MM-DD                      that date at the current time of day
//
// The local result is rendered in UTC. Input matching none of these is
// returned unchanged.
func (c Converter) ToUTC(input string) string {
	s := strings.TrimSpace(input)
	loc := c.location()
	now := c.now().In(loc)

	if m := timeOfDay.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		sec := 0
		if m[3] != "" {
			sec, _ = strconv.Atoi(m[3])
		}
		if h > 23 || minute > 59 || sec > 59 {
			return input
		}
		t := time.Date(now.Year(), now.Month(), now.Day(), h, minute, sec, 0, loc)
		return t.UTC().Format(Layout)
	}

	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC().Format(Layout)
		}
	}

	if d, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		t := time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), now.Second(), 0, loc)
		return t.UTC().Format(Layout)
	}

	return input
}

func (c Converter) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Converter) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}
