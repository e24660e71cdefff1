// Package worldclock renders the time tab: the current time in a chosen
// zone as digital text or analog hand angles.
package worldclock

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"studydash/internal/core/clock"
	"studydash/internal/core/model"
	"studydash/internal/logging"
)

const (
	layout24h  = "15:04:05"
	layout12h  = "03:04:05 PM"
	layoutDate = "Monday, January 2"
)

// Hands holds analog hand rotations in degrees clockwise from 12.
type Hands struct {
	Hour   float64
	Minute float64
	Second float64
}

// Reading is everything the clock tab shows for one instant.
type Reading struct {
	Instant time.Time
	Time    string
	Date    string
	Zone    string
	Analog  bool
	Hands   Hands
}

// Clock resolves zones through a cache and reads the injected time source.
type Clock struct {
	source    clock.Clock
	locations *gocache.Cache
}

// New returns a Clock reading from source, defaulting to the system clock.
func New(source clock.Clock) *Clock {
	if source == nil {
		source = clock.System
	}
	return &Clock{
		source:    source,
		locations: gocache.New(gocache.NoExpiration, 0),
	}
}

// Location loads zone, falling back to the local zone for unknown names.
func (c *Clock) Location(zone string) *time.Location {
	if zone == "" {
		return time.Local
	}
	if cached, found := c.locations.Get(zone); found {
		if location, ok := cached.(*time.Location); ok {
			return location
		}
	}
	location, err := time.LoadLocation(zone)
	if err != nil {
		logging.Warn(logging.CatUI, "unknown timezone, using local", "zone", zone, "error", err)
		location = time.Local
	}
	c.locations.Set(zone, location, gocache.NoExpiration)
	return location
}

// Read renders the current instant for settings.
func (c *Clock) Read(settings model.ClockSettings) Reading {
	location := c.Location(settings.Timezone)
	instant := c.source.Now().In(location)
	return Reading{
		Instant: instant,
		Time:    FormatTime(instant, settings.Format),
		Date:    instant.Format(layoutDate),
		Zone:    Label(location.String()),
		Analog:  settings.Type == model.ClockAnalog,
		Hands:   HandAngles(instant),
	}
}

// FormatTime renders instant as HH:MM:SS or hh:MM:SS AM/PM.
func FormatTime(instant time.Time, format string) string {
	if format == model.Format12h {
		return instant.Format(layout12h)
	}
	return instant.Format(layout24h)
}

// HandAngles converts a wall-clock time to analog hand rotations.
func HandAngles(instant time.Time) Hands {
	hour, minute, second := instant.Clock()
	return Hands{
		Hour:   float64(hour%12)*30 + float64(minute)*0.5,
		Minute: float64(minute)*6 + float64(second)*0.1,
		Second: float64(second) * 6,
	}
}
