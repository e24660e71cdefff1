package worldclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"studydash/internal/core/clock/clocktest"
	"studydash/internal/core/model"
)

func TestFormatTime(t *testing.T) {
	instant := time.Date(2024, 3, 9, 21, 5, 7, 0, time.UTC)

	require.Equal(t, "21:05:07", FormatTime(instant, model.Format24h))
	require.Equal(t, "09:05:07 PM", FormatTime(instant, model.Format12h))
	require.Equal(t, "21:05:07", FormatTime(instant, "bogus"))
}

func TestHandAngles(t *testing.T) {
	tests := []struct {
		name  string
		clock time.Time
		want  Hands
	}{
		{"midnight", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Hands{}},
		{"three thirty", time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), Hands{Hour: 105, Minute: 180}},
		{"seconds move minute hand", time.Date(2024, 1, 1, 9, 0, 30, 0, time.UTC), Hands{Hour: 270, Minute: 3, Second: 180}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want.Hour, HandAngles(tt.clock).Hour, 1e-9)
			require.InDelta(t, tt.want.Minute, HandAngles(tt.clock).Minute, 1e-9)
			require.InDelta(t, tt.want.Second, HandAngles(tt.clock).Second, 1e-9)
		})
	}
}

func TestReadInZone(t *testing.T) {
	source := clocktest.NewManual(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	wall := New(source)

	reading := wall.Read(model.ClockSettings{Type: model.ClockAnalog, Timezone: "Asia/Kolkata", Format: model.Format24h})

	require.Equal(t, "17:30:00", reading.Time)
	require.Equal(t, "Saturday, June 1", reading.Date)
	require.Equal(t, "Asia/Kolkata", reading.Zone)
	require.True(t, reading.Analog)
}

func TestUnknownZoneFallsBackToLocal(t *testing.T) {
	wall := New(clocktest.NewManual(time.Now()))
	require.Equal(t, time.Local, wall.Location("Mars/Olympus_Mons"))
	require.Equal(t, time.Local, wall.Location(""))
}

func TestLocationIsCached(t *testing.T) {
	wall := New(nil)
	first := wall.Location("Europe/Berlin")
	require.Same(t, first, wall.Location("Europe/Berlin"))
}

func TestZonesPinKolkataFirst(t *testing.T) {
	zones := Zones()
	require.Equal(t, PinnedZone, zones[0])

	seen := map[string]bool{}
	for _, zone := range zones {
		require.False(t, seen[zone], zone)
		seen[zone] = true
		_, err := time.LoadLocation(zone)
		require.NoError(t, err, zone)
	}
}

func TestSearch(t *testing.T) {
	require.Equal(t, []string{"America/New_York"}, Search("new york"))
	require.Equal(t, Zones(), Search("  "))
	require.Empty(t, Search("atlantis"))
	require.Equal(t, "America/Argentina/Buenos Aires", Label("America/Argentina/Buenos_Aires"))
}
