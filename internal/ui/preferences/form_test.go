package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"studydash/internal/core/model"
)

func TestValuesRoundTrip(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Timers = model.TimerMinutes{Work: 45, ShortBreak: 10, LongBreak: 20}
	settings.Sound = "track4"
	settings.Volume = -6
	settings.Clock = model.ClockSettings{Type: model.ClockAnalog, Timezone: "Europe/Paris", Format: model.Format12h}
	settings.IdlePauseAfter = 3 * time.Minute
	settings.LaunchAtLogin = true

	values := ValuesFrom(settings)
	require.Equal(t, "Bell Ring", values.SoundName)
	require.Equal(t, "45", values.Work)

	require.Equal(t, settings, values.Apply(model.DefaultSettings()))
}

func TestApplyKeepsBaseForInvalidNumbers(t *testing.T) {
	base := model.DefaultSettings()
	values := ValuesFrom(base)
	values.Work = "abc"
	values.ShortBreak = "0"
	values.LongBreak = "-5"
	values.IdleMinutes = "soon"

	got := values.Apply(base)
	require.Equal(t, base.Timers, got.Timers)
	require.Equal(t, base.IdlePauseAfter, got.IdlePauseAfter)
}

func TestApplyNormalises(t *testing.T) {
	base := model.DefaultSettings()
	values := ValuesFrom(base)
	values.Volume = 40
	values.SpokenText = "   "
	values.Timezone = "Nowhere/Special"
	values.SoundName = "Unknown Sound"
	values.IdleMinutes = "0"

	got := values.Apply(base)
	require.Equal(t, maxVolume, got.Volume)
	require.Equal(t, model.DefaultSpokenText, got.SpokenText)
	require.Equal(t, base.Clock.Timezone, got.Clock.Timezone)
	require.Equal(t, base.Sound, got.Sound)
	require.Zero(t, got.IdlePauseAfter)
}

func TestApplyCapsMinutes(t *testing.T) {
	base := model.DefaultSettings()
	values := ValuesFrom(base)
	values.LongBreak = "200000000"
	values.IdleMinutes = "999999999999"

	got := values.Apply(base)
	require.Equal(t, model.MaxTimerMinutes, got.Timers.LongBreak)
	require.Equal(t, time.Duration(model.MaxTimerMinutes)*time.Minute, got.IdlePauseAfter)
}
