package platform

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSingleInstanceGuard(t *testing.T) {
	appID := "studydash-test-" + strconv.FormatInt(time.Now().UnixNano(), 36)

	first, err := AcquireSingleInstance(appID)
	require.NoError(t, err)

	_, err = AcquireSingleInstance(appID)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	again, err := AcquireSingleInstance(appID)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestGuardAddressIsStableAndInRange(t *testing.T) {
	address := GuardAddress("studydash")
	require.Equal(t, address, GuardAddress("studydash"))
	require.True(t, strings.HasPrefix(address, "127.0.0.1:"))

	port, err := strconv.Atoi(strings.TrimPrefix(address, "127.0.0.1:"))
	require.NoError(t, err)
	require.GreaterOrEqual(t, port, minGuardPort)
	require.LessOrEqual(t, port, maxGuardPort)
}

func TestCommandSpeakerSkipsBlankText(t *testing.T) {
	speaker := commandSpeaker{name: "definitely-not-a-real-binary", args: plainArgs}
	require.NoError(t, speaker.Speak("   "))
	require.Error(t, speaker.Speak("hello"))
}

func TestLookupSpeakerFallsBackToSilent(t *testing.T) {
	speaker := lookupSpeaker(commandSpeaker{name: "definitely-not-a-real-binary", args: plainArgs})
	require.ErrorIs(t, speaker.Speak("hello"), ErrSpeechUnsupported)
}

func TestLoginItemRequiresIdentity(t *testing.T) {
	require.Error(t, (&LoginItem{}).Set(true))
	require.Error(t, NewLoginItem("Study Dash", "io.studydash.app", "").Set(true))
}
