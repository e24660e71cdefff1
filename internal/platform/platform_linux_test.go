package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginItemDesktopEntry(t *testing.T) {
	item := NewLoginItem("Study Dash", "io.studydash.app", "/opt/study dash/studydash")
	item.baseDir = t.TempDir()

	enabled, err := item.Enabled()
	require.NoError(t, err)
	require.False(t, enabled)

	require.NoError(t, item.Set(true))
	enabled, err = item.Enabled()
	require.NoError(t, err)
	require.True(t, enabled)

	data, err := os.ReadFile(filepath.Join(item.baseDir, "autostart", "study-dash.desktop"))
	require.NoError(t, err)
	require.Contains(t, string(data), `Exec="/opt/study dash/studydash"`)
	require.Contains(t, string(data), "Name=Study Dash")

	require.NoError(t, item.Set(false))
	require.NoError(t, item.Set(false))
	enabled, err = item.Enabled()
	require.NoError(t, err)
	require.False(t, enabled)
}

func TestParseIdleMillis(t *testing.T) {
	idle, err := parseIdleMillis("1500\n")
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, idle)

	idle, err = parseIdleMillis("-3")
	require.NoError(t, err)
	require.Zero(t, idle)

	_, err = parseIdleMillis("abc")
	require.Error(t, err)
}
