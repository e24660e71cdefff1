package pomodoro

import "fmt"

// FormatTimeLeft renders whole seconds as mm:ss.
func FormatTimeLeft(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
