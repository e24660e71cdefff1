package stopwatch

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatPrecise renders d as mm:ss.cc.
func FormatPrecise(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d.%02d", ms/60000, (ms%60000)/1000, (ms%1000)/10)
}

// ParseTarget reads the minutes and seconds fields of the target form.
// Each field yields its leading integer; anything unreadable is zero.
func ParseTarget(minutes, seconds string) (int, int) {
	return leadingInt(minutes), leadingInt(seconds)
}

func leadingInt(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	value, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return value
}
