package platform

import (
	"errors"
	"time"
)

// ErrIdleUnsupported indicates the desktop session cannot report input idle time.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns the provider for the running OS.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}
