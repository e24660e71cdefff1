package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minGuardPort = 20000
	maxGuardPort = 39999
)

// InstanceGuard keeps a loopback listener open for the process lifetime.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds a loopback port derived from appID. A second
// process with the same id gets ErrAlreadyRunning.
func AcquireSingleInstance(appID string) (*InstanceGuard, error) {
	listener, err := net.Listen("tcp", GuardAddress(appID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	return &InstanceGuard{listener: listener}, nil
}

// GuardAddress returns the loopback address reserved for appID.
func GuardAddress(appID string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appID))
	port := minGuardPort + int(hash.Sum32()%uint32(maxGuardPort-minGuardPort+1))
	return fmt.Sprintf("127.0.0.1:%d", port)
}

// Release frees the lock. It is safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}
