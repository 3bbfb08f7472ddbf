package config

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrAlreadyLocked is returned when another daemon holds the instance lock.
var ErrAlreadyLocked = errors.New("another eyecared instance is already running")

// InstanceLock guards against two reminder daemons running for one user.
type InstanceLock struct {
	lock *flock.Flock
}

// AcquireInstanceLock takes the lock at path without blocking.
func AcquireInstanceLock(path string) (*InstanceLock, error) {
	l := flock.New(path)
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, ErrAlreadyLocked
	}
	return &InstanceLock{lock: l}, nil
}

// Path returns the lock file location.
func (l *InstanceLock) Path() string {
	return l.lock.Path()
}

// Release unlocks the instance lock. Safe to call on a nil lock.
func (l *InstanceLock) Release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
