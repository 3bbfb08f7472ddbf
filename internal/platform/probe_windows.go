//go:build windows

package platform

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetTickCount     = kernel32.NewProc("GetTickCount")
	procGetLastInputInfo = user32.NewProc("GetLastInputInfo")
)

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

// IdleProbe reads the last keyboard or mouse input from the session.
type IdleProbe struct{}

// NewIdleProbe creates the Windows idle probe.
func NewIdleProbe() (*IdleProbe, error) {
	if err := procGetLastInputInfo.Find(); err != nil {
		return nil, fmt.Errorf("GetLastInputInfo unavailable: %w", err)
	}
	return &IdleProbe{}, nil
}

// LastInput returns the wall-clock time of the most recent user input.
func (IdleProbe) LastInput() (time.Time, error) {
	info := lastInputInfo{cbSize: uint32(unsafe.Sizeof(lastInputInfo{}))}
	r, _, err := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if r == 0 {
		return time.Time{}, fmt.Errorf("GetLastInputInfo: %w", err)
	}
	tick, _, _ := procGetTickCount.Call()
	// Tick counts wrap every ~49.7 days; unsigned subtraction handles it.
	idle := time.Duration(uint32(tick)-info.dwTime) * time.Millisecond
	return time.Now().Add(-idle), nil
}
