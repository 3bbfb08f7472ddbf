// Package platform binds the reminder cycle to Windows: message boxes,
// focus restoration, toast banners, the console beep and idle detection.
// On other systems every entry point reports ErrUnsupported.
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// SupportedOS is the only GOOS the reminder runs on.
const SupportedOS = "windows"

// Dialog titles.
const (
	PromptTitle = "Eye care reminder"
	BannerTitle = "Look Away Reminder"
)

// BannerMessage is shown when the user returns to the screen mid-break.
const BannerMessage = "Please continue to look away for the remainder of the break."

// ErrUnsupported is returned on operating systems other than Windows.
var ErrUnsupported = errors.New("unsupported platform")

// Check reports whether the reminder can run on this system.
func Check() error {
	return check(runtime.GOOS)
}

func check(goos string) error {
	if goos != SupportedOS {
		return fmt.Errorf("%w: %s (this program is intended to run on Windows)", ErrUnsupported, goos)
	}
	return nil
}
