//go:build windows

package platform

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/gen2brain/beeep"
	"golang.org/x/sys/windows"

	"github.com/eyecare-io/eyecare/internal/daemon/reminder"
)

// MessageBoxW flags.
const (
	mbOK          = 0x00000000
	mbSystemModal = 0x00001000 // also keeps the box topmost
)

// focusRestoreDelay gives the message box time to appear before focus is
// handed back to the previous window.
const focusRestoreDelay = 100 * time.Millisecond

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
)

// Notifier shows reminder dialogs with MessageBoxW and toasts.
type Notifier struct {
	logger *slog.Logger

	showBox       func(text, caption string, flags uint32) error
	foreground    func() windows.HWND
	setForeground func(windows.HWND) error
	toast         func(title, message string) error
	after         func(time.Duration) <-chan time.Time
}

// NewNotifier creates the Windows notifier.
func NewNotifier(logger *slog.Logger) (*Notifier, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Notifier{
		logger:        logger,
		showBox:       messageBox,
		foreground:    windows.GetForegroundWindow,
		setForeground: setForegroundWindow,
		toast: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		after: time.After,
	}, nil
}

// PromptAcknowledgement shows a topmost OK box and blocks until it is
// dismissed. Focus goes back to the window that was active before the box
// appeared, so typing is not redirected into the prompt.
func (n *Notifier) PromptAcknowledgement(req reminder.AckRequest) {
	previous := n.foreground()

	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := n.showBox(req.Message(), PromptTitle, mbOK|mbSystemModal); err != nil {
			n.logger.Warn("acknowledgement prompt failed", "request", req.ID, "error", err)
		}
	}()

	select {
	case <-done:
		return
	case <-n.after(focusRestoreDelay):
	}

	if previous != 0 {
		if err := n.setForeground(previous); err != nil {
			n.logger.Debug("could not restore foreground window", "request", req.ID, "error", err)
		}
	}
	<-done
}

// ShowContinuedAwayBanner raises a toast without blocking the caller.
func (n *Notifier) ShowContinuedAwayBanner() error {
	if err := n.toast(BannerTitle, BannerMessage); err != nil {
		return fmt.Errorf("show away banner: %w", err)
	}
	return nil
}

// Warn shows a blocking topmost warning box.
func (n *Notifier) Warn(title, message string) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := n.showBox(message, title, mbOK|mbSystemModal); err != nil {
		n.logger.Warn("warning dialog failed", "title", title, "error", err)
	}
}

func messageBox(text, caption string, flags uint32) error {
	textPtr, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return err
	}
	captionPtr, err := windows.UTF16PtrFromString(caption)
	if err != nil {
		return err
	}
	ret, err := windows.MessageBox(0, textPtr, captionPtr, flags)
	if ret == 0 {
		return fmt.Errorf("MessageBoxW: %w", err)
	}
	return nil
}

func setForegroundWindow(hwnd windows.HWND) error {
	r, _, err := procSetForegroundWindow.Call(uintptr(hwnd))
	if r == 0 {
		return fmt.Errorf("SetForegroundWindow: %w", err)
	}
	return nil
}
