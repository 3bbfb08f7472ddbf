package tray

import (
	"log/slog"

	"github.com/getlantern/systray"
)

const (
	// AppName is shown in the tooltip and the exit command.
	AppName = "Eye Care Reminder"

	// ExitTitle is the label of the only menu command.
	ExitTitle = "Exit " + AppName
)

var (
	controller Controller
	onStart    func()
	onExit     func()
	logger     = slog.New(slog.DiscardHandler)
	exitItem   *systray.MenuItem
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStartFn is called once the tray is ready (start the reminder cycle here).
// onExitFn is called when the tray exits (cleanup here).
func Run(c Controller, l *slog.Logger, onStartFn, onExitFn func()) {
	controller = c
	onStart = onStartFn
	onExit = onExitFn
	if l != nil {
		logger = l
	}
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	icon, err := IconData()
	if err != nil {
		logger.Warn("failed to render tray icon", "error", err)
	} else {
		systray.SetIcon(icon)
	}
	systray.SetTitle(AppName)
	systray.SetTooltip(AppName)

	exitItem = systray.AddMenuItem(ExitTitle, "Stop reminders and close "+AppName)

	if onStart != nil {
		onStart()
	}

	go handleClicks(exitItem.ClickedCh, controller, Quit)
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

// handleClicks waits for the exit command. The controller is told first so
// the reminder cycle stops before the tray loop is torn down.
func handleClicks(exitCh <-chan struct{}, c Controller, quit func()) {
	<-exitCh
	logger.Info("exit requested from tray")
	if c != nil {
		c.RequestExit()
	}
	quit()
}
