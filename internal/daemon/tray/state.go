// Package tray implements the system tray icon and menu for the daemon.
package tray

// Controller is what the tray asks of the daemon.
type Controller interface {
	// RequestExit stops the reminder cycle before the tray shuts down.
	RequestExit()
}

// ControllerFunc adapts a plain function to Controller.
type ControllerFunc func()

// RequestExit calls f.
func (f ControllerFunc) RequestExit() { f() }
