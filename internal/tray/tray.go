// Package tray provides the system tray menu for the reader: toggle gesture
// control, show the last page turn and quit.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray menu.
type Tray struct {
	onToggle func(enabled bool)
	onQuit   func()
	enabled  bool
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuToggle   *systray.MenuItem
	menuLastTurn *systray.MenuItem
	menuPage     *systray.MenuItem
}

// New creates a new Tray instance with gesture control enabled by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback function to be called when gesture control is
// toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnQuit sets the callback function to be called when the quit menu item is
// clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetTitle("PDF Reader")
	systray.SetTooltip("Inconvenient PDF Reader")

	t.menuToggle = systray.AddMenuItem("● Gestures enabled", "Toggle gesture page turning")
	systray.AddSeparator()

	t.menuPage = systray.AddMenuItem("Page: -", "Current page")
	t.menuPage.Disable()
	t.menuLastTurn = systray.AddMenuItem("Last turn: none", "Last page turn")
	t.menuLastTurn.Disable()
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit the reader")

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {
	// Cleanup resources if needed
}

func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Gestures enabled")
	} else {
		t.menuToggle.SetTitle("○ Gestures disabled")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// Quit stops the tray event loop, unblocking Run.
func (t *Tray) Quit() {
	systray.Quit()
}

// SetLastTurn updates the last page turn display in the menu.
func (t *Tray) SetLastTurn(direction string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastTurn != nil {
		if direction == "" {
			t.menuLastTurn.SetTitle("Last turn: none")
		} else {
			t.menuLastTurn.SetTitle("Last turn: " + direction)
		}
	}
}

// SetPage updates the current page display in the menu.
func (t *Tray) SetPage(label string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuPage != nil {
		t.menuPage.SetTitle("Page: " + label)
	}
}

// IsEnabled returns whether gesture control is enabled.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
