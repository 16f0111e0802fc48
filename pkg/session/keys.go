package session

import "strings"

// Key is a navigation key delivered while a session is open.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyTab
	KeyEscape
)

var keyNames = map[string]Key{
	"up":     KeyUp,
	"down":   KeyDown,
	"enter":  KeyEnter,
	"return": KeyEnter,
	"tab":    KeyTab,
	"esc":    KeyEscape,
	"escape": KeyEscape,
}

// ParseKey maps a key name such as "down" or "esc" to a Key.
func ParseKey(name string) (Key, bool) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "esc"
	}
	return "none"
}

// HandleKey routes a navigation key to the open session.
// It reports whether the key was consumed; with no open session nothing is.
func (a *Applier) HandleKey(k Key) bool {
	if !a.Active() {
		return false
	}
	switch k {
	case KeyDown:
		a.SelectNext()
	case KeyUp:
		a.SelectPrevious()
	case KeyEnter, KeyTab:
		a.Confirm()
	case KeyEscape:
		a.Dismiss()
	default:
		return false
	}
	return true
}
