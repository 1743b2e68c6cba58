package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyR     = 82  // R key (ASCII)
	KeyF     = 70  // F key (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyE     = 69  // E key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)

	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// namedKeys maps non-printable GLFW key codes to the names browsers report in KeyboardEvent.key.
var namedKeys = map[uint32]string{
	KeySpace:      " ",
	KeyEsc:        "escape",
	KeyLeftShift:  "shift",
	KeyRightShift: "shift",
}

// KeyName converts a GLFW virtual key code to the normalized key name used by input events.
// Printable ASCII letters and digits map to their lowercase character, so a native "W" press
// and a browser "W" or "w" keydown produce the same name.
//
// Parameters:
//   - code: the GLFW virtual key code
//
// Returns:
//   - string: the normalized key name, or "" if the code has no name
func KeyName(code uint32) string {
	if name, ok := namedKeys[code]; ok {
		return name
	}
	switch {
	case code >= 'A' && code <= 'Z':
		return string(rune(code - 'A' + 'a'))
	case code >= '0' && code <= '9':
		return string(rune(code))
	}
	return ""
}

// NormalizeKey folds a key name to the case-insensitive form used for key bindings.
//
// Parameters:
//   - key: a key name as reported by a platform (e.g. "W", "w", "Escape")
//
// Returns:
//   - string: the lowercase key name
func NormalizeKey(key string) string {
	if key == " " {
		return key
	}
	return strings.ToLower(strings.TrimSpace(key))
}
