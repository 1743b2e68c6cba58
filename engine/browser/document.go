//go:build js && wasm

package browser

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/hack-pad/safejs"
)

// Document is the page document. Keyboard and pointer-move listeners are registered on it.
type Document struct {
	*target
}

var _ input.Document = &Document{}

// NewDocument wraps the global document.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - *Document: the document
//   - error: error if no document global exists
func NewDocument(options ...Option) (*Document, error) {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	doc, err := safejs.Global().Get("document")
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	if doc.IsUndefined() || doc.IsNull() {
		return nil, fmt.Errorf("no document global")
	}
	return &Document{target: newTarget(doc, s.logger)}, nil
}

// pointerLockElement returns the element currently holding pointer lock (null if none).
func (d *Document) pointerLockElement() safejs.Value {
	el, err := d.value.Get("pointerLockElement")
	if err != nil {
		return safejs.Null()
	}
	return el
}

func (d *Document) exitPointerLock() {
	if _, err := d.value.Call("exitPointerLock"); err != nil {
		d.logger.Error().Err(err).Msg("exitPointerLock")
	}
}
