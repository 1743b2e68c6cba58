//go:build js && wasm

package browser

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-cam/engine/input"
)

// Canvas is a canvas element used as the camera's interactive surface.
type Canvas struct {
	*target
	doc *Document
}

var _ input.Surface = &Canvas{}

// NewCanvas finds the element with the given id.
//
// Parameters:
//   - doc: the page document
//   - id: the element id
//   - options: functional options
//
// Returns:
//   - *Canvas: the canvas
//   - error: error if no element has that id
func NewCanvas(doc *Document, id string, options ...Option) (*Canvas, error) {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	el, err := doc.value.Call("getElementById", id)
	if err != nil {
		return nil, fmt.Errorf("getElementById(%q): %w", id, err)
	}
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("no element with id %q", id)
	}
	return &Canvas{target: newTarget(el, s.logger), doc: doc}, nil
}

func (c *Canvas) ClientWidth() int {
	return c.intField("clientWidth")
}

func (c *Canvas) ClientHeight() int {
	return c.intField("clientHeight")
}

func (c *Canvas) HasPointerLock() bool {
	return c.doc.pointerLockElement().Equal(c.value)
}

func (c *Canvas) RequestPointerLock() {
	if _, err := c.value.Call("requestPointerLock"); err != nil {
		c.logger.Error().Err(err).Msg("requestPointerLock")
	}
}

func (c *Canvas) ExitPointerLock() {
	c.doc.exitPointerLock()
}

// Resize sets the canvas drawing-buffer size to its CSS client size.
//
// Returns:
//   - int, int: the new width and height in pixels
func (c *Canvas) Resize() (int, int) {
	w, h := c.ClientWidth(), c.ClientHeight()
	if err := c.value.Set("width", w); err != nil {
		c.logger.Error().Err(err).Msg("set canvas width")
	}
	if err := c.value.Set("height", h); err != nil {
		c.logger.Error().Err(err).Msg("set canvas height")
	}
	return w, h
}
