//go:build js && wasm

package browser

import (
	"fmt"

	"github.com/hack-pad/safejs"
)

// Publisher exposes a byte buffer to page scripts as a Uint8Array global.
type Publisher struct {
	name  string
	array safejs.Value
}

// NewPublisher creates a Uint8Array of the given size and assigns it to globalThis[name].
//
// Parameters:
//   - name: the global property name
//   - size: the buffer size in bytes
//
// Returns:
//   - *Publisher: the publisher
//   - error: error if the array cannot be created or assigned
func NewPublisher(name string, size int) (*Publisher, error) {
	ctor, err := safejs.Global().Get("Uint8Array")
	if err != nil {
		return nil, fmt.Errorf("get Uint8Array: %w", err)
	}
	array, err := ctor.New(size)
	if err != nil {
		return nil, fmt.Errorf("new Uint8Array(%d): %w", size, err)
	}
	if err := safejs.Global().Set(name, array); err != nil {
		return nil, fmt.Errorf("set %s: %w", name, err)
	}
	return &Publisher{name: name, array: array}, nil
}

// Publish copies b into the published array.
//
// Parameters:
//   - b: the bytes to publish
//
// Returns:
//   - error: error if the copy fails or is short
func (p *Publisher) Publish(b []byte) error {
	n, err := safejs.CopyBytesToJS(p.array, b)
	if err != nil {
		return fmt.Errorf("publish %s: %w", p.name, err)
	}
	if n != len(b) {
		return fmt.Errorf("publish %s: copied %d of %d bytes", p.name, n, len(b))
	}
	return nil
}
