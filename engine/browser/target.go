//go:build js && wasm

package browser

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/hack-pad/safejs"
	"github.com/rs/zerolog"
)

// registration is one addEventListener call. The wrapped function is released on removal.
type registration struct {
	kind input.EventKind
	fn   safejs.Func
}

// target implements input.Target over a DOM EventTarget.
type target struct {
	mu     *sync.Mutex
	value  safejs.Value
	logger zerolog.Logger

	nextID input.ListenerID
	regs   map[input.ListenerID]registration
}

func newTarget(value safejs.Value, logger zerolog.Logger) *target {
	return &target{
		mu:     &sync.Mutex{},
		value:  value,
		logger: logger,
		regs:   make(map[input.ListenerID]registration),
	}
}

func (t *target) AddListener(kind input.EventKind, l input.Listener) input.ListenerID {
	fn, err := safejs.FuncOf(func(_ safejs.Value, args []safejs.Value) any {
		if len(args) == 0 {
			return nil
		}
		l(t.toEvent(kind, args[0]))
		return nil
	})
	if err != nil {
		t.logger.Error().Err(err).Stringer("kind", kind).Msg("wrap listener")
		return 0
	}
	if _, err := t.value.Call("addEventListener", kind.String(), fn); err != nil {
		fn.Release()
		t.logger.Error().Err(err).Stringer("kind", kind).Msg("addEventListener")
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	t.regs[t.nextID] = registration{kind: kind, fn: fn}
	return t.nextID
}

func (t *target) RemoveListener(kind input.EventKind, id input.ListenerID) {
	t.mu.Lock()
	reg, ok := t.regs[id]
	if ok && reg.kind == kind {
		delete(t.regs, id)
	}
	t.mu.Unlock()
	if !ok || reg.kind != kind {
		return
	}

	if _, err := t.value.Call("removeEventListener", kind.String(), reg.fn); err != nil {
		t.logger.Error().Err(err).Stringer("kind", kind).Msg("removeEventListener")
	}
	reg.fn.Release()
}

// toEvent reads the fields of a DOM event relevant to kind.
func (t *target) toEvent(kind input.EventKind, v safejs.Value) input.Event {
	e := input.Event{Kind: kind}
	switch kind {
	case input.KeyDown, input.KeyUp:
		e.Key = t.stringField(v, "key")
	case input.MouseDown:
		e.Button = int(t.floatField(v, "button"))
	case input.MouseMove:
		e.MovementX = t.floatField(v, "movementX")
		e.MovementY = t.floatField(v, "movementY")
	case input.Wheel:
		e.DeltaY = t.floatField(v, "deltaY")
	}
	return e
}

func (t *target) stringField(v safejs.Value, name string) string {
	f, err := v.Get(name)
	if err != nil {
		t.logger.Debug().Err(err).Str("field", name).Msg("read event field")
		return ""
	}
	s, err := f.String()
	if err != nil {
		return ""
	}
	return s
}

func (t *target) floatField(v safejs.Value, name string) float64 {
	f, err := v.Get(name)
	if err != nil {
		t.logger.Debug().Err(err).Str("field", name).Msg("read event field")
		return 0
	}
	n, err := f.Float()
	if err != nil {
		return 0
	}
	return n
}

// intField reads an integer property of the wrapped element, returning 0 on failure.
func (t *target) intField(name string) int {
	f, err := t.value.Get(name)
	if err != nil {
		t.logger.Debug().Err(err).Str("field", name).Msg("read property")
		return 0
	}
	n, err := f.Int()
	if err != nil {
		return 0
	}
	return n
}
