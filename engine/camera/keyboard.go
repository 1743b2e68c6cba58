package camera

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/timer"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a logical keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Back
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// axis returns the camera-local axis index and sign a direction drives.
// Basis.Right faces the viewer's left, so strafing left runs along it and strafing right against it.
func (d Direction) axis() (int, bool) {
	switch d {
	case Forward:
		return 2, true
	case Back:
		return 2, false
	case Left:
		return 0, true
	case Right:
		return 0, false
	case Up:
		return 1, true
	default:
		return 1, false
	}
}

// KeyMap binds normalized key names to movement directions.
type KeyMap map[string]Direction

// DefaultKeyMap returns the default bindings: W/S forward/back, A/D strafe, R/F up/down.
//
// Returns:
//   - KeyMap: the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"w": Forward,
		"s": Back,
		"a": Left,
		"d": Right,
		"r": Up,
		"f": Down,
	}
}

// NewKeyMap builds a KeyMap from one key per direction. Keys are case-insensitive.
//
// Parameters:
//   - forward, back, left, right, up, down: the key name bound to each direction
//
// Returns:
//   - KeyMap: the bindings
//   - error: error if a key is empty or bound to more than one direction
func NewKeyMap(forward, back, left, right, up, down string) (KeyMap, error) {
	m := KeyMap{}
	bindings := []struct {
		key string
		dir Direction
	}{
		{forward, Forward}, {back, Back}, {left, Left}, {right, Right}, {up, Up}, {down, Down},
	}
	for _, b := range bindings {
		key := common.NormalizeKey(b.key)
		if key == "" {
			return nil, fmt.Errorf("no key bound to %s", b.dir)
		}
		if prev, ok := m[key]; ok {
			return nil, fmt.Errorf("key %q bound to both %s and %s", key, prev, b.dir)
		}
		m[key] = b.dir
	}
	return m, nil
}

// Lookup finds the direction bound to a key, ignoring case.
//
// Parameters:
//   - key: the key name from an input event
//
// Returns:
//   - Direction: the bound direction
//   - bool: false if the key is unbound
func (m KeyMap) Lookup(key string) (Direction, bool) {
	d, ok := m[common.NormalizeKey(key)]
	return d, ok
}

// keyboardBinding records the camera's registrations on its document.
type keyboardBinding struct {
	attached bool
	down     input.ListenerID
	up       input.ListenerID
}

// motionState is the held-key accumulator. Each axis has a positive and a negative rate;
// the net rate is their difference. The repeat task runs exactly while some key is held.
type motionState struct {
	positive mgl32.Vec3
	negative mgl32.Vec3

	task timer.Task
	gen  uint64
	last time.Time
}

func (m *motionState) set(d Direction, rate float32) {
	i, positive := d.axis()
	if positive {
		m.positive[i] = rate
	} else {
		m.negative[i] = rate
	}
}

func (m *motionState) net() mgl32.Vec3 {
	return m.positive.Sub(m.negative)
}

func (m *motionState) idle() bool {
	return m.positive == (mgl32.Vec3{}) && m.negative == (mgl32.Vec3{})
}

func (c *firstPersonCamera) AddKeyboardListener() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keyboard.attached {
		return
	}
	if c.document == nil {
		c.logger.Warn().Msg("keyboard listener not attached: camera has no document")
		return
	}
	c.keyboard = keyboardBinding{
		attached: true,
		down:     c.document.AddListener(input.KeyDown, c.handlers.keyDown),
		up:       c.document.AddListener(input.KeyUp, c.handlers.keyUp),
	}
	c.logger.Debug().Msg("keyboard listener attached")
}

func (c *firstPersonCamera) RemoveKeyboardListener() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.keyboard.attached {
		return
	}
	c.document.RemoveListener(input.KeyDown, c.keyboard.down)
	c.document.RemoveListener(input.KeyUp, c.keyboard.up)
	c.keyboard = keyboardBinding{}

	c.motion.positive = mgl32.Vec3{}
	c.motion.negative = mgl32.Vec3{}
	c.stopMotion()
	c.logger.Debug().Msg("keyboard listener removed")
}

func (c *firstPersonCamera) handleKeyDown(e input.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.keyboard.attached {
		return
	}
	d, ok := c.keys.Lookup(e.Key)
	if !ok {
		return
	}
	c.motion.set(d, c.keyboardTranslateRate)
	if c.motion.task == nil && !c.motion.idle() {
		c.startMotion()
	}
}

func (c *firstPersonCamera) handleKeyUp(e input.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.keyboard.attached {
		return
	}
	d, ok := c.keys.Lookup(e.Key)
	if !ok {
		return
	}
	c.motion.set(d, 0)
	if c.motion.idle() {
		c.stopMotion()
	}
}

// startMotion schedules the repeat task.
// Caller must hold the mutex.
func (c *firstPersonCamera) startMotion() {
	c.motion.gen++
	gen := c.motion.gen
	c.motion.last = c.now()
	c.motion.task = c.scheduler.Every(c.repeatInterval, func() {
		c.motionTick(gen)
	})
	c.logger.Debug().Uint64("gen", gen).Msg("keyboard motion started")
}

// stopMotion cancels the repeat task if one is running.
// Caller must hold the mutex.
func (c *firstPersonCamera) stopMotion() {
	if c.motion.task == nil {
		return
	}
	c.motion.task.Cancel()
	c.motion.task = nil
	c.motion.gen++
	c.logger.Debug().Msg("keyboard motion stopped")
}

// motionTick integrates the net key rate over the wall-clock time since the previous tick.
// Ticks from a task that has since been cancelled are discarded.
func (c *firstPersonCamera) motionTick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.motion.task == nil || c.motion.gen != gen {
		return
	}
	now := c.now()
	dt := float32(now.Sub(c.motion.last).Seconds())
	c.motion.last = now
	c.translateRelativeLocked(c.motion.net().Mul(dt))
}
