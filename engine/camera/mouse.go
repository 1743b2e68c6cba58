package camera

import (
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
)

// mouseBinding records the camera's registrations for mouse look.
type mouseBinding struct {
	surface input.Surface
	down    input.ListenerID

	// moveTarget is where the mousemove listener lives while looking (the document, or the surface
	// when the camera has no document).
	moveTarget input.Target
	move       input.ListenerID
	looking    bool
}

func (c *firstPersonCamera) AddMouseListener(surface input.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addMouseListenerLocked(surface)
}

func (c *firstPersonCamera) RemoveMouseListener() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeMouseListenerLocked()
}

// addMouseListenerLocked binds mousedown on surface, replacing a binding to another surface.
// Caller must hold the mutex.
func (c *firstPersonCamera) addMouseListenerLocked(surface input.Surface) {
	if surface == nil || c.mouse.surface == surface {
		return
	}
	c.removeMouseListenerLocked()
	c.mouse = mouseBinding{
		surface: surface,
		down:    surface.AddListener(input.MouseDown, c.handlers.mouseDown),
	}
	c.logger.Debug().Msg("mouse listener attached")
}

// removeMouseListenerLocked drops the mousedown and any active mousemove registration.
// Caller must hold the mutex.
func (c *firstPersonCamera) removeMouseListenerLocked() {
	if c.mouse.surface == nil {
		return
	}
	c.stopLooking()
	c.mouse.surface.RemoveListener(input.MouseDown, c.mouse.down)
	c.mouse = mouseBinding{}
	c.logger.Debug().Msg("mouse listener removed")
}

// stopLooking removes the mousemove registration if one is active.
// Caller must hold the mutex.
func (c *firstPersonCamera) stopLooking() {
	if !c.mouse.looking {
		return
	}
	c.mouse.moveTarget.RemoveListener(input.MouseMove, c.mouse.move)
	c.mouse.moveTarget = nil
	c.mouse.move = 0
	c.mouse.looking = false
}

// handleMouseDown toggles pointer-lock mouse look on the bound surface.
func (c *firstPersonCamera) handleMouseDown(input.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.mouse.surface
	if s == nil {
		return
	}
	if s.HasPointerLock() {
		c.stopLooking()
		s.ExitPointerLock()
		c.logger.Debug().Msg("pointer lock released")
		return
	}
	s.RequestPointerLock()
	if !c.mouse.looking {
		var target input.Target = s
		if c.document != nil {
			target = c.document
		}
		c.mouse.moveTarget = target
		c.mouse.move = target.AddListener(input.MouseMove, c.handlers.mouseMove)
		c.mouse.looking = true
	}
	c.logger.Debug().Msg("pointer lock requested")
}

// handleMouseMove converts pointer deltas into a look rotation. Moves arriving while the surface
// does not hold pointer lock are ignored.
func (c *firstPersonCamera) handleMouseMove(e input.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.mouse.surface
	if s == nil || !c.mouse.looking || !s.HasPointerLock() {
		return
	}
	width, height := s.ClientWidth(), s.ClientHeight()
	if width <= 0 || height <= 0 {
		return
	}
	deltaPitch := float32(-e.MovementY/float64(height)) * c.mouseRotateRate
	deltaYaw := float32(e.MovementX/float64(width)) * c.mouseRotateRate
	c.look(deltaPitch, deltaYaw)
}
