package game

import "github.com/vovakirdan/text-or-die/internal/core"

// DefaultFollowFactor is the share of the remaining distance the camera
// covers per 60 Hz frame.
const DefaultFollowFactor = 0.12

// Camera keeps the tower framed. Offset is the world height shown at the
// bottom edge of the viewport, so 0 with no rest margin puts the water
// baseline on the bottom row.
type Camera struct {
	offset   float64
	target   float64
	rest     float64
	viewport float64
	factor   float64
}

// NewCamera creates a camera easing toward its target by factor per frame.
func NewCamera(factor float64) *Camera {
	return &Camera{factor: factor}
}

// SetViewport sets the visible height in world units and the offset used
// while there is nothing to follow. A negative rest keeps some ground below
// the water baseline on screen.
func (c *Camera) SetViewport(height, rest float64) {
	if c.viewport == 0 {
		c.offset = rest
		c.target = rest
	}
	c.viewport = height
	c.rest = rest
}

// Follow retargets the camera on the tower and eases toward it by dt.
// top is the upper edge of the top block and bottom the upper edge of the
// lowest block; the camera moves once either leaves the middle half.
func (c *Camera) Follow(dt float64, hasBlocks bool, top, bottom float64) {
	if !hasBlocks || c.viewport <= 0 {
		c.target = c.rest
	} else {
		q := c.viewport / 4
		switch {
		case top-c.offset > c.viewport-q:
			c.target = top - (c.viewport - q)
		case bottom-c.offset < q:
			// Never scroll the top block past the upper quarter.
			c.target = max(bottom-q, top-(c.viewport-q))
		}
	}

	c.offset = core.Lerp(c.offset, c.target, core.FrameBlend(c.factor, dt, 60))
}

// Offset returns the current camera offset.
func (c *Camera) Offset() float64 {
	return c.offset
}

// Target returns the offset the camera is easing toward.
func (c *Camera) Target() float64 {
	return c.target
}

// Reset snaps the camera back to its rest position.
func (c *Camera) Reset() {
	c.offset = c.rest
	c.target = c.rest
}
