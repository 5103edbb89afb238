package render

// Camera translates between board coordinates and screen coordinates.
// Board X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	zoom       float64
}

// NewCamera creates a camera centered on board position (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, zoom: 1}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that board position (cx, cy) is in the
// middle of the viewport.
func (c *Camera) Center(cx, cy int) {
	// ViewWidth is in columns; each board cell is 2 columns wide.
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// SetZoom records the per-phase lens hint from the level config. Terminal
// cells cannot scale, so the value is carried for renderers that can use it.
func (c *Camera) SetZoom(z float64) {
	if z > 0 {
		c.zoom = z
	}
}

// Zoom returns the current lens hint.
func (c *Camera) Zoom() float64 { return c.zoom }

// BoardToScreen converts board (bx, row) to screen (sx, sy), where row is
// already flipped to screen orientation. visible is false when the result
// falls outside the viewport.
func (c *Camera) BoardToScreen(bx, row int) (sx, sy int, visible bool) {
	sx = (bx - c.OffsetX) * 2
	sy = row - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
