package diablo

import "math"

// followRate controls how quickly the camera converges on its follow target.
const followRate = 5.0

// Camera centers the view on a world position and converts between world
// tile coordinates and screen pixels.
type Camera struct {
	// X and Y are the world-space tile coordinates the camera centers on.
	X, Y float64
	// ScreenW and ScreenH are the view size in pixels.
	ScreenW, ScreenH float64
}

// NewCamera creates a camera centered on the world origin.
func NewCamera(screenW, screenH float64) *Camera {
	return &Camera{ScreenW: screenW, ScreenH: screenH}
}

// Follow moves the camera toward the target with exponential decay. The
// remaining offset shrinks by the same factor per second regardless of frame
// rate, and the camera never overshoots.
func (c *Camera) Follow(targetX, targetY, dt float64) {
	t := 1 - math.Exp(-followRate*dt)
	c.X += (targetX - c.X) * t
	c.Y += (targetY - c.Y) * t
}

// Jump snaps the camera to the target with no smoothing.
func (c *Camera) Jump(targetX, targetY float64) {
	c.X = targetX
	c.Y = targetY
}

// WorldToScreen converts world tile coordinates to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (sx, sy float64) {
	ix, iy := IsoProject(x, y)
	cx, cy := IsoProject(c.X, c.Y)
	sx = ix - cx + c.ScreenW/2
	sy = iy - cy + c.ScreenH/2
	return
}

// ScreenToWorld converts screen pixels to world tile coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (x, y float64) {
	cx, cy := IsoProject(c.X, c.Y)
	return IsoUnproject(sx-c.ScreenW/2+cx, sy-c.ScreenH/2+cy)
}

// VisibleTiles returns the inclusive tile range that can appear on screen,
// expanded by margin tiles on every side. Used for draw culling.
func (c *Camera) VisibleTiles(margin int) (minX, minY, maxX, maxY int) {
	// The visible area is a diamond in world space; unproject the four
	// screen corners and take their AABB.
	x0, y0 := c.ScreenToWorld(0, 0)
	x1, y1 := c.ScreenToWorld(c.ScreenW, 0)
	x2, y2 := c.ScreenToWorld(0, c.ScreenH)
	x3, y3 := c.ScreenToWorld(c.ScreenW, c.ScreenH)

	fminX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	fminY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	fmaxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	fmaxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	minX = int(math.Floor(fminX)) - margin
	minY = int(math.Floor(fminY)) - margin
	maxX = int(math.Ceil(fmaxX)) + margin
	maxY = int(math.Ceil(fmaxY)) + margin
	return
}
