package diablo

// Isometric tile dimensions in pixels. Tiles render twice as wide as they
// are tall (2:1 ratio) to fake a 3D ground plane.
const (
	TileWidth  = 64.0
	TileHeight = 32.0
)

// IsoProject converts world tile coordinates to isometric pixel coordinates,
// before any camera offset is applied.
func IsoProject(x, y float64) (ix, iy float64) {
	ix = (x - y) * TileWidth / 2
	iy = (x + y) * TileHeight / 2
	return
}

// IsoUnproject is the exact inverse of IsoProject.
func IsoUnproject(ix, iy float64) (x, y float64) {
	x = ix/TileWidth + iy/TileHeight
	y = iy/TileHeight - ix/TileWidth
	return
}

// Depth returns the ground-plane depth of a world position. Entities draw in
// ascending depth order so nearer ones occlude farther ones.
func Depth(x, y float64) float64 {
	return x + y
}

// Direction is a four-way facing derived from a movement vector.
type Direction uint8

const (
	DirDownLeft Direction = iota
	DirDownRight
	DirUpLeft
	DirUpRight

	// DirectionCount is the number of facings, and the row count of a
	// sprite sheet.
	DirectionCount = 4
)

// DirectionFrom derives a facing from a world-space movement vector.
// A zero vector returns prev so entities keep their last facing.
func DirectionFrom(dx, dy float64, prev Direction) Direction {
	if dx == 0 && dy == 0 {
		return prev
	}
	switch {
	case dx < 0 && dy < 0:
		return DirUpLeft
	case dx >= 0 && dy < 0:
		return DirUpRight
	case dx < 0:
		return DirDownLeft
	default:
		return DirDownRight
	}
}

// IsLeft reports whether this facing points toward the left side of the screen.
func (d Direction) IsLeft() bool {
	return d == DirDownLeft || d == DirUpLeft
}

// Row returns the sprite sheet row for this facing. Sheets are authored with
// one row per direction in the order down-left, down-right, up-left, up-right.
func (d Direction) Row() int {
	return int(d)
}

func (d Direction) String() string {
	switch d {
	case DirDownLeft:
		return "down-left"
	case DirDownRight:
		return "down-right"
	case DirUpLeft:
		return "up-left"
	case DirUpRight:
		return "up-right"
	default:
		return "unknown"
	}
}
