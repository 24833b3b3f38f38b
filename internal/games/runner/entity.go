package runner

import "github.com/vovakirdan/birthday-runner/internal/core"

// VisualID is an opaque handle to the picture drawn for an entity.
// The simulation carries it around without interpreting it.
type VisualID string

// Visual handles supplied by the default assets.
const (
	VisualPlayerStage1 VisualID = "player1"
	VisualPlayerStage2 VisualID = "player2"
	VisualEnemy        VisualID = "enemy"
	VisualChicken      VisualID = "chicken"
)

// Entity is an immutable axis-aligned game object in canvas pixels.
type Entity struct {
	X, Y   int // Top-left corner
	W, H   int // Width and height
	Visual VisualID
}

// At returns a copy of the entity placed at (x, y).
func (e Entity) At(x, y int) Entity {
	e.X, e.Y = x, y
	return e
}

// Moved returns a copy of the entity shifted by (dx, dy).
func (e Entity) Moved(dx, dy int) Entity {
	e.X += dx
	e.Y += dy
	return e
}

// Rect returns the entity geometry.
func (e Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Overlaps reports whether two entities collide using a shrunk hitbox.
//
// The entities collide when the distance between their centers is less than
// factor times the sum of their half extents, on both axes. A factor of 1 is
// plain AABB overlap; smaller factors forgive grazing contact.
func Overlaps(a, b Entity, factor float64) bool {
	ax, ay := a.Rect().Center()
	bx, by := b.Rect().Center()

	halfW := float64(a.W)/2.0 + float64(b.W)/2.0
	halfH := float64(a.H)/2.0 + float64(b.H)/2.0

	return core.AbsF(ax-bx) < halfW*factor && core.AbsF(ay-by) < halfH*factor
}
