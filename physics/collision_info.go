package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// CollisionInfo is the contact snapshot of a single step.
type CollisionInfo struct {
	Left  bool
	Right bool
	Below bool
	Above bool

	// GroundNormal is the surface tangent pointing along +x, (n.y, -n.x) of
	// the surface normal n. It is straight up when nothing was hit.
	GroundNormal cp.Vector
	Sliding      bool
}

func (c *CollisionInfo) Reset() {
	*c = CollisionInfo{GroundNormal: worldUp}
}

// Grounded reports standing on walkable ground.
func (c CollisionInfo) Grounded() bool {
	return c.Below && !c.Sliding
}

func (c CollisionInfo) String() string {
	return fmt.Sprintf("left=%v right=%v below=%v above=%v sliding=%v ground=(%.3f, %.3f)",
		c.Left, c.Right, c.Below, c.Above, c.Sliding, c.GroundNormal.X, c.GroundNormal.Y)
}
