package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/common"
)

// Sphere is a solid or translucent ball node, used for nucleons and
// their glow shells.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
	Color  common.Color
	Alpha  float32
}

// Cylinder is a capped tube node spanning Start to End, used for bond
// segments.
type Cylinder struct {
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Radius float32
	Color  common.Color
	Alpha  float32
}

// Label is a billboarded text node.
type Label struct {
	Position mgl32.Vec3
	Text     string
}
