package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rayphysics/physics"
)

// Collision layer bits. Shapes carry one category; rays carry a mask.
const (
	LayerSolid uint = 1 << iota
	LayerPlatform
	LayerHazard
)

// Space is a chipmunk space used purely as static geometry for ray queries.
// Nothing in it is ever stepped.
type Space struct {
	space  *cp.Space
	shapes int
}

func NewSpace() *Space {
	return &Space{space: cp.NewSpace()}
}

// CP returns the underlying Chipmunk space.
func (s *Space) CP() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// Shapes returns the number of static shapes added.
func (s *Space) Shapes() int {
	if s == nil {
		return 0
	}
	return s.shapes
}

// Raycast implements physics.Prober with the first shape along the segment
// origin..origin+dir*length whose category is in mask.
func (s *Space) Raycast(origin, dir cp.Vector, length float64, mask uint) physics.RayHit {
	if s == nil || s.space == nil || length <= 0 {
		return physics.RayHit{}
	}
	end := origin.Add(dir.Mult(length))
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: mask}
	info := s.space.SegmentQueryFirst(origin, end, 0, filter)
	if info.Shape == nil {
		return physics.RayHit{}
	}
	return physics.RayHit{
		Hit:      true,
		Distance: info.Alpha * length,
		Normal:   info.Normal,
		Point:    info.Point,
	}
}

func (s *Space) AddBox(bb cp.BB, category uint) *cp.Shape {
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	return s.add(shape, category)
}

func (s *Space) AddSegment(a, b cp.Vector, radius float64, category uint) *cp.Shape {
	shape := cp.NewSegment(s.space.StaticBody, a, b, radius)
	return s.add(shape, category)
}

// AddPolygon adds a convex polygon. Clockwise input is reversed.
func (s *Space) AddPolygon(verts []cp.Vector, category uint) *cp.Shape {
	if len(verts) < 3 {
		return nil
	}
	vs := append([]cp.Vector(nil), verts...)
	if signedArea(vs) < 0 {
		for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
			vs[i], vs[j] = vs[j], vs[i]
		}
	}
	shape := cp.NewPolyShapeRaw(s.space.StaticBody, len(vs), vs, 0)
	return s.add(shape, category)
}

func (s *Space) add(shape *cp.Shape, category uint) *cp.Shape {
	if category == 0 {
		category = LayerSolid
	}
	shape.SetFriction(0)
	shape.UserData = category
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: category, Mask: cp.ALL_CATEGORIES})
	s.space.AddShape(shape)
	s.shapes++
	return shape
}

func signedArea(verts []cp.Vector) float64 {
	area := 0.0
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		area += a.Cross(b)
	}
	return area / 2
}
