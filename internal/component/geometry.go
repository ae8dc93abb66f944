package component

import "image"

// Geometry is an entity's bounding box in map pixels plus its rotation in degrees.
type Geometry struct {
	Rect     image.Rectangle
	Rotation int
}

func NewGeometry(rect image.Rectangle) Geometry {
	return Geometry{Rect: rect}
}

// Intersects reports whether the two boxes share any area. Touching edges do not count.
func (g *Geometry) Intersects(other *Geometry) bool {
	return g.Rect.Overlaps(other.Rect)
}

func (g *Geometry) IntersectsRect(r image.Rectangle) bool {
	return g.Rect.Overlaps(r)
}

func (g *Geometry) Pos() image.Point { return g.Rect.Min }

// SetPos moves the box keeping its size.
func (g *Geometry) SetPos(p image.Point) {
	g.Rect = g.Rect.Add(p.Sub(g.Rect.Min))
}

func (g *Geometry) Size() image.Point { return g.Rect.Size() }

func (g *Geometry) SetSize(size image.Point) {
	g.Rect.Max = g.Rect.Min.Add(size)
}

// Movement holds a speed in pixels per tick and the current heading.
type Movement struct {
	Speed     uint32
	Direction Direction
}

func NewMovement(speed uint32, dir Direction) Movement {
	return Movement{Speed: speed, Direction: dir}
}

// Delta is the offset one tick of movement applies.
func (m *Movement) Delta() image.Point {
	s := int(m.Speed)
	switch m.Direction {
	case DirLeft:
		return image.Pt(-s, 0)
	case DirRight:
		return image.Pt(s, 0)
	case DirUp:
		return image.Pt(0, -s)
	case DirDown:
		return image.Pt(0, s)
	default:
		return image.Point{}
	}
}
