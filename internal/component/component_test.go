package component

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthFloorsAtZero(t *testing.T) {
	h := NewHealth(100)
	h.Decrease(30)
	assert.Equal(t, uint32(70), h.Health())
	assert.True(t, h.Alive())

	h.Decrease(80)
	assert.Equal(t, uint32(0), h.Health())
	assert.False(t, h.Alive())
}

func TestHealthCapsAtMax(t *testing.T) {
	h := NewHealth(10)
	h.Decrease(4)
	h.Increase(100)
	assert.Equal(t, uint32(10), h.Health())
	h.Decrease(4)
	h.Increase(1)
	assert.Equal(t, uint32(7), h.Health())
	assert.Equal(t, uint32(10), h.MaxHealth())
}

func TestGeometry(t *testing.T) {
	a := NewGeometry(image.Rect(0, 0, 10, 10))
	b := NewGeometry(image.Rect(10, 0, 20, 10))
	assert.False(t, a.Intersects(&b), "touching edges")

	b.SetPos(image.Pt(5, 5))
	assert.True(t, a.Intersects(&b))
	assert.Equal(t, image.Pt(10, 10), b.Size())

	b.SetSize(image.Pt(2, 3))
	assert.Equal(t, image.Rect(5, 5, 7, 8), b.Rect)
}

func TestMovementDelta(t *testing.T) {
	m := NewMovement(3, DirUp)
	assert.Equal(t, image.Pt(0, -3), m.Delta())
	m.Direction = DirNone
	assert.Equal(t, image.Point{}, m.Delta())
}

func TestTurretCooldown(t *testing.T) {
	start := time.Unix(0, 0)
	tr := NewTurret(500 * time.Millisecond)
	assert.False(t, tr.HasFired())
	assert.True(t, tr.Fire(start))
	assert.False(t, tr.Fire(start.Add(499*time.Millisecond)))
	assert.True(t, tr.Fire(start.Add(500*time.Millisecond)))
}

func TestRespawnDelay(t *testing.T) {
	now := time.Unix(100, 0)
	r := NewRespawnDelay(time.Second)
	assert.True(t, r.Ready(now))
	r.Start(now)
	assert.False(t, r.Ready(now.Add(999*time.Millisecond)))
	assert.True(t, r.Ready(now.Add(time.Second)))
}

func TestLives(t *testing.T) {
	l := FiniteLives(2)
	assert.True(t, l.Decrease())
	assert.False(t, l.Decrease())
	assert.False(t, l.Left())
	assert.False(t, l.Decrease())

	inf := InfiniteLives()
	assert.True(t, inf.Decrease())
	assert.True(t, inf.Left())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "iron_wall", TileIronWall.String())
	assert.Equal(t, "tile_type(9)", TileType(9).String())
	assert.Equal(t, "enemy_tank", ObjEnemyTank.String())
	assert.Equal(t, "object_type(-1)", ObjectType(-1).String())
	assert.Equal(t, 90, DirRight.Rotation())

	d, ok := ParseDirection("down")
	assert.True(t, ok)
	assert.Equal(t, DirDown, d)
	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
}
