// Package shooter implements the block shooter: a ship at the bottom of the
// surface fires bullets upward at blocks bouncing around a starfield.
package shooter

import (
	"github.com/vovakirdan/starshot/internal/core"
)

// Kind identifies an entity variant.
type Kind int

const (
	KindBlock Kind = iota
	KindPlayer
	KindBullet
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Tick is the per-frame input entities update from.
type Tick struct {
	PointerX int // Pointer position in logical units
}

// Entity is one of Block, Player or Bullet.
type Entity interface {
	ID() int
	Kind() Kind
	Bounds() core.Rect
	Update(t Tick)
}

// body holds what every entity has: an identity and a bounding box.
type body struct {
	id   int
	Rect core.Rect
}

// ID returns the spawn-order identifier assigned by the World.
func (b *body) ID() int { return b.id }

// Bounds returns the entity's bounding box in logical units.
func (b *body) Bounds() core.Rect { return b.Rect }

// Block is a target that bounces inside Bound at a constant velocity.
type Block struct {
	body
	VX, VY int
	Bound  core.Rect
}

// NewBlock creates a block at rect moving by (vx, vy) per frame inside bound.
func NewBlock(rect core.Rect, vx, vy int, bound core.Rect) *Block {
	return &Block{body: body{Rect: rect}, VX: vx, VY: vy, Bound: bound}
}

// Kind returns KindBlock.
func (b *Block) Kind() Kind { return KindBlock }

// Update moves the block, then reverses each velocity component whose edge
// touched or crossed the boundary. The position is never clamped, so a block
// may overshoot by up to one frame's displacement.
func (b *Block) Update(Tick) {
	b.Rect = b.Rect.Moved(b.VX, b.VY)

	if b.Rect.Right() > b.Bound.Right() || b.Rect.Left() <= b.Bound.Left() {
		b.VX = -b.VX
	}
	if b.Rect.Bottom() >= b.Bound.Bottom() || b.Rect.Top() <= b.Bound.Top() {
		b.VY = -b.VY
	}
}

// Player is the ship. It follows the pointer horizontally at a fixed height.
type Player struct {
	body
}

// NewPlayer creates the ship at rect.
func NewPlayer(rect core.Rect) *Player {
	return &Player{body: body{Rect: rect}}
}

// Kind returns KindPlayer.
func (p *Player) Kind() Kind { return KindPlayer }

// Update places the ship's left edge at the pointer.
func (p *Player) Update(t Tick) {
	p.Rect.X = t.PointerX
}

// Bullet flies straight up at a constant speed.
type Bullet struct {
	body
	Speed int
}

// NewBullet creates a bullet at rect moving up speed units per frame.
func NewBullet(rect core.Rect, speed int) *Bullet {
	return &Bullet{body: body{Rect: rect}, Speed: speed}
}

// Kind returns KindBullet.
func (b *Bullet) Kind() Kind { return KindBullet }

// Update moves the bullet up.
func (b *Bullet) Update(Tick) {
	b.Rect.Y -= b.Speed
}
