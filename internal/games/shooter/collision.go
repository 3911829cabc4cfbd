package shooter

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Hit records a bullet destroying a block.
type Hit struct {
	Bullet *Bullet
	Block  *Block
}

// Collide resolves bullet/block collisions for one frame. Bullets are checked
// in spawn order and each destroys at most one block: when several blocks
// overlap a bullet, the one whose center is nearest the bullet's center is
// destroyed, and equal distances go to the lowest block ID. Bullets that
// survive and whose top is above despawnY are removed without scoring.
// Returns the hits in the order they happened and the number of despawned bullets.
func Collide(w *World, despawnY int) (hits []Hit, despawned int) {
	bullets := append([]*Bullet(nil), w.Bullets()...)

	for _, bullet := range bullets {
		if target := nearestOverlap(bullet, w.Blocks()); target != nil {
			w.Remove(target)
			w.Remove(bullet)
			hits = append(hits, Hit{Bullet: bullet, Block: target})
			continue
		}
		if bullet.Rect.Y < despawnY {
			w.Remove(bullet)
			despawned++
		}
	}
	return hits, despawned
}

// nearestOverlap returns the block overlapping the bullet that is closest to
// it, or nil when none overlaps.
func nearestOverlap(bullet *Bullet, blocks []*Block) *Block {
	origin := center(bullet.Rect.CenterF())

	var (
		best     *Block
		bestDist float64
	)
	for _, b := range blocks {
		if !bullet.Rect.Intersects(b.Rect) {
			continue
		}
		d := center(b.Rect.CenterF()).Sub(origin).Len()
		if best == nil || d < bestDist || (d == bestDist && b.ID() < best.ID()) {
			best, bestDist = b, d
		}
	}
	return best
}

func center(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{x, y}
}
