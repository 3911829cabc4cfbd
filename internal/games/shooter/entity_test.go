package shooter

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/starshot/internal/core"
)

var screenBound = core.NewRect(0, 0, 1200, 800)

func TestBlockReflectsAtLeftBoundary(t *testing.T) {
	b := NewBlock(core.NewRect(100, 100, 30, 20), -3, 0, screenBound)

	steps := 0
	for b.Rect.Left() > 0 {
		b.Update(Tick{})
		steps++
		if steps > 1000 {
			t.Fatal("block never reached the left boundary")
		}
	}
	if b.VX != 3 {
		t.Fatalf("VX = %d after reaching left <= 0, expected 3", b.VX)
	}

	x := b.Rect.X
	b.Update(Tick{})
	if b.VX != 3 {
		t.Errorf("VX = %d on the following update, expected 3", b.VX)
	}
	if b.Rect.X != x+3 {
		t.Errorf("X = %d, expected the block to move right to %d", b.Rect.X, x+3)
	}
}

func TestBlockReflection(t *testing.T) {
	tests := []struct {
		name           string
		rect           core.Rect
		vx, vy         int
		wantVX, wantVY int
	}{
		{"free flight", core.NewRect(500, 300, 30, 20), 2, -1, 2, -1},
		{"crosses right", core.NewRect(1169, 300, 30, 20), 3, 0, -3, 0},
		{"touches right edge only", core.NewRect(1167, 300, 30, 20), 3, 0, 3, 0},
		{"reaches bottom", core.NewRect(500, 777, 30, 20), 0, 3, 0, -3},
		{"reaches top", core.NewRect(500, 2, 30, 20), 0, -2, 0, 2},
		{"corner", core.NewRect(1, 1, 30, 20), -1, -1, 1, 1},
		{"stationary at top", core.NewRect(500, 0, 30, 20), 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBlock(tc.rect, tc.vx, tc.vy, screenBound)
			b.Update(Tick{})
			if b.Rect.X != tc.rect.X+tc.vx || b.Rect.Y != tc.rect.Y+tc.vy {
				t.Errorf("position = (%d,%d), expected move by (%d,%d) without clamping",
					b.Rect.X, b.Rect.Y, tc.vx, tc.vy)
			}
			if b.VX != tc.wantVX || b.VY != tc.wantVY {
				t.Errorf("velocity = (%d,%d), expected (%d,%d)", b.VX, b.VY, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestBlockStaysWithinBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const maxSpeed = 3

	for i := 0; i < 200; i++ {
		x := rng.Intn(1200 - 30)
		y := rng.Intn(800 - 20)
		vx := rng.Intn(2*maxSpeed+1) - maxSpeed
		vy := rng.Intn(2*maxSpeed+1) - maxSpeed
		b := NewBlock(core.NewRect(x, y, 30, 20), vx, vy, screenBound)

		for step := 0; step < 2000; step++ {
			b.Update(Tick{})
			r := b.Rect
			if r.Left() < -maxSpeed || r.Right() > 1200+maxSpeed ||
				r.Top() < -maxSpeed || r.Bottom() > 800+maxSpeed {
				t.Fatalf("block %d (start %d,%d v %d,%d) escaped to %+v at step %d",
					i, x, y, vx, vy, r, step)
			}
		}
	}
}

func TestPlayerFollowsPointer(t *testing.T) {
	p := NewPlayer(core.NewRect(0, 700, 90, 40))
	for _, x := range []int{0, 340, 1199, 17} {
		p.Update(Tick{PointerX: x})
		if p.Rect.X != x || p.Rect.Y != 700 {
			t.Errorf("after pointer %d player at (%d,%d), expected (%d,700)", x, p.Rect.X, p.Rect.Y, x)
		}
	}
}

func TestBulletMovesStraightUp(t *testing.T) {
	b := NewBullet(core.NewRect(50, 400, 6, 16), 3)
	b.Update(Tick{PointerX: 999})
	if b.Rect.X != 50 || b.Rect.Y != 397 {
		t.Errorf("bullet at (%d,%d), expected (50,397)", b.Rect.X, b.Rect.Y)
	}
}

func TestBulletRemovedByStep137(t *testing.T) {
	w := NewWorld()
	bullet := NewBullet(core.NewRect(50, 400, 6, 16), 3)
	w.Add(bullet)

	for step := 1; step <= 137; step++ {
		w.Update(Tick{})
		Collide(w, -10)
		if step == 136 && len(w.Bullets()) != 1 {
			t.Fatalf("bullet at y=%d removed too early", bullet.Rect.Y)
		}
	}
	if len(w.Bullets()) != 0 {
		t.Errorf("bullet at y=%d should be gone after 137 steps", bullet.Rect.Y)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindBlock, "block"},
		{KindPlayer, "player"},
		{KindBullet, "bullet"},
		{Kind(42), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, expected %q", tc.k, got, tc.want)
		}
	}
}
