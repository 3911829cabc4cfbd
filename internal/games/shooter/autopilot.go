package shooter

import (
	"github.com/vovakirdan/starshot/internal/core"
)

// Autopilot produces input for headless runs. It leads the block nearest the
// ship, predicting where the block will be when a bullet reaches its height,
// and fires every FireEvery frames.
type Autopilot struct {
	FireEvery int
	frame     int
}

// NewAutopilot creates an autopilot firing every fireEvery frames (at least 1).
func NewAutopilot(fireEvery int) *Autopilot {
	return &Autopilot{FireEvery: core.Max(fireEvery, 1)}
}

// Next returns the input for the game's next frame.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	a.frame++

	world := g.World()
	if world == nil || world.Player() == nil {
		return in
	}
	player := world.Player()
	bw, _ := g.pack.Bullet.Size()
	aimOffset := g.cfg.Bullet.OffsetX + bw/2

	if target, ok := a.lead(g, player); ok {
		in.SetPointer(target - aimOffset)
	}
	if a.frame%a.FireEvery == 0 {
		in.Set(core.ActionFire)
	}
	return in
}

// lead picks the lowest block above the ship and returns the x its center is
// expected to have when a bullet fired now reaches it.
func (a *Autopilot) lead(g *Game, player *Player) (int, bool) {
	var best *Block
	for _, b := range g.World().Blocks() {
		if b.Rect.Bottom() > player.Rect.Y {
			continue
		}
		if best == nil || b.Rect.Bottom() > best.Rect.Bottom() {
			best = b
		}
	}
	if best == nil {
		return 0, false
	}

	cx, cy := best.Rect.Center()
	frames := (player.Rect.Y - cy) / core.Max(g.cfg.Bullet.Speed, 1)
	w, _ := g.Logical()
	return fold(cx+best.VX*frames, w), true
}

// fold reflects x back into [0, w] the way a bouncing block travels.
func fold(x, w int) int {
	if w <= 0 {
		return 0
	}
	period := 2 * w
	p := ((x % period) + period) % period
	if p > w {
		p = period - p
	}
	return p
}
