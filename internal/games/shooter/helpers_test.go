package shooter

import (
	"github.com/vovakirdan/starshot/internal/assets"
	"github.com/vovakirdan/starshot/internal/config"
	"github.com/vovakirdan/starshot/internal/core"
)

// testPack mirrors the sprite sizes of the embedded pack without decoding images.
func testPack() *assets.Pack {
	return &assets.Pack{
		Block:  assets.Sprite{Name: "block.png", W: 30, H: 20, Color: core.ColorRed},
		Player: assets.Sprite{Name: "player.png", W: 90, H: 40, Color: core.ColorCyan},
		Bullet: assets.Sprite{Name: "bullet.png", W: 6, H: 16, Color: core.ColorBrightYellow},
	}
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60, Seed: seed}
}

func newTestGame(cfg config.ShooterConfig, seed int64) *Game {
	g := New(cfg, testPack())
	g.Reset(testRuntime(seed))
	return g
}

// stackBlocks parks every block, motionless, straight above the ship's gun.
func stackBlocks(g *Game) {
	player := g.World().Player()
	x := player.Rect.X + g.cfg.Bullet.OffsetX - 10
	for _, b := range g.World().Blocks() {
		b.Rect.X, b.Rect.Y = x, 400
		b.VX, b.VY = 0, 0
	}
}

// clearBlocks removes every block from the world.
func clearBlocks(g *Game) {
	for _, b := range append([]*Block(nil), g.World().Blocks()...) {
		g.World().Remove(b)
	}
}

func fireFrame(n int) core.InputFrame {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		in.Set(core.ActionFire)
	}
	return in
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
