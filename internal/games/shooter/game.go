package shooter

import (
	"math/rand"

	"github.com/vovakirdan/starshot/internal/assets"
	"github.com/vovakirdan/starshot/internal/config"
	"github.com/vovakirdan/starshot/internal/core"
)

// Game owns the whole shooter state: the world, the starfield, the score
// and the RNG. It performs no I/O; sounds and logs are requested through
// the events returned by Step.
type Game struct {
	cfg     config.ShooterConfig
	pack    *assets.Pack
	runtime core.RuntimeConfig
	rng     *rand.Rand

	world *World
	stars *Starfield

	pointerX int
	score    int
	won      bool
	frame    int
}

// New creates a game from validated settings and a loaded asset pack.
// Call Reset before the first Step.
func New(cfg config.ShooterConfig, pack *assets.Pack) *Game {
	return &Game{cfg: cfg, pack: pack}
}

// Logical returns the size of the surface the game simulates on.
func (g *Game) Logical() (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Reset starts a new round: fresh blocks, ship, starfield and score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld()
	g.score = 0
	g.won = false
	g.frame = 0

	w, h := g.Logical()
	g.spawnBlocks(w, h)

	pw, ph := g.pack.Player.Size()
	g.pointerX = (w - pw) / 2
	g.world.Add(NewPlayer(core.NewRect(g.pointerX, h-g.cfg.Player.BottomOffset, pw, ph)))

	g.stars = NewStarfield(g.cfg.Stars, w, h, g.rng)
}

// spawnBlocks places the block batch at random positions and velocities.
// Both ranges are narrowed so every block starts inside its boundary.
func (g *Game) spawnBlocks(w, h int) {
	bw, bh := g.pack.Block.Size()
	bc := g.cfg.Blocks
	bound := core.NewRect(0, 0, w, h)

	xLo := bc.SpawnMarginX
	xHi := core.Min(w-bc.SpawnMarginX, w-bw)
	if xHi <= xLo {
		xHi = xLo + 1
	}
	yHi := core.Min(h-bc.SpawnMarginBottom, h-bh)
	if yHi <= 0 {
		yHi = 1
	}

	for i := 0; i < bc.Count; i++ {
		x := xLo + g.rng.Intn(xHi-xLo)
		y := g.rng.Intn(yHi)
		vx := g.rng.Intn(2*bc.MaxSpeed+1) - bc.MaxSpeed
		vy := g.rng.Intn(2*bc.MaxSpeed+1) - bc.MaxSpeed
		g.world.Add(NewBlock(core.NewRect(x, y, bw, bh), vx, vy, bound))
	}
}

// Step advances the game by one frame: bullets are spawned for every fire
// press, all entities move, collisions are resolved and the stars scroll.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.won && g.cfg.Win.Freeze {
		return core.StepResult{State: g.State()}
	}
	g.frame++

	var events []core.Event
	g.movePointer(in)

	player := g.world.Player()
	for i := 0; i < in.Count(core.ActionFire); i++ {
		g.fire(player)
		events = append(events, core.Event{Kind: core.EventShotFired, Score: g.score})
	}

	g.world.Update(Tick{PointerX: g.pointerX})

	hits, _ := Collide(g.world, g.cfg.Bullet.DespawnY)
	for range hits {
		g.score++
		events = append(events, core.Event{Kind: core.EventBlockDestroyed, Score: g.score})
		if g.score == g.cfg.Blocks.Count && !g.won {
			g.won = true
			events = append(events, core.Event{Kind: core.EventWon, Score: g.score})
		}
	}

	g.stars.Step(g.rng)

	return core.StepResult{State: g.State(), Events: events}
}

// movePointer applies the absolute pointer position, then keyboard nudges.
func (g *Game) movePointer(in core.InputFrame) {
	if in.HasPointer {
		g.pointerX = in.PointerX
	}
	nudge := in.Count(core.ActionRight) - in.Count(core.ActionLeft)
	if nudge != 0 {
		w, _ := g.Logical()
		pw, _ := g.pack.Player.Size()
		g.pointerX = core.Clamp(g.pointerX+nudge*g.cfg.Controls.KeyStep, 0, core.Max(w-pw, 0))
	}
}

// fire spawns a bullet at the ship's current position.
func (g *Game) fire(player *Player) {
	bw, bh := g.pack.Bullet.Size()
	x := g.pointerX + g.cfg.Bullet.OffsetX
	y := 0
	if player != nil {
		x = player.Rect.X + g.cfg.Bullet.OffsetX
		y = player.Rect.Y
	}
	g.world.Add(NewBullet(core.NewRect(x, y, bw, bh), g.cfg.Bullet.Speed))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:  g.score,
		Target: g.cfg.Blocks.Count,
		Won:    g.won,
		Frame:  g.frame,
	}
	if g.world != nil {
		st.Blocks = len(g.world.Blocks())
		st.Bullets = len(g.world.Bullets())
	}
	return st
}

// World returns the live entities.
func (g *Game) World() *World {
	return g.world
}

// Stars returns the starfield.
func (g *Game) Stars() *Starfield {
	return g.stars
}
