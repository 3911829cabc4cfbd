package shooter

import (
	"math/rand"

	"github.com/vovakirdan/starshot/internal/config"
)

// Star is a decorative point in logical units.
type Star struct {
	X, Y int
}

// Starfield scrolls stars upward and recycles them below the surface.
// It never interacts with gameplay.
type Starfield struct {
	cfg   config.StarsConfig
	w, h  int
	stars []Star
}

// NewStarfield scatters cfg.Count stars over a w x h surface, extending
// cfg.InitialExtra units below the bottom edge.
func NewStarfield(cfg config.StarsConfig, w, h int, rng *rand.Rand) *Starfield {
	sf := &Starfield{cfg: cfg, w: w, h: h, stars: make([]Star, cfg.Count)}
	for i := range sf.stars {
		sf.stars[i] = Star{
			X: rng.Intn(w),
			Y: rng.Intn(h + cfg.InitialExtra),
		}
	}
	return sf
}

// Step moves every star up. A star that leaves the top edge respawns at a
// random x inside the respawn window below the bottom edge.
func (sf *Starfield) Step(rng *rand.Rand) {
	span := sf.cfg.RespawnMax - sf.cfg.RespawnMin
	for i := range sf.stars {
		s := &sf.stars[i]
		s.Y -= sf.cfg.Speed
		if s.Y < 0 {
			s.Y = sf.h + sf.cfg.RespawnMin + rng.Intn(span)
			s.X = rng.Intn(sf.w)
		}
	}
}

// Stars returns the current star positions.
func (sf *Starfield) Stars() []Star {
	return sf.stars
}
