package shooter

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/starshot/internal/assets"
	"github.com/vovakirdan/starshot/internal/core"
)

// Render draws the current frame onto the screen: background, then either the
// win banner or every entity, then the starfield, then the score line.
// The logical surface is stretched over the whole screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()
	cols, rows := screen.Width(), screen.Height()
	if cols == 0 || rows == 0 || g.world == nil {
		return
	}
	w, h := g.Logical()
	vp := core.NewViewport(w, h, cols, rows)

	g.drawBackground(screen, cols, rows)

	if g.won {
		screen.DrawTextCentered(rows/2, g.cfg.Win.Banner, core.ColorBrightWhite)
	} else {
		for _, e := range g.world.All() {
			g.drawEntity(screen, vp, e)
		}
	}

	g.drawStars(screen, vp)

	hud := fmt.Sprintf("Score: %d/%d", g.score, g.cfg.Blocks.Count)
	screen.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

func (g *Game) drawBackground(screen *core.Screen, cols, rows int) {
	if g.pack.Background == nil {
		return
	}
	shade := g.pack.Background.Shade(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			screen.SetBg(x, y, shade[y*cols+x])
		}
	}
}

// drawEntity fills the cells an entity covers with its variant's glyph.
func (g *Game) drawEntity(screen *core.Screen, vp core.Viewport, e Entity) {
	var (
		sprite assets.Sprite
		glyph  rune
	)
	switch e.Kind() {
	case KindBlock:
		sprite, glyph = g.pack.Block, glyphOf(g.cfg.Blocks.Glyph, '#')
	case KindPlayer:
		sprite, glyph = g.pack.Player, glyphOf(g.cfg.Player.Glyph, '^')
	case KindBullet:
		sprite, glyph = g.pack.Bullet, glyphOf(g.cfg.Bullet.Glyph, '|')
	default:
		return
	}
	screen.DrawRect(clip(vp.Project(e.Bounds()), screen), glyph, sprite.Color)
}

// drawStars plots every star close enough to a cell center.
func (g *Game) drawStars(screen *core.Screen, vp core.Viewport) {
	glyph := glyphOf(g.cfg.Stars.Glyph, '.')
	for _, s := range g.stars.Stars() {
		if col, row, ok := vp.Sample(s.X, s.Y, g.cfg.Stars.Radius); ok {
			screen.SetColored(col, row, glyph, core.ColorWhite)
		}
	}
}

// clip limits a cell rectangle to the screen.
func clip(r core.Rect, screen *core.Screen) core.Rect {
	x0 := core.Clamp(r.Left(), 0, screen.Width())
	y0 := core.Clamp(r.Top(), 0, screen.Height())
	x1 := core.Clamp(r.Right(), 0, screen.Width())
	y1 := core.Clamp(r.Bottom(), 0, screen.Height())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// glyphOf returns the first rune of s, or fallback when s is empty.
func glyphOf(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
