package shooter

// Snapshot is a flat copy of the game state for determinism checks.
type Snapshot struct {
	Frame    int
	Score    int
	Won      bool
	PointerX int

	// Each block is 5 ints: ID, X, Y, VX, VY
	BlockData []int
	// Each bullet is 3 ints: ID, X, Y
	BulletData []int
	// Each star is 2 ints: X, Y
	StarData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:    g.frame,
		Score:    g.score,
		Won:      g.won,
		PointerX: g.pointerX,
	}
	if g.world == nil {
		return snap
	}

	snap.BlockData = make([]int, 0, len(g.world.Blocks())*5)
	for _, b := range g.world.Blocks() {
		snap.BlockData = append(snap.BlockData, b.ID(), b.Rect.X, b.Rect.Y, b.VX, b.VY)
	}
	snap.BulletData = make([]int, 0, len(g.world.Bullets())*3)
	for _, b := range g.world.Bullets() {
		snap.BulletData = append(snap.BulletData, b.ID(), b.Rect.X, b.Rect.Y)
	}
	snap.StarData = make([]int, 0, len(g.stars.Stars())*2)
	for _, s := range g.stars.Stars() {
		snap.StarData = append(snap.StarData, s.X, s.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PointerX) //#nosec G115 -- hash computation
	if snap.Won {
		h = h*31 + 1
	}
	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.StarData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
