package shooter

// World is the collection of live entities. It keeps every entity in spawn
// order plus typed views of blocks and bullets for collision queries.
type World struct {
	nextID  int
	all     []Entity
	blocks  []*Block
	bullets []*Bullet
	player  *Player
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{nextID: 1}
}

// Add inserts an entity and assigns its ID. IDs grow with spawn order.
func (w *World) Add(e Entity) {
	switch v := e.(type) {
	case *Block:
		v.id = w.nextID
		w.blocks = append(w.blocks, v)
	case *Bullet:
		v.id = w.nextID
		w.bullets = append(w.bullets, v)
	case *Player:
		v.id = w.nextID
		w.player = v
	default:
		return
	}
	w.nextID++
	w.all = append(w.all, e)
}

// Remove deletes an entity from every view. Removing an entity that is not
// in the world does nothing.
func (w *World) Remove(e Entity) {
	switch v := e.(type) {
	case *Block:
		w.blocks = removeFrom(w.blocks, v)
	case *Bullet:
		w.bullets = removeFrom(w.bullets, v)
	case *Player:
		if w.player == v {
			w.player = nil
		}
	}
	w.all = removeFrom(w.all, e)
}

// Update advances every entity by one frame, in spawn order.
func (w *World) Update(t Tick) {
	for _, e := range w.all {
		e.Update(t)
	}
}

// All returns every live entity in spawn order.
func (w *World) All() []Entity {
	return w.all
}

// Blocks returns the live blocks in spawn order.
func (w *World) Blocks() []*Block {
	return w.blocks
}

// Bullets returns the live bullets in spawn order.
func (w *World) Bullets() []*Bullet {
	return w.bullets
}

// Player returns the ship, or nil before one is added.
func (w *World) Player() *Player {
	return w.player
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.all)
}

// removeFrom deletes the first occurrence of v, keeping order.
func removeFrom[T comparable](s []T, v T) []T {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
