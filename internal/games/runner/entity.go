package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Kind is the type of a scrolling entity.
type Kind int

const (
	KindBrick Kind = iota
	KindBrickLow1
	KindBrickLow2
	KindBones
	KindSkull
	KindCliff
	KindWater
	KindPlant
	KindBush1
	KindBush2
	KindFire
	KindBigFire
)

// Asset returns the image name drawn for the kind.
func (k Kind) Asset() string {
	switch k {
	case KindBrick:
		return "brick"
	case KindBrickLow1:
		return "brick1"
	case KindBrickLow2:
		return "brick2"
	case KindBones:
		return "bones"
	case KindSkull:
		return "skull"
	case KindCliff:
		return "cliff"
	case KindWater:
		return "water"
	case KindPlant:
		return "plant"
	case KindBush1:
		return "bush1"
	case KindBush2:
		return "bush2"
	case KindFire:
		return "fire"
	case KindBigFire:
		return "bigfire"
	default:
		return ""
	}
}

// String returns the asset name, which doubles as the kind's name.
func (k Kind) String() string {
	return k.Asset()
}

// IsGround reports whether the kind is a platform block the player can land on.
func (k Kind) IsGround() bool {
	switch k {
	case KindBrick, KindBrickLow1, KindBrickLow2, KindBones, KindSkull, KindCliff:
		return true
	}
	return false
}

// IsEnemy reports whether touching the kind ends the run.
func (k Kind) IsEnemy() bool {
	return k == KindFire || k == KindBigFire
}

// allKinds lists every kind, for asset lookups.
var allKinds = []Kind{
	KindBrick, KindBrickLow1, KindBrickLow2, KindBones, KindSkull, KindCliff,
	KindWater, KindPlant, KindBush1, KindBush2, KindFire, KindBigFire,
}

// Entity is a scrolling body: ground, water, decoration or enemy.
type Entity struct {
	core.Body
	Kind Kind
}

// NewEntity creates a square entity of the given size at (x, y).
func NewEntity(kind Kind, x, y, size float64) *Entity {
	e := &Entity{Kind: kind}
	e.X, e.Y = x, y
	e.W, e.H = size, size
	return e
}

// Update scrolls the entity left by the world speed.
func (e *Entity) Update(speed int) {
	e.DX = -float64(speed)
	e.Advance()
}

// OffScreen reports whether the right edge has passed the left edge of the surface.
func (e *Entity) OffScreen() bool {
	return e.X+e.W < 0
}

// Queue is an ordered entity collection: new entities are appended at the
// tail (rightmost) and only the head (leftmost, oldest) is ever removed.
type Queue struct {
	items []*Entity
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an entity at the tail.
func (q *Queue) Push(e *Entity) {
	q.items = append(q.items, e)
}

// Len returns the number of entities.
func (q *Queue) Len() int {
	return len(q.items)
}

// Front returns the oldest entity, or nil.
func (q *Queue) Front() *Entity {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Back returns the newest entity, or nil.
func (q *Queue) Back() *Entity {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[len(q.items)-1]
}

// PopFront removes and returns the oldest entity, or nil.
func (q *Queue) PopFront() *Entity {
	if len(q.items) == 0 {
		return nil
	}
	e := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return e
}

// Items returns the entities oldest first. The slice must not be modified.
func (q *Queue) Items() []*Entity {
	return q.items
}

// Update scrolls every entity.
func (q *Queue) Update(speed int) {
	for _, e := range q.items {
		e.Update(speed)
	}
}

// DropOffScreen removes off-screen entities from the head and returns how
// many were removed.
func (q *Queue) DropOffScreen() int {
	n := 0
	for e := q.Front(); e != nil && e.OffScreen(); e = q.Front() {
		q.PopFront()
		n++
	}
	return n
}

// Recycle moves off-screen entities from the head to the tail, each placed
// step pixels right of the current tail. The length never changes.
func (q *Queue) Recycle(step float64) int {
	n := 0
	for i := 0; i < len(q.items); i++ {
		e := q.Front()
		if e == nil || !e.OffScreen() {
			break
		}
		q.PopFront()
		if tail := q.Back(); tail != nil {
			e.X = tail.X + step
		}
		q.Push(e)
		n++
	}
	return n
}

// Draw paints every entity with the image for its kind.
func (q *Queue) Draw(c *core.Canvas, images map[Kind]core.Bitmap) {
	for _, e := range q.items {
		c.DrawFull(images[e.Kind], e.X, e.Y)
	}
}
