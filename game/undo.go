package game

// UndoDepth is the capacity of a level's undo ring. Each movement step
// pushes one snapshot, so a dash across four tiles costs four slots. Once
// the ring wraps, the oldest snapshots are overwritten silently.
const UndoDepth = 256

// undoSnapshot records the board as it stood before one movement step.
type undoSnapshot struct {
	tiles     [MapHeight][MapWidth]TileKind
	playerX   int
	playerY   int
	pushCount int
}

// UndoRing stores the most recent movement snapshots for one level. Every
// level owns its own ring, so switching levels never mixes histories.
type UndoRing struct {
	snapshots [UndoDepth]undoSnapshot
	index     int
	count     int
}

// Reset discards every snapshot.
func (r *UndoRing) Reset() {
	r.index = 0
	r.count = 0
}

// Depth returns the number of snapshots available to pop.
func (r *UndoRing) Depth() int {
	return r.count
}

// push records the level's board state. The write index advances before
// the copy so that pop can walk backward from the most recent slot.
func (r *UndoRing) push(l *Level) {
	r.index = (r.index + 1) % UndoDepth
	if r.count < UndoDepth {
		r.count++
	}

	snap := &r.snapshots[r.index]
	snap.tiles = l.Map.Tiles
	snap.playerX = l.Map.PlayerX
	snap.playerY = l.Map.PlayerY
	snap.pushCount = l.PushCount
}

// pop restores the most recent snapshot into the level. It reports false
// when the ring is empty.
func (r *UndoRing) pop(l *Level) bool {
	if r.count == 0 {
		return false
	}

	snap := &r.snapshots[r.index]
	l.Map.Tiles = snap.tiles
	l.Map.PlayerX = snap.playerX
	l.Map.PlayerY = snap.playerY
	l.PushCount = snap.pushCount

	if r.index > 0 {
		r.index--
	} else {
		r.index = UndoDepth - 1
	}
	r.count--

	return true
}
