package game

import "github.com/lawkern/sokoban/raster"

// Tileset groups the sprite bitmaps the board is drawn with. Wall and
// floor slots are indexed by WallKind and Attributes.FloorIndex.
type Tileset struct {
	Player    *raster.Bitmap
	Box       *raster.Bitmap
	BoxOnGoal *raster.Bitmap
	Goal      *raster.Bitmap
	Wall      [WallKindCount]*raster.Bitmap
	Floor     [FloorVariantCount]*raster.Bitmap
}

// Complete reports whether every sprite slot is populated.
func (t *Tileset) Complete() bool {
	if t.Player == nil || t.Box == nil || t.BoxOnGoal == nil || t.Goal == nil {
		return false
	}
	for _, w := range t.Wall {
		if w == nil {
			return false
		}
	}
	for _, f := range t.Floor {
		if f == nil {
			return false
		}
	}
	return true
}

// SoundEffect names the playback requests the update loop can issue.
type SoundEffect uint8

const (
	SoundPush SoundEffect = iota
	SoundUndo
	SoundComplete
	SoundMenu
	SoundEffectCount
)

// SoundPlayer receives playback requests. Implementations must be safe to
// call from the host goroutine every frame and must not block.
type SoundPlayer interface {
	Play(effect SoundEffect)
}
