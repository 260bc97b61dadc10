package game

import (
	"fmt"

	"github.com/lawkern/sokoban/queue"
	"github.com/lawkern/sokoban/raster"
	"github.com/lawkern/sokoban/vmath"
)

// The stationary pass splits the board into chunks, one queue task each.
// Both chunk counts divide their tile counts evenly.
const (
	renderChunksX = 6
	renderChunksY = 4

	tilesPerChunkX = MapWidth / renderChunksX
	tilesPerChunkY = MapHeight / renderChunksY
)

// tileChunk is the unit of work handed to the queue for the stationary
// pass. Chunks cover disjoint tile ranges, so no two workers touch the
// same framebuffer pixel.
type tileChunk struct {
	dst   *raster.Bitmap
	state *State

	minX, minY int
	maxX, maxY int
}

func renderChunk(data any) {
	c := data.(*tileChunk)
	c.state.renderStationaryChunk(c.dst, c.minX, c.minY, c.maxX, c.maxY)
}

// renderStationaryTiles draws the grass field and then fans the board out
// across the worker queue. Grass draws on the host goroutine first; the
// tufts cross chunk boundaries.
func (s *State) renderStationaryTiles(fb *raster.Bitmap, workers *queue.Queue) {
	s.renderGrass(fb)

	var chunks [renderChunksX * renderChunksY]tileChunk
	index := 0
	for y := 0; y < renderChunksY; y++ {
		minY := y * tilesPerChunkY
		maxY := min(minY+tilesPerChunkY-1, MapHeight-1)

		for x := 0; x < renderChunksX; x++ {
			minX := x * tilesPerChunkX
			maxX := min(minX+tilesPerChunkX-1, MapWidth-1)

			chunk := &chunks[index]
			index++

			*chunk = tileChunk{dst: fb, state: s, minX: minX, minY: minY, maxX: maxX, maxY: maxY}
			workers.Enqueue(chunk, renderChunk)
		}
	}
	workers.Complete()
}

// renderGrass scatters small tufts at the blue-noise sample positions:
// a center clump with one blade up-left and one up-right of it.
func (s *State) renderGrass(fb *raster.Bitmap) {
	for _, position := range s.grass {
		min := vmath.Vec2{X: position.X, Y: position.Y}
		max := vmath.Vec2{X: min.X + 1, Y: min.Y + 1}
		fb.Rectangle(min, max, grassColor)

		min = vmath.Vec2{X: min.X - 2, Y: min.Y - 2}
		max = vmath.Vec2{X: min.X + 1, Y: min.Y + 1}
		fb.Rectangle(min, max, grassColor)

		min = vmath.Vec2{X: min.X + 4, Y: min.Y}
		max = vmath.Vec2{X: min.X + 1, Y: min.Y + 1}
		fb.Rectangle(min, max, grassColor)
	}
}

// renderStationaryChunk draws every non-moving tile in the given range.
// Tile y grows upward while pixel y grows downward; the flip happens here.
// Floor cells draw nothing so the background and grass show through.
func (s *State) renderStationaryChunk(fb *raster.Bitmap, minX, minY, maxX, maxY int) {
	level := s.levels[s.levelIndex]

	for tileY := minY; tileY <= maxY; tileY++ {
		for tileX := minX; tileX <= maxX; tileX++ {
			x := float32(tileX * TileDimension)
			y := float32((MapHeight - 1 - tileY) * TileDimension)

			attributes := level.Attributes[tileY][tileX]
			switch level.Map.Tiles[tileY][tileX] {
			case TileBox:
				if !s.boxMovingAt(tileX, tileY) {
					fb.Blit(s.tiles.Box, x, y, TileDimension, TileDimension)
				}
			case TileBoxOnGoal:
				if !s.boxMovingAt(tileX, tileY) {
					fb.Blit(s.tiles.BoxOnGoal, x, y, TileDimension, TileDimension)
				} else {
					fb.Blit(s.tiles.Goal, x, y, TileDimension, TileDimension)
				}
			case TileWall:
				fb.Blit(s.tiles.Wall[attributes.WallIndex], x, y, TileDimension, TileDimension)
			case TileGoal, TilePlayerOnGoal:
				fb.Blit(s.tiles.Goal, x, y, TileDimension, TileDimension)
			}
		}
	}
}

// renderMovingTiles draws the player and any box mid-slide at eased pixel
// positions. Both follow the same eased progress curve, so a pushed box
// stays in contact with the player for the whole gesture.
func (s *State) renderMovingTiles(fb *raster.Bitmap, level *Level) {
	playerX := float32(level.Map.PlayerX * TileDimension)
	playerY := float32((MapHeight - 1 - level.Map.PlayerY) * TileDimension)

	if s.playerMovement.Animating() {
		initialX := float32(s.movement.InitialPlayerX * TileDimension)
		initialY := float32((MapHeight - 1 - s.movement.InitialPlayerY) * TileDimension)
		finalX := float32(s.movement.FinalPlayerX * TileDimension)
		finalY := float32((MapHeight - 1 - s.movement.FinalPlayerY) * TileDimension)

		eased := vmath.EaseSmooth(s.playerMovement.Progress())
		playerX = vmath.Lerp(initialX, finalX, eased)
		playerY = vmath.Lerp(initialY, finalY, eased)

		if s.boxMoving() {
			s.renderMovingBox(fb, level, eased)
		}
	}

	fb.Blit(s.tiles.Player, playerX, playerY, TileDimension, TileDimension)
}

// renderMovingBox draws the sliding box. The box covers its share of the
// gesture at the tail end: it holds at its origin until the player's eased
// position reaches it, then moves in lockstep.
func (s *State) renderMovingBox(fb *raster.Bitmap, level *Level, eased float32) {
	ratio := float32(s.movement.BoxTileDelta) / float32(s.movement.PlayerTileDelta)
	start := 1 - ratio

	progress := float32(0)
	if eased > start {
		progress = (eased - start) / ratio
	}

	initialX := float32(s.movement.InitialBoxX * TileDimension)
	initialY := float32((MapHeight - 1 - s.movement.InitialBoxY) * TileDimension)
	finalX := float32(s.movement.FinalBoxX * TileDimension)
	finalY := float32((MapHeight - 1 - s.movement.FinalBoxY) * TileDimension)

	boxX := vmath.Lerp(initialX, finalX, progress)
	boxY := vmath.Lerp(initialY, finalY, progress)

	// Show the on-goal version when the box came off a goal, which reads
	// as the goal letting go of the box.
	previous := level.Map.Tiles[s.movement.InitialBoxY][s.movement.InitialBoxX]
	if previous == TileGoal || previous == TilePlayerOnGoal {
		fb.Blit(s.tiles.BoxOnGoal, boxX, boxY, TileDimension, TileDimension)
	} else {
		fb.Blit(s.tiles.Box, boxX, boxY, TileDimension, TileDimension)
	}
}

// renderHUD writes the level header in the top-left corner.
func (s *State) renderHUD(fb *raster.Bitmap, level *Level) {
	lineHeight := s.font.LineHeight(BitmapScale)
	textX := 0.5 * float32(TileDimension)
	textY := 0.5 * lineHeight

	fb.Text(s.font, textX, textY, BitmapScale, level.Name)
	textY += lineHeight

	fb.Text(s.font, textX, textY, BitmapScale, fmt.Sprintf("Move Count: %d", level.MoveCount))
	textY += lineHeight

	fb.Text(s.font, textX, textY, BitmapScale, fmt.Sprintf("Push Count: %d", level.PushCount))
}
