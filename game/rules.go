package game

// Direction is a cardinal movement direction. Up increases y.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// step returns the tile coordinate one tile along the direction.
func (d Direction) step(x, y int) (int, int) {
	switch d {
	case Up:
		return x, y + 1
	case Down:
		return x, y - 1
	case Left:
		return x - 1, y
	default:
		return x + 1, y
	}
}

// Modifier selects how far one movement input carries the player.
type Modifier uint8

const (
	// Walk moves a single tile and can push a box a single tile.
	Walk Modifier = iota
	// Dash slides across free tiles until blocked and never pushes.
	Dash
	// Charge slides like a dash but pushes the first box it contacts,
	// carrying it along until the pair is blocked.
	Charge
)

// MovementResult reports what one movement input changed, in tile
// coordinates. The box fields track the first box along the movement ray
// even when it never moves; the animation code needs its resting position
// to time the contact correctly. Deltas are total tiles traveled.
type MovementResult struct {
	InitialPlayerX, InitialPlayerY int
	FinalPlayerX, FinalPlayerY     int

	InitialBoxX, InitialBoxY int
	FinalBoxX, FinalBoxY     int

	PlayerTileDelta int
	BoxTileDelta    int
}

// MovePlayer resolves one movement input against the board. Each step of a
// dash or charge pushes its own undo snapshot, so undo rewinds multi-tile
// moves one tile at a time. The move counter advances by the total tiles
// traveled and the push counter by one per box step.
func (l *Level) MovePlayer(direction Direction, modifier Modifier) MovementResult {
	var result MovementResult
	result.InitialPlayerX, result.FinalPlayerX = l.Map.PlayerX, l.Map.PlayerX
	result.InitialPlayerY, result.FinalPlayerY = l.Map.PlayerY, l.Map.PlayerY

	// Locate the first box along the movement ray up front. Movement may
	// never reach it, but the animation bookkeeping wants its position
	// either way.
	boxX, boxY := l.Map.PlayerX, l.Map.PlayerY
	for InBounds(boxX, boxY) {
		kind := l.Map.Tiles[boxY][boxX]
		if kind == TileBox || kind == TileBoxOnGoal {
			break
		}
		boxX, boxY = direction.step(boxX, boxY)
	}
	result.InitialBoxX, result.FinalBoxX = boxX, boxX
	result.InitialBoxY, result.FinalBoxY = boxY, boxY

	for {
		fromX, fromY := l.Map.PlayerX, l.Map.PlayerY
		occupant := l.Map.Tiles[fromY][fromX]

		destX, destY := direction.step(fromX, fromY)
		if InBounds(destX, destY) {
			dest := l.Map.Tiles[destY][destX]
			if dest == TileFloor || dest == TileGoal {
				// Unoccupied destination: step onto it, swapping the
				// vacated and entered cells between their goal and
				// non-goal forms.
				l.Undo.push(l)

				l.Map.PlayerX, l.Map.PlayerY = destX, destY

				if occupant == TilePlayerOnGoal {
					l.Map.Tiles[fromY][fromX] = TileGoal
				} else {
					l.Map.Tiles[fromY][fromX] = TileFloor
				}
				if dest == TileGoal {
					l.Map.Tiles[destY][destX] = TilePlayerOnGoal
				} else {
					l.Map.Tiles[destY][destX] = TilePlayer
				}

				result.FinalPlayerX, result.FinalPlayerY = destX, destY

				if modifier == Dash || modifier == Charge {
					continue
				}
			} else if dest == TileBox || dest == TileBoxOnGoal {
				beyondX, beyondY := direction.step(destX, destY)
				if InBounds(beyondX, beyondY) && modifier != Dash {
					beyond := l.Map.Tiles[beyondY][beyondX]
					if beyond == TileFloor || beyond == TileGoal {
						// The snapshot goes in before the push counter
						// moves so that undo restores the pre-push value.
						l.Undo.push(l)
						l.PushCount++

						l.Map.PlayerX, l.Map.PlayerY = destX, destY

						if occupant == TilePlayerOnGoal {
							l.Map.Tiles[fromY][fromX] = TileGoal
						} else {
							l.Map.Tiles[fromY][fromX] = TileFloor
						}
						if dest == TileBoxOnGoal {
							l.Map.Tiles[destY][destX] = TilePlayerOnGoal
						} else {
							l.Map.Tiles[destY][destX] = TilePlayer
						}
						if beyond == TileGoal {
							l.Map.Tiles[beyondY][beyondX] = TileBoxOnGoal
						} else {
							l.Map.Tiles[beyondY][beyondX] = TileBox
						}

						result.FinalPlayerX, result.FinalPlayerY = destX, destY
						result.FinalBoxX, result.FinalBoxY = beyondX, beyondY

						if modifier == Charge {
							continue
						}
					}
				}
			}
		}
		break
	}

	result.PlayerTileDelta = abs(result.FinalPlayerX-result.InitialPlayerX) +
		abs(result.FinalPlayerY-result.InitialPlayerY)
	l.MoveCount += result.PlayerTileDelta

	result.BoxTileDelta = abs(result.FinalBoxX-result.InitialBoxX) +
		abs(result.FinalBoxY-result.InitialBoxY)

	return result
}

// PopUndo rewinds the most recent movement step, restoring the tile grid,
// the player position, and the push counter. The move counter drops by one
// per popped step. Popping an empty ring reports false and changes nothing.
func (l *Level) PopUndo() bool {
	if !l.Undo.pop(l) {
		return false
	}
	l.MoveCount--
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
