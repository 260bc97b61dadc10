package game

import "testing"

func TestWalkOntoFloor(t *testing.T) {
	level := levelFromRows(t, "#@ .#")

	result := level.MovePlayer(Right, Walk)

	assertRow(t, level, 0, "# @.#")
	if level.Map.PlayerX != 2 || level.Map.PlayerY != 0 {
		t.Errorf("Expected player at (2,0), got (%d,%d)", level.Map.PlayerX, level.Map.PlayerY)
	}
	if result.PlayerTileDelta != 1 {
		t.Errorf("Expected player tile delta to be 1, got %d", result.PlayerTileDelta)
	}
	if result.BoxTileDelta != 0 {
		t.Errorf("Expected box tile delta to be 0, got %d", result.BoxTileDelta)
	}
	if level.MoveCount != 1 {
		t.Errorf("Expected move count to be 1, got %d", level.MoveCount)
	}
	if level.Undo.Depth() != 1 {
		t.Errorf("Expected undo depth to be 1, got %d", level.Undo.Depth())
	}
}

func TestWalkPushesBoxOntoGoal(t *testing.T) {
	level := levelFromRows(t, "#@$.#")

	result := level.MovePlayer(Right, Walk)

	assertRow(t, level, 0, "# @*#")
	if result.BoxTileDelta != 1 {
		t.Errorf("Expected box tile delta to be 1, got %d", result.BoxTileDelta)
	}
	if level.PushCount != 1 {
		t.Errorf("Expected push count to be 1, got %d", level.PushCount)
	}
	if !level.Completed() {
		t.Error("Expected level to be complete once the only goal is covered")
	}
}

func TestBlockedPushIsNoOp(t *testing.T) {
	level := levelFromRows(t, "#@$#")

	result := level.MovePlayer(Right, Walk)

	assertRow(t, level, 0, "#@$#")
	if result.PlayerTileDelta != 0 || result.BoxTileDelta != 0 {
		t.Errorf("Expected no movement, got player delta %d box delta %d",
			result.PlayerTileDelta, result.BoxTileDelta)
	}
	if level.Undo.Depth() != 0 {
		t.Errorf("Expected undo depth to stay 0, got %d", level.Undo.Depth())
	}
	if level.MoveCount != 0 {
		t.Errorf("Expected move count to stay 0, got %d", level.MoveCount)
	}
}

func TestDashCrossesCorridor(t *testing.T) {
	level := levelFromRows(t, "#@   #")

	result := level.MovePlayer(Right, Dash)

	assertRow(t, level, 0, "#   @#")
	if result.PlayerTileDelta != 3 {
		t.Errorf("Expected player tile delta to be 3, got %d", result.PlayerTileDelta)
	}
	if level.MoveCount != 3 {
		t.Errorf("Expected move count to be 3, got %d", level.MoveCount)
	}
	if level.Undo.Depth() != 3 {
		t.Errorf("Expected one undo snapshot per step, got %d", level.Undo.Depth())
	}
}

func TestDashNeverPushes(t *testing.T) {
	level := levelFromRows(t, "#@$ #")

	result := level.MovePlayer(Right, Dash)

	assertRow(t, level, 0, "#@$ #")
	if result.PlayerTileDelta != 0 {
		t.Errorf("Expected dash to stop at the box, got player delta %d", result.PlayerTileDelta)
	}
	if level.PushCount != 0 {
		t.Errorf("Expected push count to stay 0, got %d", level.PushCount)
	}
}

func TestDashStopsBeforeBoxAfterSliding(t *testing.T) {
	level := levelFromRows(t, "#@  $ #")

	level.MovePlayer(Right, Dash)

	assertRow(t, level, 0, "#  @$ #")
	if level.MoveCount != 2 {
		t.Errorf("Expected move count to be 2, got %d", level.MoveCount)
	}
}

func TestChargeCarriesBoxUntilBlocked(t *testing.T) {
	level := levelFromRows(t, "#@ $  #")

	result := level.MovePlayer(Right, Charge)

	assertRow(t, level, 0, "#   @$#")
	if result.PlayerTileDelta != 3 {
		t.Errorf("Expected player tile delta to be 3, got %d", result.PlayerTileDelta)
	}
	if result.BoxTileDelta != 2 {
		t.Errorf("Expected box tile delta to be 2, got %d", result.BoxTileDelta)
	}
	if level.PushCount != 2 {
		t.Errorf("Expected push count to be 2, got %d", level.PushCount)
	}
	if level.Undo.Depth() != 3 {
		t.Errorf("Expected one undo snapshot per step, got %d", level.Undo.Depth())
	}
}

func TestChargeStopsAtBoxChain(t *testing.T) {
	// Two boxes in a row never move; the charge ends where it started.
	level := levelFromRows(t, "#@$$ #")

	result := level.MovePlayer(Right, Charge)

	assertRow(t, level, 0, "#@$$ #")
	if result.PlayerTileDelta != 0 {
		t.Errorf("Expected no movement into a box chain, got player delta %d", result.PlayerTileDelta)
	}
}

func TestChargePushesBoxOntoGoal(t *testing.T) {
	level := levelFromRows(t, "#@ $.#")

	result := level.MovePlayer(Right, Charge)

	assertRow(t, level, 0, "#  @*#")
	if result.BoxTileDelta != 1 {
		t.Errorf("Expected box tile delta to be 1, got %d", result.BoxTileDelta)
	}
	if level.PushCount != 1 {
		t.Errorf("Expected push count to be 1, got %d", level.PushCount)
	}
}

func TestWalkOntoGoalPromotesPlayer(t *testing.T) {
	level := levelFromRows(t, "#@.#")

	level.MovePlayer(Right, Walk)

	assertRow(t, level, 0, "# +#")
	if level.Completed() {
		t.Error("Expected a goal under the player to count as uncovered")
	}
}

func TestVacatedGoalRestores(t *testing.T) {
	level := levelFromRows(t, "#+$ #")

	level.MovePlayer(Right, Walk)

	assertRow(t, level, 0, "#.@$#")
}

func TestMoveOffBoardIsNoOp(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		direction Direction
	}{
		{"left edge", []string{"@"}, Left},
		{"bottom edge", []string{"@"}, Down},
		{"top edge", func() []string {
			rows := make([]string, MapHeight)
			rows[0] = "@"
			return rows
		}(), Up},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			level := levelFromRows(t, test.rows...)
			startX, startY := level.Map.PlayerX, level.Map.PlayerY

			result := level.MovePlayer(test.direction, Walk)

			if result.PlayerTileDelta != 0 {
				t.Errorf("Expected no movement off the board, got delta %d", result.PlayerTileDelta)
			}
			if level.Map.PlayerX != startX || level.Map.PlayerY != startY {
				t.Errorf("Expected player to stay at (%d,%d), got (%d,%d)",
					startX, startY, level.Map.PlayerX, level.Map.PlayerY)
			}
		})
	}
}

func TestMovementDirectionsFollowAxes(t *testing.T) {
	// Up increases y; the rules never see screen coordinates.
	level := levelFromRows(t,
		"   ",
		" @ ",
		"   ",
	)
	startX, startY := level.Map.PlayerX, level.Map.PlayerY

	level.MovePlayer(Up, Walk)
	if level.Map.PlayerY != startY+1 {
		t.Errorf("Expected up to move player to y=%d, got y=%d", startY+1, level.Map.PlayerY)
	}

	level.MovePlayer(Down, Walk)
	level.MovePlayer(Down, Walk)
	if level.Map.PlayerY != startY-1 {
		t.Errorf("Expected down to move player to y=%d, got y=%d", startY-1, level.Map.PlayerY)
	}

	level.MovePlayer(Left, Walk)
	if level.Map.PlayerX != startX-1 {
		t.Errorf("Expected left to move player to x=%d, got x=%d", startX-1, level.Map.PlayerX)
	}

	level.MovePlayer(Right, Walk)
	if level.Map.PlayerX != startX {
		t.Errorf("Expected right to move player back to x=%d, got x=%d", startX, level.Map.PlayerX)
	}
}

func TestMoveCountTracksTilesNotInputs(t *testing.T) {
	level := levelFromRows(t, "#@    #")

	level.MovePlayer(Right, Dash)

	if level.MoveCount != 4 {
		t.Errorf("Expected a 4-tile dash to count 4 moves, got %d", level.MoveCount)
	}
}
