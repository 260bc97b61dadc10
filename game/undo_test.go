package game

import (
	"testing"

	"github.com/lawkern/sokoban/noise"
)

func TestUndoTwiceRestoresInitialState(t *testing.T) {
	level := levelFromRows(t, "#@  #")
	initial := level.Map

	level.MovePlayer(Right, Walk)
	level.MovePlayer(Right, Walk)

	if !level.PopUndo() {
		t.Fatal("Expected first undo to pop a snapshot")
	}
	if !level.PopUndo() {
		t.Fatal("Expected second undo to pop a snapshot")
	}

	if level.Map != initial {
		t.Error("Expected two undos to restore the initial board")
	}
	if level.Undo.Depth() != 0 {
		t.Errorf("Expected undo depth to return to 0, got %d", level.Undo.Depth())
	}
	if level.MoveCount != 0 {
		t.Errorf("Expected move count to return to 0, got %d", level.MoveCount)
	}
}

func TestUndoOnEmptyRingIsNoOp(t *testing.T) {
	level := levelFromRows(t, "#@ #")
	before := level.Map

	if level.PopUndo() {
		t.Error("Expected popping an empty ring to report false")
	}
	if level.Map != before {
		t.Error("Expected an empty pop to leave the board untouched")
	}
	if level.MoveCount != 0 {
		t.Errorf("Expected move count to stay 0, got %d", level.MoveCount)
	}
}

func TestUndoRestoresPushCounter(t *testing.T) {
	level := levelFromRows(t, "#@$ #")

	level.MovePlayer(Right, Walk)
	if level.PushCount != 1 {
		t.Fatalf("Expected push count to be 1 after the push, got %d", level.PushCount)
	}

	level.PopUndo()

	assertRow(t, level, 0, "#@$ #")
	if level.PushCount != 0 {
		t.Errorf("Expected undo to restore push count to 0, got %d", level.PushCount)
	}
}

func TestUndoRestoresMultiStepMoveOneTileAtATime(t *testing.T) {
	level := levelFromRows(t, "#@   #")

	level.MovePlayer(Right, Dash)

	level.PopUndo()
	assertRow(t, level, 0, "#  @ #")
	if level.MoveCount != 2 {
		t.Errorf("Expected move count to be 2 after one pop, got %d", level.MoveCount)
	}

	level.PopUndo()
	assertRow(t, level, 0, "# @  #")

	level.PopUndo()
	assertRow(t, level, 0, "#@   #")
	if level.MoveCount != 0 {
		t.Errorf("Expected move count to be 0 after full rewind, got %d", level.MoveCount)
	}
}

func TestUndoRingWrapsAtCapacity(t *testing.T) {
	level := levelFromRows(t, "#@ #")

	// Alternate right and left well past the ring capacity. Every walk
	// lands on floor, so each one pushes a snapshot.
	const moves = UndoDepth + 44
	for i := 0; i < moves; i++ {
		if i%2 == 0 {
			level.MovePlayer(Right, Walk)
		} else {
			level.MovePlayer(Left, Walk)
		}
	}

	if level.Undo.Depth() != UndoDepth {
		t.Fatalf("Expected undo depth to cap at %d, got %d", UndoDepth, level.Undo.Depth())
	}

	pops := 0
	for level.PopUndo() {
		pops++
	}
	if pops != UndoDepth {
		t.Errorf("Expected exactly %d pops before the ring emptied, got %d", UndoDepth, pops)
	}
	if level.MoveCount != moves-UndoDepth {
		t.Errorf("Expected move count %d after rewinding, got %d", moves-UndoDepth, level.MoveCount)
	}

	// The oldest snapshots were overwritten; the board rewound to the
	// state 256 snapshots back, an even number of alternating walks, so
	// the player is back at the start column.
	if level.Map.PlayerX != 1 {
		t.Errorf("Expected player at x=1 after rewinding, got x=%d", level.Map.PlayerX)
	}
}

func TestSnapshotsCaptureIntermediateDashSteps(t *testing.T) {
	level := levelFromRows(t, "#@  $.#")

	level.MovePlayer(Right, Charge)
	assertRow(t, level, 0, "#   @*#")

	// Rewinding one step detaches the box from the goal again.
	level.PopUndo()
	assertRow(t, level, 0, "#  @$.#")
}

func TestUndoKeepsDecorationsStable(t *testing.T) {
	entropy := noise.NewSource(99)
	level, err := LoadLevel("decor", "#####\n#@$.#\n#####", &entropy)
	if err != nil {
		t.Fatalf("Expected level to load, got %v", err)
	}
	rolled := level.Attributes

	level.MovePlayer(Right, Walk)
	level.PopUndo()

	// Undo restores the board, never the cosmetics; a rewound level must
	// not reroll its floor and wall variants.
	if level.Attributes != rolled {
		t.Error("Expected undo to leave the decoration attributes untouched")
	}
}
