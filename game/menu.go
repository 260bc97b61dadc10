package game

import (
	"fmt"

	"github.com/lawkern/sokoban/input"
	"github.com/lawkern/sokoban/queue"
	"github.com/lawkern/sokoban/raster"
	"github.com/lawkern/sokoban/vmath"
)

// menuScreen tracks which full-screen menu owns the frame.
type menuScreen uint8

const (
	menuNone menuScreen = iota
	menuTitle
	menuPause
)

const menuBorderColor = 0xFF3F3F74

// titleMenu draws the boot screen: the current board as a backdrop with
// the title and start prompt near the bottom. Confirm begins play with a
// fade from the title screen.
func (s *State) titleMenu(fb *raster.Bitmap, in *input.Snapshot, workers *queue.Queue) {
	if in.JustPressed(input.Confirm) {
		s.menu = menuNone
		s.play(SoundMenu)
		s.beginLevelTransition(fb)
	}

	fb.Clear(backgroundColor)
	s.renderStationaryTiles(fb, workers)

	posX := 0.5 * float32(TileDimension)
	posY := float32(fb.Height - TileDimension)
	height := s.font.LineHeight(BitmapScale) * 1.35

	fb.Text(s.font, posX, posY-0.25*height, BitmapScale, "Press <Enter> to start")
	fb.Text(s.font, posX, posY-1.25*height, BitmapScale, "SOKOBAN")
}

// pauseMenu draws the control reference and the level selector over a
// dimmed snapshot of the paused frame. Selection changes take effect
// without reloading, so levels keep their progress when revisited.
func (s *State) pauseMenu(fb *raster.Bitmap, in *input.Snapshot) {
	switch {
	case in.JustPressed(input.Pause) || in.JustPressed(input.Confirm):
		s.menu = menuNone
		s.play(SoundMenu)
	case in.JustPressed(input.Cancel):
		s.menu = menuTitle
		s.play(SoundMenu)
	case in.JustPressed(input.MoveUp):
		if s.levelIndex == 0 {
			s.levelIndex = len(s.levels) - 1
		} else {
			s.levelIndex--
		}
		s.play(SoundMenu)
	case in.JustPressed(input.MoveDown):
		if s.levelIndex == len(s.levels)-1 {
			s.levelIndex = 0
		} else {
			s.levelIndex++
		}
		s.play(SoundMenu)
	}

	fb.Clear(backgroundColor)
	fb.Screen(s.snapshot, 0.1)

	gameControls := [...]string{
		"GAME CONTROLS",
		"<wasd> or <arrows> to move",
		"<Ctrl> to dash (won't push)",
		"<Shift> to charge (will push)",
		"<u> to undo move",
		"<p> to pause",
		"<r> to restart level",
	}
	menuControls := [...]string{
		"MENU CONTROLS",
		"<p> or <Enter> to resume",
		"<wasd> or <arrows> to change levels",
		"<q> to return to title",
	}
	sections := [...][]string{gameControls[:], menuControls[:]}

	const borderThickness = TileDimension / 8

	sectionMarginX := 5 * float32(TileDimension)
	sectionMarginY := 0.5 * float32(TileDimension)
	sectionPadding := 0.25 * float32(TileDimension)

	// Glyphs render at the standard scale; only the line spacing opens up.
	lineHeight := s.font.LineHeight(BitmapScale * 1.5)
	textX := sectionMarginX
	textY := sectionMarginY

	for _, section := range sections {
		// The section header sits outside the outlined box.
		fb.Text(s.font, textX, textY, BitmapScale, section[0])
		textY += lineHeight

		sectionMin := vmath.Vec2{X: textX, Y: textY}
		for _, entry := range section[1:] {
			fb.Text(s.font, textX+sectionPadding, textY+sectionPadding, BitmapScale, entry)
			textY += lineHeight
		}
		sectionMax := vmath.Vec2{X: float32(fb.Width) - sectionMarginX, Y: textY + 2*sectionPadding}
		fb.Outline(sectionMin, sectionMax, menuBorderColor, borderThickness)

		textY += 2*sectionMarginY + 2*sectionPadding
	}

	// The level selector fills the remaining space.
	fb.Text(s.font, textX, textY, BitmapScale, "LEVELS")
	textY += lineHeight

	remainingHeight := float32(fb.Height) - textY - sectionMarginY - sectionPadding
	visibleCount := int(remainingHeight / lineHeight)
	if visibleCount < 1 {
		visibleCount = 1
	}

	firstVisible := 0
	lastVisible := visibleCount - 1
	if s.levelIndex >= visibleCount {
		firstVisible = (s.levelIndex / visibleCount) * visibleCount
		lastVisible = firstVisible + visibleCount - 1
	}

	sectionMin := vmath.Vec2{X: textX, Y: textY}
	for index := firstVisible; index <= lastVisible; index++ {
		if index < len(s.levels) {
			format := "  %02d. %s"
			if index == s.levelIndex {
				format = "->%02d. %s"
			}
			fb.Text(s.font, textX+sectionPadding, textY+sectionPadding, BitmapScale,
				fmt.Sprintf(format, index+1, s.levels[index].Name))
		}
		textY += lineHeight
	}
	sectionMax := vmath.Vec2{X: float32(fb.Width) - sectionMarginX, Y: textY + 2*sectionPadding}
	fb.Outline(sectionMin, sectionMax, menuBorderColor, borderThickness)

	// A scrollbar marks the visible page when the list overflows.
	if visibleCount < len(s.levels) {
		scrollSection := s.levelIndex / visibleCount
		scrollSectionCount := len(s.levels)/visibleCount + 1

		sectionHeight := (sectionMax.Y - sectionMin.Y) - 2*sectionPadding
		barHeight := sectionHeight / float32(scrollSectionCount)

		barMinY := sectionMin.Y + sectionPadding + float32(scrollSection)*barHeight
		barMaxY := barMinY + barHeight
		barWidth := float32(2 * borderThickness)

		barMax := vmath.Vec2{X: sectionMax.X - sectionPadding, Y: barMaxY}
		barMin := vmath.Vec2{X: barMax.X - barWidth, Y: barMinY}
		fb.Rectangle(barMin, barMax, menuBorderColor)
	}
}
