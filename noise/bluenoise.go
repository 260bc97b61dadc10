package noise

import (
	"fmt"

	"github.com/lawkern/sokoban/arena"
	"github.com/lawkern/sokoban/vmath"
)

// Point is a sample position in pixels.
type Point struct {
	X, Y float32
}

const root2 = 1.41421356

const noSample = ^uint32(0)

func cellIndex(sample float32, cellDim int) int {
	return int(sample / float32(cellDim))
}

func cellInBounds(gridWidth, gridHeight, cellx, celly int) bool {
	return cellx >= 0 && cellx < gridWidth && celly >= 0 && celly < gridHeight
}

// Neighborhood offsets for the rejection test. The radius equals
// cellDim*sqrt(2), so occupants farther than two cells away can never
// violate the spacing.
var neighborOffsets = [...][2]int{
	{-2, -2}, {-1, -2}, {+0, -2}, {+1, -2}, {+2, -2},
	{-2, -1}, {-1, -1}, {+0, -1}, {+1, -1}, {+2, -1},
	{-2, +0}, {-1, +0}, {+1, +0}, {+2, +0},
	{-2, +1}, {-1, +1}, {+0, +1}, {+1, +1}, {+2, +1},
	{-2, +2}, {-1, +2}, {+0, +2}, {+1, +2}, {+2, +2},
}

func sampleOK(grid []uint32, gridWidth, gridHeight, cellDim int, samples []Point, test Point) bool {
	cellx := cellIndex(test.X, cellDim)
	celly := cellIndex(test.Y, cellDim)

	if !cellInBounds(gridWidth, gridHeight, cellx, celly) {
		return false
	}
	if grid[celly*gridWidth+cellx] != noSample {
		return false
	}

	radius := float32(cellDim) * root2
	radiusSquared := radius * radius

	for _, offset := range neighborOffsets {
		nx := cellx + offset[0]
		ny := celly + offset[1]
		if !cellInBounds(gridWidth, gridHeight, nx, ny) {
			continue
		}
		sampleIdx := grid[ny*gridWidth+nx]
		if sampleIdx == noSample {
			continue
		}

		neighbor := samples[sampleIdx]
		dx := neighbor.X - test.X
		dy := neighbor.Y - test.Y
		if dx*dx+dy*dy <= radiusSquared {
			return false
		}
	}
	return true
}

// BlueNoise fills samples with Poisson-disk positions covering a
// gridWidth x gridHeight cell region where each cell is cellDim pixels
// square, and returns the number of samples placed. No two samples land
// closer than cellDim*sqrt(2) pixels apart.
//
// samples must hold at least gridWidth*gridHeight entries. The spatial grid
// and active list are arena temporaries released before returning.
func BlueNoise(samples []Point, entropy *Source, mem *arena.Arena, gridWidth, gridHeight, cellDim int) int {
	maxSampleCount := gridWidth * gridHeight
	if len(samples) < maxSampleCount {
		panic(fmt.Sprintf("blue noise needs %d sample slots, got %d", maxSampleCount, len(samples)))
	}

	watermark := mem.Mark()
	defer mem.Restore(watermark)

	active := mem.AllocUint32(maxSampleCount)
	grid := mem.AllocUint32(maxSampleCount)
	for i := range grid {
		grid[i] = noSample
	}

	count := 0

	sample := Point{
		X: float32(entropy.Range(0, uint32(cellDim*gridWidth)-1)),
		Y: float32(entropy.Range(0, uint32(cellDim*gridHeight)-1)),
	}
	grid[cellIndex(sample.Y, cellDim)*gridWidth+cellIndex(sample.X, cellDim)] = uint32(count)

	activeCount := 0
	active[activeCount] = uint32(count)
	activeCount++

	samples[count] = sample
	count++

	for activeCount > 0 {
		randomActive := int(entropy.Range(0, uint32(activeCount)-1))
		base := samples[active[randomActive]]

		found := false
		for attempt := 0; attempt < 64; attempt++ {
			// Candidates come from the annulus between the exclusion
			// radius and twice that distance.
			min := uint32(float32(cellDim) * root2)
			distance := float32(entropy.Range(min, 2*min))
			turns := entropy.UnitInterval()

			test := Point{
				X: base.X + distance*vmath.Cos(turns),
				Y: base.Y + distance*vmath.Sin(turns),
			}

			if sampleOK(grid, gridWidth, gridHeight, cellDim, samples, test) {
				cellx := cellIndex(test.X, cellDim)
				celly := cellIndex(test.Y, cellDim)
				grid[celly*gridWidth+cellx] = uint32(count)

				active[activeCount] = uint32(count)
				activeCount++

				samples[count] = test
				count++

				found = true
				break
			}
		}

		if !found {
			active[randomActive] = active[activeCount-1]
			activeCount--
		}
	}

	return count
}
