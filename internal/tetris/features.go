package tetris

import "github.com/vovakirdan/tetris-arcade/internal/core"

// Features is the set of engineered board metrics used by heuristic agents
// and exposed in observations.
type Features struct {
	AggHeight int `json:"agg_height"`
	Bumpiness int `json:"bumpiness"`
	WellMax   int `json:"well_max"`
	Holes     int `json:"holes"`
	RowTrans  int `json:"row_trans"`
	ColTrans  int `json:"col_trans"`
}

// ComputeFeatures derives all six engineered features from a board.
func ComputeFeatures(board *Board) Features {
	heights := board.ColumnHeights()
	return Features{
		AggHeight: aggregateHeight(heights),
		Bumpiness: bumpiness(heights),
		WellMax:   maxWellDepth(heights),
		Holes:     totalHoles(board),
		RowTrans:  rowTransitions(board),
		ColTrans:  columnTransitions(board),
	}
}

func aggregateHeight(heights [BoardWidth]int) int {
	sum := 0
	for _, h := range heights {
		sum += h
	}
	return sum
}

func bumpiness(heights [BoardWidth]int) int {
	sum := 0
	for i := 0; i < len(heights)-1; i++ {
		sum += core.Abs(heights[i] - heights[i+1])
	}
	return sum
}

// maxWellDepth returns the depth of the single deepest well, where a well is
// a column strictly lower than both neighbors (or its one neighbor, at an
// edge column).
func maxWellDepth(heights [BoardWidth]int) int {
	maxDepth := 0

	if heights[0] < heights[1] {
		maxDepth = core.Max(maxDepth, heights[1]-heights[0])
	}

	for i := 1; i < len(heights)-1; i++ {
		left, mid, right := heights[i-1], heights[i], heights[i+1]
		if mid < left && mid < right {
			depth := core.Min(left, right) - mid
			maxDepth = core.Max(maxDepth, depth)
		}
	}

	last := len(heights) - 1
	if heights[last] < heights[last-1] {
		maxDepth = core.Max(maxDepth, heights[last-1]-heights[last])
	}

	return maxDepth
}

func totalHoles(board *Board) int {
	holes := board.HolesPerColumn()
	sum := 0
	for _, h := range holes {
		sum += h
	}
	return sum
}

// rowTransitions counts filled/empty transitions along each row, treating
// both side walls as filled.
func rowTransitions(board *Board) int {
	transitions := 0
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth-1; x++ {
			if (board.Get(x, y) == 0) != (board.Get(x+1, y) == 0) {
				transitions++
			}
		}
		if board.Get(0, y) == 0 {
			transitions++
		}
		if board.Get(BoardWidth-1, y) == 0 {
			transitions++
		}
	}
	return transitions
}

// columnTransitions counts filled/empty transitions along each column,
// treating the top edge as empty and the floor as filled.
func columnTransitions(board *Board) int {
	transitions := 0
	for x := 0; x < BoardWidth; x++ {
		for y := 0; y < BoardHeight-1; y++ {
			if (board.Get(x, y) == 0) != (board.Get(x, y+1) == 0) {
				transitions++
			}
		}
		if board.Get(x, 0) != 0 {
			transitions++
		}
		if board.Get(x, BoardHeight-1) == 0 {
			transitions++
		}
	}
	return transitions
}

// FeatureDeltas returns the per-field change from before to after.
func FeatureDeltas(before, after Features) Features {
	return Features{
		AggHeight: after.AggHeight - before.AggHeight,
		Bumpiness: after.Bumpiness - before.Bumpiness,
		WellMax:   after.WellMax - before.WellMax,
		Holes:     after.Holes - before.Holes,
		RowTrans:  after.RowTrans - before.RowTrans,
		ColTrans:  after.ColTrans - before.ColTrans,
	}
}
