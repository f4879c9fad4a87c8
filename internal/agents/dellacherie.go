package agents

import (
	"math"

	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

// DellacherieWeights are the linear weights applied to the six Dellacherie
// features when scoring a candidate placement.
type DellacherieWeights struct {
	LandingHeight   float64
	ErodedCells     float64
	RowTransitions  float64
	ColTransitions  float64
	Holes           float64
	Wells           float64
}

// DefaultDellacherieWeights are the values from Thiery & Scherrer (2009),
// "Building Controllers for Tetris" — one of the strongest published
// handcrafted weight sets for this feature family.
func DefaultDellacherieWeights() DellacherieWeights {
	return DellacherieWeights{
		LandingHeight:  -4.500158825082766,
		ErodedCells:    3.4181268101392694,
		RowTransitions: -3.2178882868487753,
		ColTransitions: -9.348695305445199,
		Holes:          -7.899265427351652,
		Wells:          -3.3855972247263626,
	}
}

// DellacherieAgent evaluates every legal move by simulating the resulting
// board and scoring it with a fixed linear combination of six features. It
// is one of the strongest published handcrafted Tetris heuristics.
type DellacherieAgent struct {
	weights DellacherieWeights
}

// NewDellacherieAgent returns a DellacherieAgent using the given weights.
func NewDellacherieAgent(weights DellacherieWeights) *DellacherieAgent {
	return &DellacherieAgent{weights: weights}
}

// Name identifies this policy.
func (a *DellacherieAgent) Name() string { return "Dellacherie" }

// Decide scores every legal move and returns the highest-scoring one.
func (a *DellacherieAgent) Decide(obs tetris.Observation) tetris.PlacementAction {
	if len(obs.LegalMoves) == 0 {
		return tetris.PlacementAction{}
	}

	bestScore := math.Inf(-1)
	best := obs.LegalMoves[0]

	for _, move := range obs.LegalMoves {
		score := a.scoreMove(obs, move)
		if score > bestScore {
			bestScore = score
			best = move
		}
	}

	return tetris.PlacementAction{X: best.X, Rot: best.Rot, UseHold: best.UseHold}
}

func (a *DellacherieAgent) scoreMove(obs tetris.Observation, move tetris.LegalMove) float64 {
	f := a.simulateFeatures(obs, move)
	w := a.weights
	return w.LandingHeight*f.landingHeight +
		w.ErodedCells*f.erodedCells +
		w.RowTransitions*float64(f.rowTransitions) +
		w.ColTransitions*float64(f.colTransitions) +
		w.Holes*float64(f.holes) +
		w.Wells*float64(f.wells)
}

type dellacherieFeatures struct {
	landingHeight  float64
	erodedCells    float64
	rowTransitions int
	colTransitions int
	holes          int
	wells          int
}

// simulateFeatures places move's piece on a clone of the observed board,
// clears lines, and computes the six Dellacherie features against the
// resulting board. These formulas are this agent's own — related to but not
// identical to the engine's general-purpose Features (notably the well and
// column-transition edge conventions differ), so they are kept local.
func (a *DellacherieAgent) simulateFeatures(obs tetris.Observation, move tetris.LegalMove) dellacherieFeatures {
	board := tetris.NewBoardFromCells(obs.Board.Cells)

	pieceType := obs.Current.Type
	if move.UseHold && obs.Hold.Type != nil {
		pieceType = *obs.Hold.Type
	}
	piece := tetris.NewPiece(kindFromString(pieceType), move.X, move.HardDropY, move.Rot)
	pieceCells := piece.Cells()

	board.Lock(piece)
	linesCleared := board.ClearLines()

	return dellacherieFeatures{
		landingHeight:  landingHeight(pieceCells),
		erodedCells:    erodedCells(pieceCells, linesCleared),
		rowTransitions: dellacherieRowTransitions(board),
		colTransitions: dellacherieColTransitions(board),
		holes:          dellacherieHoles(board),
		wells:          dellacherieWells(board),
	}
}

func kindFromString(s string) tetris.Kind {
	for _, k := range tetris.Kinds {
		if k.String() == s {
			return k
		}
	}
	return tetris.KindNone
}

// landingHeight is the average height (distance from the floor) of the
// piece's cells before line clearing.
func landingHeight(cells [4][2]int) float64 {
	sum := 0
	for _, c := range cells {
		sum += tetris.BoardHeight - c[1]
	}
	return float64(sum) / float64(len(cells))
}

// erodedCells approximates (lines cleared) x (piece cells), rewarding
// placements that clear lines with the piece just placed.
func erodedCells(cells [4][2]int, linesCleared int) float64 {
	if linesCleared == 0 {
		return 0
	}
	return float64(linesCleared * len(cells))
}

func dellacherieRowTransitions(board *tetris.Board) int {
	transitions := 0
	for y := 0; y < tetris.BoardHeight; y++ {
		for x := 0; x < tetris.BoardWidth-1; x++ {
			if (board.Get(x, y) > 0) != (board.Get(x+1, y) > 0) {
				transitions++
			}
		}
		if board.Get(0, y) == 0 {
			transitions++
		}
		if board.Get(tetris.BoardWidth-1, y) == 0 {
			transitions++
		}
	}
	return transitions
}

// dellacherieColTransitions treats the top edge as filled (unlike the
// engine's general column_transitions, which treats it as empty) and the
// floor as filled, matching this agent's own reference implementation.
func dellacherieColTransitions(board *tetris.Board) int {
	transitions := 0
	for x := 0; x < tetris.BoardWidth; x++ {
		for y := 0; y < tetris.BoardHeight-1; y++ {
			if (board.Get(x, y) > 0) != (board.Get(x, y+1) > 0) {
				transitions++
			}
		}
		if board.Get(x, 0) == 0 {
			transitions++
		}
		if board.Get(x, tetris.BoardHeight-1) == 0 {
			transitions++
		}
	}
	return transitions
}

func dellacherieHoles(board *tetris.Board) int {
	holes := 0
	for x := 0; x < tetris.BoardWidth; x++ {
		foundBlock := false
		for y := 0; y < tetris.BoardHeight; y++ {
			if board.Get(x, y) > 0 {
				foundBlock = true
			} else if foundBlock {
				holes++
			}
		}
	}
	return holes
}

// dellacherieWells sums cumulative well depth (1+2+...+depth) per column,
// counting each well column once, where a well cell has a filled or
// off-board neighbor on both sides.
func dellacherieWells(board *tetris.Board) int {
	wells := 0
	for x := 0; x < tetris.BoardWidth; x++ {
		for y := 0; y < tetris.BoardHeight; y++ {
			if board.Get(x, y) != 0 {
				continue
			}
			leftFilled := x == 0 || board.Get(x-1, y) > 0
			rightFilled := x == tetris.BoardWidth-1 || board.Get(x+1, y) > 0
			if !leftFilled || !rightFilled {
				continue
			}

			depth := 0
			for yy := y; yy < tetris.BoardHeight; yy++ {
				if board.Get(x, yy) == 0 {
					depth++
				} else {
					break
				}
			}
			wells += depth * (depth + 1) / 2
			break
		}
	}
	return wells
}
