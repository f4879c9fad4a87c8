package tetris

// LegalMove is a candidate placement reachable from the spawn anchor without
// modeling tucks or spins: pick a rotation and column, drop from the top,
// and land wherever gravity first stops the piece.
type LegalMove struct {
	X         int  `json:"x"`
	Rot       int  `json:"rot"`
	UseHold   bool `json:"use_hold"`
	HardDropY int  `json:"harddrop_y"`
}

// legalMovesFor enumerates every reachable (x, rot) placement for a single
// piece kind: for each of the 4 rotations and every anchor column from -2
// (some rotations start two cells into the 4x4 frame) to BoardWidth-1, place
// the piece at the top row and drop it until it collides, skipping anchors
// and rotations that collide immediately at the top.
func legalMovesFor(board *Board, kind Kind, useHold bool) []LegalMove {
	var moves []LegalMove
	for rot := 0; rot < 4; rot++ {
		for x := -2; x < BoardWidth; x++ {
			test := NewPiece(kind, x, 0, rot)
			if board.Collides(test) {
				continue
			}
			for test.Y < BoardHeight && !board.Collides(test.Move(0, 1)) {
				test = test.Move(0, 1)
			}
			if !board.Collides(test) {
				moves = append(moves, LegalMove{X: x, Rot: rot, UseHold: useHold, HardDropY: test.Y})
			}
		}
	}
	return moves
}

// ComputeLegalMoves enumerates every legal placement of the current piece,
// and of the held piece too when hold is enabled, a piece is held, and hold
// hasn't already been used this turn. Duplicate (x, rot, use_hold,
// harddrop_y) tuples are removed.
func ComputeLegalMoves(board *Board, current Kind, holdKind Kind, holdEnabled, hasHold, holdUsed bool) []LegalMove {
	var candidates []LegalMove
	candidates = append(candidates, legalMovesFor(board, current, false)...)

	if holdEnabled && hasHold && !holdUsed {
		candidates = append(candidates, legalMovesFor(board, holdKind, true)...)
	}

	seen := make(map[LegalMove]struct{}, len(candidates))
	unique := make([]LegalMove, 0, len(candidates))
	for _, m := range candidates {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}
