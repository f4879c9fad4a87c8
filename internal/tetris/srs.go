package tetris

// kickOffset is one (dx, dy) wall-kick candidate.
type kickOffset struct{ DX, DY int }

// rotPair keys a kick table by (from, to) rotation state.
type rotPair struct{ From, To int }

// kicksJLSTZ holds the wall-kick candidates for J, L, S, T, Z pieces, tried
// in order; the first that does not collide is used. Ported verbatim from
// the reference ruleset (https://tetris.wiki/Super_Rotation_System).
var kicksJLSTZ = map[rotPair][]kickOffset{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

// kicksI holds the I piece's (distinct) wall-kick candidates.
var kicksI = map[rotPair][]kickOffset{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

// kickTableFor returns the wall-kick table for a kind. O never kicks (all
// its rotations are identical), so it has no table entries.
func kickTableFor(k Kind) map[rotPair][]kickOffset {
	switch k {
	case KindI:
		return kicksI
	case KindO:
		return nil
	default:
		return kicksJLSTZ
	}
}

// TryRotate attempts to rotate piece on board, trying the basic rotation
// first and then, if that collides, each wall-kick offset in order. It
// returns the resolved piece and true on success, or the original piece and
// false if every attempt collides.
func TryRotate(board *Board, piece Piece, clockwise bool) (Piece, bool) {
	rotated := piece.Rotate(clockwise)
	if !board.Collides(rotated) {
		return rotated, true
	}

	table := kickTableFor(piece.Kind)
	if table == nil {
		return piece, false
	}
	offsets, ok := table[rotPair{piece.Rot, rotated.Rot}]
	if !ok {
		return piece, false
	}
	for _, off := range offsets {
		candidate := rotated.Move(off.DX, off.DY)
		if !board.Collides(candidate) {
			return candidate, true
		}
	}
	return piece, false
}
