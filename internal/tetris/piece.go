// Package tetris implements a deterministic, headless Tetris engine: board,
// piece geometry, SRS rotation, 7-bag randomizer, lock delay, scoring, feature
// extraction, and legal-move enumeration. It has no rendering or transport
// dependencies so it stays pure and independently testable.
package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists all seven tetromino kinds in bag order.
var Kinds = [7]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter name used on the wire and in logs.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return ""
	}
}

// Cell returns the board cell code (1..7) this kind locks in as.
func (k Kind) Cell() int {
	return int(k)
}

// KindFromCell maps a board cell code back to its Kind (0 for empty).
func KindFromCell(cell int) Kind {
	if cell < 0 || cell > int(KindL) {
		return KindNone
	}
	return Kind(cell)
}

// offset is a local (x, y) offset within a piece's 4x4 addressing frame.
type offset struct{ X, Y int }

// shapes holds, per kind and rotation state (0..3), the four occupied local
// offsets. Ported verbatim from the reference engine's PIECE_SHAPES table:
// rotation 0 is spawn, 1 is clockwise (R), 2 is 180 (2), 3 is counter-clockwise
// (L). O's four rotations are identical; I spans the full 4x4 frame, everything
// else fits 3x3 but shares the 4x4 addressing convention.
var shapes = map[Kind][4][4]offset{
	KindI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	KindO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// spawnPositions holds the standard spawn anchor for each kind: horizontally
// centered, near the top of the board (y=1 leaves room for the piece's
// bounding box above the visible skyline).
var spawnPositions = map[Kind][2]int{
	KindI: {3, 1},
	KindO: {4, 1},
	KindT: {3, 1},
	KindS: {3, 1},
	KindZ: {3, 1},
	KindJ: {3, 1},
	KindL: {3, 1},
}

// Piece is an immutable active piece: a kind, anchor, and rotation state.
// Motion and rotation produce new values; nothing mutates a Piece in place.
type Piece struct {
	Kind   Kind
	X, Y   int
	Rot    int // rotation state, always normalized to 0..3
}

// NewPiece constructs a piece, normalizing the rotation index into 0..3.
func NewPiece(kind Kind, x, y, rot int) Piece {
	return Piece{Kind: kind, X: x, Y: y, Rot: normalizeRot(rot)}
}

// Spawn returns a new piece of kind at its standard spawn anchor, rotation 0.
func Spawn(kind Kind) Piece {
	pos := spawnPositions[kind]
	return NewPiece(kind, pos[0], pos[1], 0)
}

func normalizeRot(rot int) int {
	rot %= 4
	if rot < 0 {
		rot += 4
	}
	return rot
}

// Cells returns the four absolute board coordinates this piece occupies.
func (p Piece) Cells() [4][2]int {
	offs := shapes[p.Kind][p.Rot]
	var cells [4][2]int
	for i, o := range offs {
		cells[i] = [2]int{p.X + o.X, p.Y + o.Y}
	}
	return cells
}

// Move returns a new piece translated by (dx, dy).
func (p Piece) Move(dx, dy int) Piece {
	return Piece{Kind: p.Kind, X: p.X + dx, Y: p.Y + dy, Rot: p.Rot}
}

// WithRot returns a new piece at the same anchor with rotation state rot.
func (p Piece) WithRot(rot int) Piece {
	return Piece{Kind: p.Kind, X: p.X, Y: p.Y, Rot: normalizeRot(rot)}
}

// Rotate returns a new piece rotated one quarter turn, clockwise or
// counter-clockwise, at the same anchor (kicks are the SRS resolver's job).
func (p Piece) Rotate(clockwise bool) Piece {
	if clockwise {
		return p.WithRot(p.Rot + 1)
	}
	return p.WithRot(p.Rot - 1)
}
