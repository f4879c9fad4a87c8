package tetris

import "testing"

func TestBoardCollidesOutOfBounds(t *testing.T) {
	b := NewBoard()
	p := NewPiece(KindI, -1, 0, 0)
	if !b.Collides(p) {
		t.Fatal("expected collision for piece past the left edge")
	}
}

func TestBoardCollisionMonotonicity(t *testing.T) {
	// property 3: a superset of occupied cells never collides less than the
	// subset did.
	b := NewBoard()
	b.Set(5, 19, 3)

	sub := NewPiece(KindO, 4, 18, 0)  // occupies (5,18)(6,18)(5,19)(6,19)
	if !b.Collides(sub) {
		t.Fatal("expected O piece overlapping a filled cell to collide")
	}

	// Any rotation/position superset of the same cells must also collide;
	// KindO has only one distinct rotation shape, so rotating it in place
	// keeps it covering (5,19) and exercises the superset case directly.
	sameFootprint := NewPiece(KindO, 4, 18, 1)
	if !b.Collides(sameFootprint) {
		t.Fatal("expected rotated-but-still-overlapping piece to collide")
	}
}

func TestBoardLockAndClearLines(t *testing.T) {
	b := NewBoard()
	for x := 0; x < BoardWidth; x++ {
		if x == 5 {
			continue
		}
		b.Set(x, 19, 2)
	}
	if b.rowFull(19) {
		t.Fatal("row should not be full with one empty cell")
	}
	b.Set(5, 19, 2)
	if !b.rowFull(19) {
		t.Fatal("expected row 19 to be full")
	}

	cleared := b.ClearLines()
	if cleared != 1 {
		t.Fatalf("expected 1 cleared line, got %d", cleared)
	}
	for x := 0; x < BoardWidth; x++ {
		if b.Get(x, 19) != 0 {
			t.Fatalf("expected row 19 empty after clear, got cell (%d,19)=%d", x, b.Get(x, 19))
		}
	}
}

func TestBoardLockIdempotenceAfterClear(t *testing.T) {
	// property 4: column heights recomputed from scratch after a clear must
	// match incrementally-clamped heights.
	b := NewBoard()
	for x := 0; x < BoardWidth; x++ {
		b.Set(x, 19, 1)
		b.Set(x, 18, 1)
	}
	b.Set(3, 10, 1) // a lone block above, surviving the clear

	cleared := b.ClearLines()
	if cleared != 2 {
		t.Fatalf("expected 2 lines cleared, got %d", cleared)
	}

	heights := b.ColumnHeights()
	fresh := NewBoardFromCells(b.Cells())
	freshHeights := fresh.ColumnHeights()
	if heights != freshHeights {
		t.Fatalf("column heights mismatch after clear: %v vs recomputed %v", heights, freshHeights)
	}
}

func TestHolesPerColumn(t *testing.T) {
	b := NewBoard()
	b.Set(0, 18, 1) // block
	// (0,19) left empty underneath -> one hole
	holes := b.HolesPerColumn()
	if holes[0] != 1 {
		t.Fatalf("expected 1 hole in column 0, got %d", holes[0])
	}
}
