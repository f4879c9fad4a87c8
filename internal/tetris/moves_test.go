package tetris

import "testing"

func TestLegalMovesSoundness(t *testing.T) {
	// property 6: every legal move is a reachable, non-colliding placement.
	b := NewBoard()
	moves := ComputeLegalMoves(b, KindT, KindNone, false, false, false)
	if len(moves) == 0 {
		t.Fatal("expected at least one legal move on an empty board")
	}
	for _, m := range moves {
		p := NewPiece(KindT, m.X, m.HardDropY, m.Rot)
		if b.Collides(p) {
			t.Fatalf("legal move %+v collides", m)
		}
		if !b.Collides(p.Move(0, 1)) {
			t.Fatalf("legal move %+v is not actually resting (can still fall)", m)
		}
	}
}

func TestLegalMovesCompleteness(t *testing.T) {
	// property 7: no other (x, rot) that hard-drops without colliding is
	// missing from the list.
	b := NewBoard()
	moves := ComputeLegalMoves(b, KindO, KindNone, false, false, false)
	found := make(map[LegalMove]bool, len(moves))
	for _, m := range moves {
		found[m] = true
	}

	for rot := 0; rot < 4; rot++ {
		for x := 0; x < BoardWidth; x++ {
			test := NewPiece(KindO, x, 0, rot)
			if b.Collides(test) {
				continue
			}
			for !b.Collides(test.Move(0, 1)) {
				test = test.Move(0, 1)
			}
			m := LegalMove{X: x, Rot: rot, UseHold: false, HardDropY: test.Y}
			if !found[m] {
				t.Fatalf("legal move %+v reachable but missing from ComputeLegalMoves", m)
			}
		}
	}
}

func TestLegalMovesIncludesHold(t *testing.T) {
	b := NewBoard()
	moves := ComputeLegalMoves(b, KindT, KindI, true, true, false)
	sawHold := false
	for _, m := range moves {
		if m.UseHold {
			sawHold = true
			break
		}
	}
	if !sawHold {
		t.Fatal("expected at least one use_hold move when hold is available")
	}
}

func TestLegalMovesExcludesHoldWhenUsed(t *testing.T) {
	b := NewBoard()
	moves := ComputeLegalMoves(b, KindT, KindI, true, true, true)
	for _, m := range moves {
		if m.UseHold {
			t.Fatal("did not expect a use_hold move when hold was already used")
		}
	}
}

func TestLegalMovesDeduplicated(t *testing.T) {
	b := NewBoard()
	moves := ComputeLegalMoves(b, KindO, KindNone, false, false, false)
	seen := make(map[LegalMove]bool, len(moves))
	for _, m := range moves {
		if seen[m] {
			t.Fatalf("duplicate legal move %+v", m)
		}
		seen[m] = true
	}
}
