package tetris

import "testing"

func TestFeaturesEmptyBoard(t *testing.T) {
	// An empty board still counts wall/floor transitions: each of the 20 rows
	// contributes two open-edge transitions, and each of the 10 columns
	// contributes one open-floor transition.
	b := NewBoard()
	f := ComputeFeatures(b)
	want := Features{RowTrans: 2 * BoardHeight, ColTrans: BoardWidth}
	if f != want {
		t.Fatalf("ComputeFeatures(empty) = %+v, want %+v", f, want)
	}
}

func TestFeaturesPurity(t *testing.T) {
	// property 8: features are a function of board.cells alone.
	a := NewBoard()
	a.Set(2, 19, 1)
	a.Set(2, 18, 1)

	b := NewBoardFromCells(a.Cells())
	if ComputeFeatures(a) != ComputeFeatures(b) {
		t.Fatal("expected identical features for boards with identical cells")
	}
}

func TestBumpinessAndAggHeight(t *testing.T) {
	b := NewBoard()
	b.Set(0, 19, 1)              // column 0 height 1
	b.Set(1, 19, 1)
	b.Set(1, 18, 1)              // column 1 height 2

	f := ComputeFeatures(b)
	if f.AggHeight != 3 {
		t.Errorf("AggHeight = %d, want 3", f.AggHeight)
	}
	if f.Bumpiness != 3 {
		t.Errorf("Bumpiness = %d, want 3", f.Bumpiness)
	}
}

func TestHolesFeature(t *testing.T) {
	b := NewBoard()
	b.Set(4, 15, 1) // overhang
	// (4,16..19) empty beneath -> 4 holes
	f := ComputeFeatures(b)
	if f.Holes != 4 {
		t.Errorf("Holes = %d, want 4", f.Holes)
	}
}

func TestFeatureDeltas(t *testing.T) {
	before := Features{AggHeight: 5, Holes: 1}
	after := Features{AggHeight: 8, Holes: 0}
	delta := FeatureDeltas(before, after)
	if delta.AggHeight != 3 || delta.Holes != -1 {
		t.Fatalf("unexpected delta: %+v", delta)
	}
}
