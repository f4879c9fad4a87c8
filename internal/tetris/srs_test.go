package tetris

import "testing"

func TestTryRotateBasicSuccess(t *testing.T) {
	b := NewBoard()
	p := Spawn(KindT)
	rotated, ok := TryRotate(b, p, true)
	if !ok {
		t.Fatal("expected an unobstructed rotation to succeed")
	}
	if rotated.Rot != (p.Rot+1)%4 {
		t.Fatalf("rotated.Rot = %d, want %d", rotated.Rot, (p.Rot+1)%4)
	}
}

func TestTryRotateKickOrder(t *testing.T) {
	// property 5: the chosen kick is the first non-colliding entry.
	b := NewBoard()
	p := NewPiece(KindJ, 5, 5, 0)
	// Block the basic (offset {0,0}) rotation but leave the second kick
	// candidate {-1,0} for rotPair{0,1} open, forcing a kick.
	basic := p.Rotate(true)
	for _, c := range basic.Cells() {
		b.Set(c[0], c[1], 1)
	}
	second := basic.Move(kicksJLSTZ[rotPair{0, 1}][1].DX, kicksJLSTZ[rotPair{0, 1}][1].DY)
	for _, c := range second.Cells() {
		b.Set(c[0], c[1], 0)
	}

	resolved, ok := TryRotate(b, p, true)
	if !ok {
		t.Fatal("expected rotation to succeed via a wall kick")
	}
	if resolved.X != second.X || resolved.Y != second.Y {
		t.Fatalf("resolved to %+v, want the second kick candidate %+v", resolved, second)
	}
}

func TestTryRotateOFailsClosed(t *testing.T) {
	b := NewBoard()
	p := Spawn(KindO)
	for x := 0; x < BoardWidth; x++ {
		b.Set(x, p.Y, 1)
		b.Set(x, p.Y+1, 1)
	}
	_, ok := TryRotate(b, p, true)
	if ok {
		t.Fatal("O piece has no kick table; a blocked rotation must fail")
	}
}

func TestTryRotateAllBlocked(t *testing.T) {
	b := NewBoard()
	p := NewPiece(KindT, 0, 0, 0)
	for x := 0; x < BoardWidth; x++ {
		for y := 0; y < BoardHeight; y++ {
			b.Set(x, y, 1)
		}
	}
	for _, c := range p.Cells() {
		b.Set(c[0], c[1], 0)
	}
	resolved, ok := TryRotate(b, p, true)
	if ok {
		t.Fatal("expected rotation to fail when every kick candidate collides")
	}
	if resolved != p {
		t.Fatal("a failed rotation must return the original piece unchanged")
	}
}
