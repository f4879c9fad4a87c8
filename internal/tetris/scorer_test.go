package tetris

import "testing"

func TestScoreTable(t *testing.T) {
	// property 9: score per lock is exactly {0,100,300,500,800}.
	cases := map[int]int{0: 0, 1: 100, 2: 300, 3: 500, 4: 800}
	for lines, want := range cases {
		if got := Score(lines); got != want {
			t.Errorf("Score(%d) = %d, want %d", lines, got, want)
		}
	}
}
