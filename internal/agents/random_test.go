package agents

import (
	"testing"

	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

func TestRandomAgentPicksALegalMove(t *testing.T) {
	env := tetris.NewEnvironment(tetris.DefaultEngineConfig())
	obs := env.Reset(5)

	a := NewRandomAgent(9)
	decision := a.Decide(obs)

	found := false
	for _, m := range obs.LegalMoves {
		if m.X == decision.X && m.Rot == decision.Rot && m.UseHold == decision.UseHold {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("decision %+v is not among the observation's legal moves", decision)
	}
}

func TestRandomAgentDeterministicPerSeed(t *testing.T) {
	env := tetris.NewEnvironment(tetris.DefaultEngineConfig())
	obs := env.Reset(5)

	a1 := NewRandomAgent(123)
	a2 := NewRandomAgent(123)
	if a1.Decide(obs) != a2.Decide(obs) {
		t.Fatal("same-seeded random agents should make the same decision given the same observation")
	}
}

func TestRandomAgentEmptyLegalMoves(t *testing.T) {
	a := NewRandomAgent(1)
	decision := a.Decide(tetris.Observation{})
	if decision != (tetris.PlacementAction{}) {
		t.Fatalf("expected zero-value placement with no legal moves, got %+v", decision)
	}
}
