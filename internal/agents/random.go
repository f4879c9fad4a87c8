package agents

import (
	"math/rand"

	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

// RandomAgent chooses uniformly among the legal moves. It serves as a
// baseline: any serious policy should clear substantially more lines.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a RandomAgent seeded deterministically.
func NewRandomAgent(seed int64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

// Name identifies this policy.
func (a *RandomAgent) Name() string { return "Random" }

// Decide picks a uniformly random legal move, or a zero placement if none
// exist (which the environment then no-ops).
func (a *RandomAgent) Decide(obs tetris.Observation) tetris.PlacementAction {
	if len(obs.LegalMoves) == 0 {
		return tetris.PlacementAction{}
	}
	move := obs.LegalMoves[a.rng.Intn(len(obs.LegalMoves))]
	return tetris.PlacementAction{X: move.X, Rot: move.Rot, UseHold: move.UseHold}
}
