package tetris

// SchemaVersion tags the observation wire schema. Bump on any breaking
// change to the payload shape.
const SchemaVersion = "s1.0.0"

// TicksPerSecond is the fixed simulation rate the tick counter advances at.
const TicksPerSecond = 60

// BoardView is the wire representation of the board within an observation.
type BoardView struct {
	W           int    `json:"w"`
	H           int    `json:"h"`
	Cells       []int  `json:"cells"`
	RowHeights  [BoardWidth]int `json:"row_heights"`
	HolesPerCol [BoardWidth]int `json:"holes_per_col"`
}

// CurrentView is the wire representation of the active piece.
type CurrentView struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Rot  int    `json:"rot"`
}

// HoldView is the wire representation of the hold slot.
type HoldView struct {
	Type *string `json:"type"`
	Used bool    `json:"used"`
}

// EpisodeView is the wire representation of episode-level counters.
type EpisodeView struct {
	Score      int  `json:"score"`
	LinesTotal int  `json:"lines_total"`
	TopOut     bool `json:"top_out"`
	Seed       int64 `json:"seed"`
}

// Observation is the complete per-tick game state snapshot, matching the
// session protocol's `data` payload field for field.
type Observation struct {
	SchemaVersion string      `json:"schema_version"`
	Tick          int         `json:"tick"`
	Board         BoardView   `json:"board"`
	Current       CurrentView `json:"current"`
	NextQueue     []string    `json:"next_queue"`
	Hold          HoldView    `json:"hold"`
	Features      Features    `json:"features"`
	Episode       EpisodeView `json:"episode"`
	LegalMoves    []LegalMove `json:"legal_moves"`
}

// StepResult is what Step returns: the resulting observation, a reward
// (unused by any current agent but kept for gym-style interface parity),
// whether the episode has ended, and a per-tick info bag.
type StepResult struct {
	Obs    Observation
	Reward float64
	Done   bool
	Info   StepInfo
}

// StepInfo carries the per-tick side information the protocol layer surfaces
// under `obs.info`.
type StepInfo struct {
	LinesCleared int      `json:"lines_cleared"`
	Delta        Features `json:"delta"`
	Events       []string `json:"events"`
}
