package tetris

// FrameAction is one frame's worth of player or agent intent.
type FrameAction int

const (
	ActionNoop FrameAction = iota
	ActionLeft
	ActionRight
	ActionCW
	ActionCCW
	ActionSoft
	ActionHard
	ActionHold
)

// String returns the wire name of the action, matching the protocol's
// {LEFT, RIGHT, CW, CCW, SOFT, HARD, HOLD, NOOP} vocabulary.
func (a FrameAction) String() string {
	switch a {
	case ActionLeft:
		return "LEFT"
	case ActionRight:
		return "RIGHT"
	case ActionCW:
		return "CW"
	case ActionCCW:
		return "CCW"
	case ActionSoft:
		return "SOFT"
	case ActionHard:
		return "HARD"
	case ActionHold:
		return "HOLD"
	default:
		return "NOOP"
	}
}

// ParseFrameAction maps a wire action string to a FrameAction. ok is false
// for any string outside the known vocabulary.
func ParseFrameAction(s string) (FrameAction, bool) {
	switch s {
	case "LEFT":
		return ActionLeft, true
	case "RIGHT":
		return ActionRight, true
	case "CW":
		return ActionCW, true
	case "CCW":
		return ActionCCW, true
	case "SOFT":
		return ActionSoft, true
	case "HARD":
		return ActionHard, true
	case "HOLD":
		return ActionHold, true
	case "NOOP":
		return ActionNoop, true
	default:
		return ActionNoop, false
	}
}

// PlacementAction is a direct target placement, as issued by an agent
// choosing among Observation.LegalMoves.
type PlacementAction struct {
	X       int
	Rot     int
	UseHold bool
}

// Environment is a self-contained, deterministic Tetris episode: board, bag,
// hold slot, lock-delay timer, and episode counters. It owns all of that
// state exclusively; nothing outside an Environment mutates it directly.
type Environment struct {
	config EngineConfig

	board *Board
	bag   *Bag
	srs   bool
	lock  *LockDelay

	current    Piece
	hasCurrent bool

	holdKind Kind
	hasHold  bool
	holdUsed bool

	tick       int
	score      int
	linesTotal int
	done       bool
	seed       int64

	gravityCounter int
	lastFeatures   Features
}

// NewEnvironment constructs an Environment with the given configuration. Call
// Reset before stepping it.
func NewEnvironment(config EngineConfig) *Environment {
	return &Environment{
		config: config,
		board:  NewBoard(),
		srs:    config.SRSEnabled,
		lock:   NewLockDelay(config.LockDelayTicks),
	}
}

// Reset starts a fresh episode seeded deterministically by seed: an empty
// board, a fresh bag, an empty hold slot, score and tick at zero, and a
// spawned first piece. If the first spawn collides the episode is
// immediately marked top-out.
func (e *Environment) Reset(seed int64) Observation {
	e.seed = seed
	e.bag = NewBag(seed)
	e.board = NewBoard()
	e.lock.Reset()

	e.tick = 0
	e.score = 0
	e.linesTotal = 0
	e.done = false
	e.hasHold = false
	e.holdKind = KindNone
	e.holdUsed = false
	e.gravityCounter = 0

	e.spawnPiece()
	e.lastFeatures = ComputeFeatures(e.board)

	return e.buildObservation()
}

// Step applies one frame action and advances the simulation by one tick:
// the action is resolved, then gravity, then lock-delay tracking, then a
// lock (if the delay elapsed) with its line-clear/score/respawn/top-out
// sequence. A Step called after Done() mutates nothing and returns the
// unchanged observation with Done set and no events.
func (e *Environment) Step(action FrameAction) StepResult {
	if e.done {
		return StepResult{Obs: e.buildObservation(), Reward: 0, Done: true, Info: StepInfo{Events: nil}}
	}

	var events []string
	linesCleared := 0
	oldFeatures := e.lastFeatures
	shifted := false

	switch action {
	case ActionLeft:
		shifted = e.tryMove(-1, 0)
	case ActionRight:
		shifted = e.tryMove(1, 0)
	case ActionCW:
		shifted = e.tryRotate(true)
	case ActionCCW:
		shifted = e.tryRotate(false)
	case ActionSoft:
		e.tryMove(0, 1)
	case ActionHard:
		cleared, spawned := e.hardDrop()
		events = append(events, "hard_drop")
		if spawned {
			events = append(events, "lock")
		}
		if cleared > 0 {
			linesCleared = cleared
			events = append(events, "clear")
		}
		if spawned {
			events = append(events, "spawn")
		}
		if e.done {
			events = append(events, "top_out")
		}
	case ActionHold:
		if e.config.HoldEnabled {
			e.tryHold()
		}
	case ActionNoop:
		// no-op
	}

	if action != ActionHard {
		e.gravityCounter++
		if e.gravityCounter >= e.config.GravityTicks {
			e.gravityCounter = 0
			e.tryMove(0, 1)
		}
	}

	if action != ActionHard && e.hasCurrent {
		if IsOnGround(e.board, e.current) {
			if !e.lock.Active() || shifted {
				e.lock.Start()
			}
		} else if e.lock.Active() {
			e.lock.Reset()
		}
	}

	if e.lock.Active() {
		switch {
		case !e.hasCurrent:
			e.lock.Reset()
		case IsOnGround(e.board, e.current):
			if e.lock.Tick() {
				e.board.Lock(e.current)
				events = append(events, "lock")
				e.lock.Reset()

				cleared := e.board.ClearLines()
				if cleared > 0 {
					events = append(events, "clear")
					e.linesTotal += cleared
					e.score += Score(cleared)
					linesCleared = cleared
				}

				e.spawnPiece()
				events = append(events, "spawn")
				e.holdUsed = false

				if e.board.Collides(e.current) {
					e.done = true
					events = append(events, "top_out")
				}
			}
		default:
			e.lock.Reset()
		}
	}

	e.tick++

	newFeatures := ComputeFeatures(e.board)
	delta := FeatureDeltas(oldFeatures, newFeatures)
	e.lastFeatures = newFeatures

	return StepResult{
		Obs:    e.buildObservation(),
		Reward: 0,
		Done:   e.done,
		Info: StepInfo{
			LinesCleared: linesCleared,
			Delta:        delta,
			Events:       events,
		},
	}
}

// StepPlacement drives a whole placement decision — optional hold, rotate to
// the target rotation, shift to the target column, then hard drop —
// executed as the corresponding sequence of frame actions, one Step per
// action, exactly as the protocol layer would translate an agent's decision.
func (e *Environment) StepPlacement(action PlacementAction) StepResult {
	var last StepResult

	if action.UseHold {
		last = e.Step(ActionHold)
		if e.done {
			return last
		}
	}

	for !e.done && e.hasCurrent && e.current.Rot != action.Rot {
		before := e.current.Rot
		last = e.Step(ActionCW)
		if e.done || e.current.Rot == before {
			// rotation made no progress (blocked); avoid spinning forever
			break
		}
	}

	for !e.done && e.hasCurrent && e.current.X < action.X {
		last = e.Step(ActionRight)
	}
	for !e.done && e.hasCurrent && e.current.X > action.X {
		last = e.Step(ActionLeft)
	}

	if !e.done {
		last = e.Step(ActionHard)
	}

	return last
}

// Done reports whether the episode has ended (top-out).
func (e *Environment) Done() bool {
	return e.done
}

func (e *Environment) spawnPiece() {
	kind := e.bag.Next()
	e.current = Spawn(kind)
	e.hasCurrent = true
}

func (e *Environment) tryMove(dx, dy int) bool {
	if !e.hasCurrent {
		return false
	}
	moved := e.current.Move(dx, dy)
	if !e.board.Collides(moved) {
		e.current = moved
		return true
	}
	return false
}

func (e *Environment) tryRotate(clockwise bool) bool {
	if !e.hasCurrent {
		return false
	}
	var resolved Piece
	var ok bool
	if e.srs {
		resolved, ok = TryRotate(e.board, e.current, clockwise)
	} else {
		candidate := e.current.Rotate(clockwise)
		if !e.board.Collides(candidate) {
			resolved, ok = candidate, true
		}
	}
	if ok {
		e.current = resolved
		return true
	}
	return false
}

// hardDrop descends the current piece until it collides, locks it in place,
// clears lines, spawns the next piece, and checks for top-out. It returns
// the number of lines cleared and whether a new piece was spawned.
func (e *Environment) hardDrop() (int, bool) {
	if !e.hasCurrent {
		return 0, false
	}

	for !e.board.Collides(e.current.Move(0, 1)) {
		e.current = e.current.Move(0, 1)
	}

	e.board.Lock(e.current)
	cleared := e.board.ClearLines()
	if cleared > 0 {
		e.linesTotal += cleared
		e.score += Score(cleared)
	}

	e.spawnPiece()
	e.holdUsed = false

	if e.board.Collides(e.current) {
		e.done = true
	}

	return cleared, true
}

// tryHold swaps the current piece into the hold slot. If the hold slot was
// empty, the next bag piece becomes the new active piece; otherwise the
// current and held kinds swap, with the newly active piece spawning at its
// standard anchor. A hold that fills an occupied spawn location tops out the
// episode. No-op if hold was already used this turn or there is no active
// piece.
func (e *Environment) tryHold() bool {
	if e.holdUsed || !e.hasCurrent {
		return false
	}

	if !e.hasHold {
		e.holdKind = e.current.Kind
		e.hasHold = true
		e.spawnPiece()
	} else {
		swapped := e.holdKind
		e.holdKind = e.current.Kind
		e.current = Spawn(swapped)
	}

	if e.board.Collides(e.current) {
		e.done = true
	}

	e.holdUsed = true
	return true
}

func (e *Environment) buildObservation() Observation {
	var currentView CurrentView
	if e.hasCurrent {
		currentView = CurrentView{Type: e.current.Kind.String(), X: e.current.X, Y: e.current.Y, Rot: e.current.Rot}
	}

	nextKinds := e.bag.Peek(e.config.NextQueueSize)
	nextQueue := make([]string, len(nextKinds))
	for i, k := range nextKinds {
		nextQueue[i] = k.String()
	}

	var holdType *string
	if e.hasHold {
		s := e.holdKind.String()
		holdType = &s
	}

	legalCurrent := KindNone
	if e.hasCurrent {
		legalCurrent = e.current.Kind
	}
	legalMoves := ComputeLegalMoves(e.board, legalCurrent, e.holdKind, e.config.HoldEnabled, e.hasHold, e.holdUsed)

	return Observation{
		SchemaVersion: SchemaVersion,
		Tick:          e.tick,
		Board: BoardView{
			W:           BoardWidth,
			H:           BoardHeight,
			Cells:       e.board.Cells(),
			RowHeights:  e.board.ColumnHeights(),
			HolesPerCol: e.board.HolesPerColumn(),
		},
		Current:    currentView,
		NextQueue:  nextQueue,
		Hold:       HoldView{Type: holdType, Used: e.holdUsed},
		Features:   ComputeFeatures(e.board),
		Episode: EpisodeView{
			Score:      e.score,
			LinesTotal: e.linesTotal,
			TopOut:     e.done,
			Seed:       e.seed,
		},
		LegalMoves: legalMoves,
	}
}
