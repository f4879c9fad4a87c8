package session

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

// fakeHandle is an in-memory Handle capturing every sent line for
// assertions, standing in for a real transport in these dispatch tests.
type fakeHandle struct {
	id    ID
	sent  [][]byte
	done  chan struct{}
}

func newFakeHandle(id ID) *fakeHandle {
	return &fakeHandle{id: id, done: make(chan struct{})}
}

func (h *fakeHandle) SessionID() ID         { return h.id }
func (h *fakeHandle) Send(line []byte)      { h.sent = append(h.sent, line) }
func (h *fakeHandle) Done() <-chan struct{} { return h.done }

func (h *fakeHandle) last() map[string]any {
	if len(h.sent) == 0 {
		return nil
	}
	var m map[string]any
	json.Unmarshal(h.sent[len(h.sent)-1], &m)
	return m
}

func newTestSession() (*Session, *fakeHandle) {
	h := newFakeHandle("s1")
	s := New("s1", h, tetris.DefaultEngineConfig(), nil, nil)
	return s, h
}

func TestSessionHelloBeforeResetSucceeds(t *testing.T) {
	s, h := newTestSession()
	s.dispatch([]byte(`{"type":"hello","version":"1.0"}`))

	reply := h.last()
	if reply["type"] != "hello" {
		t.Fatalf("expected a hello reply, got %v", reply)
	}
}

func TestSessionHelloMismatchedMajorVersionIsRejected(t *testing.T) {
	s, h := newTestSession()
	s.dispatch([]byte(`{"type":"hello","version":"2.0"}`))

	reply := h.last()
	if reply["type"] != "error" || reply["code"] != ErrVersionMismatch {
		t.Fatalf("expected VERSION_MISMATCH error, got %v", reply)
	}
}

func TestSessionHelloWithoutVersionSucceeds(t *testing.T) {
	s, h := newTestSession()
	s.dispatch([]byte(`{"type":"hello"}`))

	reply := h.last()
	if reply["type"] != "hello" {
		t.Fatalf("expected a hello reply, got %v", reply)
	}
}

func TestSessionStepBeforeResetIsGameNotInitialized(t *testing.T) {
	s, h := newTestSession()
	s.dispatch([]byte(`{"type":"step","action":"left"}`))

	reply := h.last()
	if reply["type"] != "error" || reply["code"] != ErrGameNotInitialized {
		t.Fatalf("expected GAME_NOT_INITIALIZED error, got %v", reply)
	}
}

func TestSessionMalformedMessageIsInvalidMessage(t *testing.T) {
	s, h := newTestSession()
	s.dispatch([]byte(`not json at all`))

	reply := h.last()
	if reply["type"] != "error" || reply["code"] != ErrInvalidMessage {
		t.Fatalf("expected INVALID_MESSAGE error, got %v", reply)
	}
}

func TestSessionUnknownActionIsInvalidAction(t *testing.T) {
	s, h := newTestSession()
	s.dispatch([]byte(`{"type":"reset"}`))
	s.dispatch([]byte(`{"type":"step","action":"not_a_real_action"}`))

	reply := h.last()
	if reply["type"] != "error" || reply["code"] != ErrInvalidAction {
		t.Fatalf("expected INVALID_ACTION error, got %v", reply)
	}
}

func TestSessionResetThenStepProducesObs(t *testing.T) {
	s, h := newTestSession()
	seed := int64(7)
	msg, _ := json.Marshal(map[string]any{"type": "reset", "seed": seed})
	s.dispatch(msg)

	reply := h.last()
	if reply["type"] != "obs" {
		t.Fatalf("expected obs reply after reset, got %v", reply)
	}

	s.dispatch([]byte(`{"type":"step","action":"LEFT"}`))
	reply = h.last()
	if reply["type"] != "obs" {
		t.Fatalf("expected obs reply after step, got %v", reply)
	}
}

func TestSessionStepAfterGameOverIsGameOver(t *testing.T) {
	s, h := newTestSession()
	seed := int64(2)
	msg, _ := json.Marshal(map[string]any{"type": "reset", "seed": seed})
	s.dispatch(msg)

	// Drive hard drops until top-out, mirroring the engine's own top-out
	// determinism test: repeated center-column drops eventually pile up.
	for i := 0; i < 60 && s.env != nil && !s.env.Done(); i++ {
		s.dispatch([]byte(`{"type":"step","action":"HARD"}`))
	}
	if s.env == nil || !s.env.Done() {
		t.Fatal("expected the episode to top out within 60 hard drops")
	}

	s.dispatch([]byte(`{"type":"step","action":"HARD"}`))
	reply := h.last()
	if reply["type"] != "error" || reply["code"] != ErrGameOver {
		t.Fatalf("expected GAME_OVER error after episode end, got %v", reply)
	}
}

func TestSessionUnknownAgentTypeRejectsAIPlay(t *testing.T) {
	s, h := newTestSession()
	s.dispatch([]byte(`{"type":"ai_play","agent_type":"not-a-real-agent","speed":1}`))

	reply := h.last()
	if reply["type"] != "error" || reply["code"] != ErrInvalidMessage {
		t.Fatalf("expected INVALID_MESSAGE for an unknown agent type, got %v", reply)
	}
}

func TestCadenceForSpeedConversion(t *testing.T) {
	if cadenceFor(1) != cadenceFor(1) {
		t.Fatal("cadenceFor should be a pure function")
	}
	if cadenceFor(2) >= cadenceFor(1) {
		t.Fatal("doubling speed should halve the cadence interval")
	}
	if cadenceFor(0) != cadenceFor(1) {
		t.Fatal("non-positive speed should fall back to speed 1")
	}
}
