package session

import (
	"testing"

	"github.com/google/uuid"
)

// TestManagerSingleSession verifies only one live session is allowed and a
// second start is refused until the first reaches a terminal phase.
func TestManagerSingleSession(t *testing.T) {
	m := NewManager(nil)

	first, err := m.Start(pushDay())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := m.Start(pushDay()); err != ErrSessionActive {
		t.Fatalf("second Start err = %v, want ErrSessionActive", err)
	}

	first.Abandon()
	second, err := m.Start(pushDay())
	if err != nil {
		t.Fatalf("Start after abandon: %v", err)
	}
	if second.ID() == first.ID() {
		t.Error("second session reused the first session's id")
	}
}

// TestManagerGet verifies id-based lookup returns the live session and
// rejects unknown ids.
func TestManagerGet(t *testing.T) {
	m := NewManager(nil)

	if _, err := m.Get(uuid.New()); err != ErrNoSession {
		t.Fatalf("Get with no session err = %v, want ErrNoSession", err)
	}

	e, err := m.Start(pushDay())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	got, err := m.Get(e.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != e {
		t.Error("Get returned a different engine")
	}
	if _, err := m.Get(uuid.New()); err != ErrNoSession {
		t.Errorf("Get with wrong id err = %v, want ErrNoSession", err)
	}
}

// TestManagerCurrentNil verifies Current is nil before any session starts.
func TestManagerCurrentNil(t *testing.T) {
	m := NewManager(nil)
	if m.Current() != nil {
		t.Error("Current() != nil before any Start")
	}
}
