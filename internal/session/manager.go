package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/claude/fit365/internal/models"
	"github.com/google/uuid"
)

var (
	ErrSessionActive = errors.New("a session is already in progress")
	ErrNoSession     = errors.New("no active session")
)

// Manager owns the single live session and drives its clock. One workout at
// a time: starting a new session requires the previous one to have reached a
// terminal phase.
type Manager struct {
	mu       sync.Mutex
	engine   *Engine
	recorder Recorder
}

func NewManager(recorder Recorder) *Manager {
	return &Manager{recorder: recorder}
}

// Run drives the session clock at one tick per second until ctx is
// cancelled. Ticks on a terminal or missing session are no-ops.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if e := m.Current(); e != nil {
				e.Tick()
			}
		}
	}
}

// Start begins a new session for the given workout day. Fails with
// ErrSessionActive while a previous session is still live.
func (m *Manager) Start(day models.WorkoutDay) (*Engine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.engine != nil && !m.engine.Terminal() {
		return nil, ErrSessionActive
	}
	m.engine = New(day, m.recorder)
	return m.engine, nil
}

// Current returns the live session, or nil when none has been started.
func (m *Manager) Current() *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engine
}

// Get returns the session with the given id. ErrNoSession when there is no
// session or the id does not match the live one.
func (m *Manager) Get(id uuid.UUID) (*Engine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine == nil || m.engine.ID() != id {
		return nil, ErrNoSession
	}
	return m.engine, nil
}
