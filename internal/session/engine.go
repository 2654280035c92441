// Package session implements the guided workout session runner: a linear
// state machine that walks the user through warm-up, the exercise/set/rest
// cycle, cooldown, and completion, recording per-set performance along the
// way. All mutation is serialized on an internal mutex; time advances only
// through Tick, driven by one external 1 Hz ticker.
package session

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/claude/fit365/internal/models"
	"github.com/google/uuid"
)

// Phase is the engine's top-level state. Transitions are strictly forward:
// warmup → workout → cooldown → complete. Abandoned is reachable from any
// non-terminal phase.
type Phase string

const (
	PhaseWarmup    Phase = "warmup"
	PhaseWorkout   Phase = "workout"
	PhaseCooldown  Phase = "cooldown"
	PhaseComplete  Phase = "complete"
	PhaseAbandoned Phase = "abandoned"
)

// DefaultRestSeconds is used when an exercise's rest field cannot be parsed.
const DefaultRestSeconds = 90

var (
	// ErrWrongPhase is returned when an event does not apply to the
	// engine's current phase.
	ErrWrongPhase = errors.New("session: event not valid in current phase")

	// ErrWarmupIncomplete is returned by StartWorkout while warm-up items
	// remain unchecked.
	ErrWarmupIncomplete = errors.New("session: warm-up not complete")

	// ErrPaused is returned by CompleteSet while the session is paused.
	ErrPaused = errors.New("session: paused")
)

// Recorder receives the finished session outcome at the terminal transition.
// It is invoked at most once per session and never on abandonment.
type Recorder interface {
	RecordSession(ctx context.Context, result models.SessionResult) error
}

// Engine drives one workout session over a WorkoutDay. Safe for concurrent
// use: ticks and user events serialize on the internal mutex, so no two
// state mutations overlap.
type Engine struct {
	mu sync.Mutex

	id       uuid.UUID
	day      models.WorkoutDay
	recorder Recorder

	phase        Phase
	warmupDone   []bool
	cooldownDone []bool

	exerciseIdx   int
	setIdx        int
	resting       bool
	restRemaining int

	paused  bool
	elapsed int

	weight float64
	reps   int

	progress []models.ExerciseProgress
	recorded bool
}

// New creates an engine in the warm-up phase with one empty ExerciseProgress
// slot per prescribed set. The reps input starts at the first exercise's
// upper-bound target.
func New(day models.WorkoutDay, recorder Recorder) *Engine {
	progress := make([]models.ExerciseProgress, len(day.MainWorkout))
	for i, ex := range day.MainWorkout {
		progress[i] = models.ExerciseProgress{
			Name: ex.Name,
			Sets: make([]models.ExerciseSet, ex.Sets),
		}
	}

	e := &Engine{
		id:           uuid.New(),
		day:          day,
		recorder:     recorder,
		phase:        PhaseWarmup,
		warmupDone:   make([]bool, len(day.Warmup.Exercises)),
		cooldownDone: make([]bool, len(day.Cooldown.Exercises)),
		progress:     progress,
	}
	if len(day.MainWorkout) > 0 {
		e.reps = targetReps(day.MainWorkout[0].Reps)
	}
	return e
}

// ID returns the session's unique identifier.
func (e *Engine) ID() uuid.UUID { return e.id }

// Tick advances session time by one second. The elapsed counter and any
// active rest countdown share the single pause flag, so they freeze and
// resume together.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused || e.terminal() {
		return
	}
	e.elapsed++
	if e.resting && e.restRemaining > 0 {
		e.restRemaining--
		if e.restRemaining == 0 {
			e.resting = false
		}
	}
}

// ToggleWarmupItem flips one warm-up checklist item. Out-of-range indexes
// are ignored.
func (e *Engine) ToggleWarmupItem(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseWarmup {
		return ErrWrongPhase
	}
	if index >= 0 && index < len(e.warmupDone) {
		e.warmupDone[index] = !e.warmupDone[index]
	}
	return nil
}

// StartWorkout transitions warm-up → workout once every warm-up item is
// checked. A day with no main exercises falls straight through to cooldown.
func (e *Engine) StartWorkout() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseWarmup {
		return ErrWrongPhase
	}
	for _, done := range e.warmupDone {
		if !done {
			return ErrWarmupIncomplete
		}
	}
	if len(e.day.MainWorkout) == 0 {
		e.phase = PhaseCooldown
		return nil
	}
	e.phase = PhaseWorkout
	return nil
}

// SetWeight sets the working-weight input, clamped to ≥0.
func (e *Engine) SetWeight(kg float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseWorkout {
		return ErrWrongPhase
	}
	if kg < 0 {
		kg = 0
	}
	e.weight = kg
	return nil
}

// SetReps sets the reps input, clamped to ≥0.
func (e *Engine) SetReps(reps int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseWorkout {
		return ErrWrongPhase
	}
	if reps < 0 {
		reps = 0
	}
	e.reps = reps
	return nil
}

// CompleteSet records the current weight/reps into the current set slot and
// advances the nested workout state: next set (entering the rest countdown),
// next exercise (resetting inputs), or cooldown after the final set of the
// final exercise. Refused while paused. Completing a set during an active
// rest countdown ends the rest implicitly.
func (e *Engine) CompleteSet() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseWorkout {
		return ErrWrongPhase
	}
	if e.paused {
		return ErrPaused
	}
	if e.resting {
		e.resting = false
		e.restRemaining = 0
	}

	ex := e.day.MainWorkout[e.exerciseIdx]
	e.progress[e.exerciseIdx].Sets[e.setIdx] = models.ExerciseSet{
		Weight:    e.weight,
		Reps:      e.reps,
		Completed: true,
	}

	if e.setIdx < ex.Sets-1 {
		e.setIdx++
		e.resting = true
		e.restRemaining = restSeconds(ex.Rest)
		return nil
	}

	e.progress[e.exerciseIdx].Completed = true

	if e.exerciseIdx < len(e.day.MainWorkout)-1 {
		e.exerciseIdx++
		e.setIdx = 0
		e.weight = 0
		e.reps = targetReps(e.day.MainWorkout[e.exerciseIdx].Reps)
		return nil
	}

	e.phase = PhaseCooldown
	return nil
}

// SkipRest ends an active rest countdown immediately. The set index was
// already advanced at set-completion time.
func (e *Engine) SkipRest() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseWorkout {
		return ErrWrongPhase
	}
	e.resting = false
	e.restRemaining = 0
	return nil
}

// TogglePause flips the pause flag. Always permitted outside terminal
// phases; freezes elapsed time and the rest countdown together.
func (e *Engine) TogglePause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.terminal() {
		return ErrWrongPhase
	}
	e.paused = !e.paused
	return nil
}

// ToggleCooldownItem flips one cooldown checklist item. Out-of-range indexes
// are ignored.
func (e *Engine) ToggleCooldownItem(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseCooldown {
		return ErrWrongPhase
	}
	if index >= 0 && index < len(e.cooldownDone) {
		e.cooldownDone[index] = !e.cooldownDone[index]
	}
	return nil
}

// FinishCooldown transitions cooldown → complete and hands the session
// result to the recorder. Unlike warm-up, the cooldown checklist does not
// gate this transition. The recorder is invoked exactly once; a recorder
// error is returned to the caller but the session stays complete and is not
// retried.
func (e *Engine) FinishCooldown(ctx context.Context) (models.SessionResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseCooldown {
		return models.SessionResult{}, ErrWrongPhase
	}
	e.phase = PhaseComplete

	result := models.SessionResult{
		Day:            e.day.Day,
		Split:          e.day.Split,
		Exercises:      e.progress,
		ElapsedSeconds: e.elapsed,
		CompletedAt:    time.Now(),
	}
	for _, p := range e.progress {
		result.TotalVolume += p.TotalVolume()
		result.CompletedSets += p.CompletedSets()
	}

	e.recorded = true
	if e.recorder != nil {
		if err := e.recorder.RecordSession(ctx, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Abandon discards the session before completion. Nothing is persisted;
// no recorder call is made. No-op on terminal phases.
func (e *Engine) Abandon() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.terminal() {
		e.phase = PhaseAbandoned
	}
}

// Terminal reports whether the session has reached a final phase.
func (e *Engine) Terminal() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.terminal()
}

func (e *Engine) terminal() bool {
	return e.phase == PhaseComplete || e.phase == PhaseAbandoned
}

// restSeconds parses a rest duration string like "90s" or "120". Unparseable
// values fall back to DefaultRestSeconds.
func restSeconds(rest string) int {
	s := strings.TrimSuffix(strings.TrimSpace(rest), "s")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return DefaultRestSeconds
	}
	return n
}

// targetReps extracts the upper bound of a reps range like "8-10". A plain
// number is used as-is; anything unparseable defaults to 10.
func targetReps(reps string) int {
	s := strings.TrimSpace(reps)
	if i := strings.LastIndex(s, "-"); i >= 0 {
		s = s[i+1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 10
	}
	return n
}
