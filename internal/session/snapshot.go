package session

import (
	"github.com/claude/fit365/internal/models"
	"github.com/google/uuid"
)

// Snapshot is a read-only view of the engine for display layers. Progress
// is deep-copied so callers never observe in-flight mutation.
type Snapshot struct {
	ID             uuid.UUID                 `json:"id"`
	Phase          Phase                     `json:"phase"`
	Day            int                       `json:"day"`
	Split          string                    `json:"split"`
	WarmupDone     []bool                    `json:"warmup_done"`
	CooldownDone   []bool                    `json:"cooldown_done"`
	ExerciseIndex  int                       `json:"exercise_index"`
	ExerciseName   string                    `json:"exercise_name,omitempty"`
	SetIndex       int                       `json:"set_index"`
	TotalSets      int                       `json:"total_sets"`
	Resting        bool                      `json:"resting"`
	RestRemaining  int                       `json:"rest_remaining"`
	Paused         bool                      `json:"paused"`
	ElapsedSeconds int                       `json:"elapsed_seconds"`
	Weight         float64                   `json:"weight"`
	Reps           int                       `json:"reps"`
	Progress       []models.ExerciseProgress `json:"progress"`
}

// Snapshot returns the engine's current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		ID:             e.id,
		Phase:          e.phase,
		Day:            e.day.Day,
		Split:          e.day.Split,
		WarmupDone:     append([]bool(nil), e.warmupDone...),
		CooldownDone:   append([]bool(nil), e.cooldownDone...),
		ExerciseIndex:  e.exerciseIdx,
		SetIndex:       e.setIdx,
		Resting:        e.resting,
		RestRemaining:  e.restRemaining,
		Paused:         e.paused,
		ElapsedSeconds: e.elapsed,
		Weight:         e.weight,
		Reps:           e.reps,
	}
	if e.exerciseIdx < len(e.day.MainWorkout) {
		ex := e.day.MainWorkout[e.exerciseIdx]
		s.ExerciseName = ex.Name
		s.TotalSets = ex.Sets
	}
	s.Progress = make([]models.ExerciseProgress, len(e.progress))
	for i, p := range e.progress {
		cp := p
		cp.Sets = append([]models.ExerciseSet(nil), p.Sets...)
		s.Progress[i] = cp
	}
	return s
}
