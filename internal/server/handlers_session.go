package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/fit365/internal/plan"
	"github.com/claude/fit365/internal/session"
	"github.com/claude/fit365/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleStartSession begins a workout session for the plan's current day.
// Only one session can be live at a time.
func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	sp, err := s.db.GetSelectedPlan(r.Context())
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no plan selected"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	day := plan.GenerateDay(sp.PlanID, sp.CurrentDay)
	engine, err := s.sessions.Start(day)
	if errors.Is(err, session.ErrSessionActive) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, engine.Snapshot())
}

func (s *Server) handleSessionSnapshot(w http.ResponseWriter, r *http.Request) {
	engine, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, engine.Snapshot())
}

type sessionEvent struct {
	Type   string  `json:"type"`
	Index  int     `json:"index"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// handleSessionEvent applies one state transition to the live session and
// returns the resulting snapshot. The finish event additionally persists
// the session through the progress recorder.
func (s *Server) handleSessionEvent(w http.ResponseWriter, r *http.Request) {
	engine, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var ev sessionEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	var err error
	switch ev.Type {
	case "toggle_warmup":
		err = engine.ToggleWarmupItem(ev.Index)
	case "start_workout":
		err = engine.StartWorkout()
	case "set_weight":
		err = engine.SetWeight(ev.Weight)
	case "set_reps":
		err = engine.SetReps(ev.Reps)
	case "complete_set":
		err = engine.CompleteSet()
	case "skip_rest":
		err = engine.SkipRest()
	case "toggle_pause":
		err = engine.TogglePause()
	case "toggle_cooldown":
		err = engine.ToggleCooldownItem(ev.Index)
	case "finish":
		result, finishErr := engine.FinishCooldown(r.Context())
		if finishErr != nil && !errors.Is(finishErr, session.ErrWrongPhase) {
			// The session completed but persisting it failed.
			s.log.Error("recording session", "error", finishErr)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": finishErr.Error()})
			return
		}
		if finishErr != nil {
			writeJSON(w, http.StatusConflict, map[string]string{"error": finishErr.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"snapshot": engine.Snapshot(),
			"result":   result,
		})
		return
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown event type"})
		return
	}

	if err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, engine.Snapshot())
}

func (s *Server) handleAbandonSession(w http.ResponseWriter, r *http.Request) {
	engine, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	engine.Abandon()
	writeJSON(w, http.StatusOK, engine.Snapshot())
}

// sessionFromRequest resolves the {id} URL param to the live session,
// writing the error response itself when the lookup fails.
func (s *Server) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*session.Engine, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return nil, false
	}
	engine, err := s.sessions.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return nil, false
	}
	return engine, true
}
