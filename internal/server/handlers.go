package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/fit365/internal/health"
	"github.com/claude/fit365/internal/models"
	"github.com/claude/fit365/internal/plan"
	"github.com/claude/fit365/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	result, err := s.importer.Import(r.Context(), r.Body)
	if err != nil {
		s.log.Error("import error", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, plan.Catalog)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, p := range plan.Catalog {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
}

type onboardingRequest struct {
	Height           float64           `json:"height"`
	Weight           float64           `json:"weight"`
	Age              int               `json:"age"`
	Gender           string            `json:"gender"`
	Waist            *float64          `json:"waist,omitempty"`
	Experience       models.Experience `json:"experience"`
	Location         models.Location   `json:"location"`
	HomeEquipment    []string          `json:"home_equipment"`
	Goals            []string          `json:"goals"`
	Lifestyle        models.Lifestyle  `json:"lifestyle"`
	Diet             string            `json:"diet"`
	HealthConditions []string          `json:"health_conditions"`
}

// handleOnboarding finishes onboarding: computes the health numbers, stores
// the profile, and selects the best matching plan starting at day 1.
func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Height <= 0 || req.Weight <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "height and weight are required"})
		return
	}

	profile := models.UserProfile{
		Height:           req.Height,
		Weight:           req.Weight,
		Age:              req.Age,
		Gender:           req.Gender,
		BMI:              health.BMI(req.Weight, req.Height),
		Experience:       req.Experience,
		Location:         req.Location,
		HomeEquipment:    req.HomeEquipment,
		Goals:            req.Goals,
		Lifestyle:        req.Lifestyle,
		Diet:             req.Diet,
		HealthConditions: req.HealthConditions,
	}
	if req.Waist != nil && *req.Waist > 0 {
		whtr := health.WHtR(*req.Waist, req.Height)
		profile.Waist = req.Waist
		profile.WHtR = &whtr
	}

	if err := s.db.SaveProfile(r.Context(), profile); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	selected := plan.FindPlan(profile.Location, profile.Experience, profile.Goals)
	sp := models.SelectedPlan{
		PlanID:     selected.ID,
		StartDate:  time.Now().UTC().Format("2006-01-02"),
		CurrentDay: 1,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.db.SaveSelectedPlan(r.Context(), sp); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	var whtr float64
	if profile.WHtR != nil {
		whtr = *profile.WHtR
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"profile": profile,
		"plan":    selected,
		"risk":    health.RiskFor(profile.BMI, whtr),
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.db.GetProfile(r.Context())
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no profile"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleGetSelectedPlan(w http.ResponseWriter, r *http.Request) {
	sp, err := s.db.GetSelectedPlan(r.Context())
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no plan selected"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	// calendar_day is where the calendar puts the user; selected.current_day
	// is where their recorded sessions actually put them.
	writeJSON(w, http.StatusOK, map[string]any{
		"selected":     sp,
		"plan":         plan.FindByID(sp.PlanID),
		"calendar_day": health.CurrentDay(sp.StartDate, time.Now().UTC()),
	})
}

// handleWorkoutDay returns the generated workout for the plan's current day,
// or for an explicit ?day=N override.
func (s *Server) handleWorkoutDay(w http.ResponseWriter, r *http.Request) {
	sp, err := s.db.GetSelectedPlan(r.Context())
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no plan selected"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	day := sp.CurrentDay
	if v := r.URL.Query().Get("day"); v != "" {
		day, err = strconv.Atoi(v)
		if err != nil || day < 1 || day > 365 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day must be between 1 and 365"})
			return
		}
	}

	writeJSON(w, http.StatusOK, plan.GenerateDay(sp.PlanID, day))
}

func (s *Server) handleQueryProgress(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rows, err := s.db.QueryDailyProgress(r.Context(), start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date"})
		return
	}
	p, err := s.db.GetDailyProgress(r.Context(), date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if p == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no progress for date"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleUpdateHabits replaces the habit flags on a date's record. A record
// is created when the date has none yet, so habits can be checked off on
// rest days.
func (s *Server) handleUpdateHabits(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date"})
		return
	}

	var habits models.DailyHabits
	if err := json.NewDecoder(r.Body).Decode(&habits); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	p, err := s.db.GetDailyProgress(r.Context(), date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if p == nil {
		p = &models.DailyProgress{Date: date}
	}
	p.Habits = habits
	if err := s.db.UpsertDailyProgress(r.Context(), *p); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	h, err := s.db.GetHistory(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleQueryMetrics(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rows, err := s.db.QueryBodyMetrics(r.Context(), start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleSaveMetric records a body measurement. The BMI is filled in from
// the profile height when the client leaves it zero.
func (s *Server) handleSaveMetric(w http.ResponseWriter, r *http.Request) {
	var m models.BodyMetric
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if m.Weight <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weight is required"})
		return
	}
	if m.Date == "" {
		m.Date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", m.Date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date"})
		return
	}
	if m.BMI == 0 {
		profile, err := s.db.GetProfile(r.Context())
		if err == nil {
			m.BMI = health.BMI(m.Weight, profile.Height)
		}
	}
	if err := s.db.UpsertBodyMetric(r.Context(), m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// handleListTodos returns all todo items. On the first list of a new day,
// recurring items (medicines, supplements) get their completed flag cleared.
func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	today := time.Now().UTC().Format("2006-01-02")
	last, err := s.db.GetSetting(r.Context(), "todos_reset_date")
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if last != today {
		if err := s.db.ResetRecurringTodos(r.Context()); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if err := s.db.SetSetting(r.Context(), "todos_reset_date", today); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	items, err := s.db.ListTodos(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.TodoItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleUpsertTodo(w http.ResponseWriter, r *http.Request) {
	var item models.TodoItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if item.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.db.UpsertTodo(r.Context(), item); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid todo ID"})
		return
	}
	if err := s.db.DeleteTodo(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.db.GetSetting(r.Context(), "theme")
	if errors.Is(err, storage.ErrNotFound) {
		theme = "dark"
	} else if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if body.Theme != "dark" && body.Theme != "light" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "theme must be dark or light"})
		return
	}
	if err := s.db.SetSetting(r.Context(), "theme", body.Theme); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": body.Theme})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseDateRange reads start/end date query params. Defaults to the last
// 30 days when start is missing; end defaults to today.
func parseDateRange(r *http.Request) (start, end string, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	now := time.Now().UTC()
	if startStr == "" {
		start = now.AddDate(0, 0, -30).Format("2006-01-02")
	} else {
		if _, err = time.Parse("2006-01-02", startStr); err != nil {
			return "", "", err
		}
		start = startStr
	}
	if endStr == "" {
		end = now.Format("2006-01-02")
	} else {
		if _, err = time.Parse("2006-01-02", endStr); err != nil {
			return "", "", err
		}
		end = endStr
	}
	return start, end, nil
}
