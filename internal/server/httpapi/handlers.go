package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/models"
	"github.com/dmitrijs2005/nutritrack/internal/server/services"
)

const maxBodyBytes = 1 << 20

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	GoalType      string   `json:"goal_type"`
	ActivityLevel string   `json:"activity_level"`
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	BirthDate     string   `json:"birth_date"`
	Gender        string   `json:"gender"`
	CaloriesGoal  *float64 `json:"calories_goal"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is the data of a successful login or registration.
type AuthResponse struct {
	User         models.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
}

// TokenResponse is the data of a successful refresh.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type handlers struct {
	auth    *services.AuthService
	records *services.RecordService
	today   func() string
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, "malformed request body")
		return false
	}
	return true
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, AuthResponse{User: res.User, Token: res.Token, RefreshToken: res.RefreshToken})
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.auth.Register(r.Context(), services.RegisterParams{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		GoalType:      models.GoalType(req.GoalType),
		ActivityLevel: models.ActivityLevel(req.ActivityLevel),
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		CaloriesGoal:  req.CaloriesGoal,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, AuthResponse{User: res.User, Token: res.Token, RefreshToken: res.RefreshToken})
}

// logout always succeeds; the body and bearer token are both optional.
func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	h.auth.Logout(r.Context(), PrincipalFrom(r.Context()), req.RefreshToken)
	writeData(w, http.StatusOK, struct{}{})
}

func (h *handlers) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decode(w, r, &req) {
		return
	}
	pair, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, TokenResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (h *handlers) profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.records.Profile(r.Context(), PrincipalFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, u)
}

func (h *handlers) listMeals(w http.ResponseWriter, r *http.Request) {
	list, err := h.records.Meals(r.Context(), PrincipalFrom(r.Context()), h.dateParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (h *handlers) addMeal(w http.ResponseWriter, r *http.Request) {
	var meal models.MealLog
	if !decode(w, r, &meal) {
		return
	}
	if meal.MealDate == "" {
		meal.MealDate = h.today()
	}
	created, err := h.records.AddMeal(r.Context(), PrincipalFrom(r.Context()), meal)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusCreated, created)
}

func (h *handlers) listWorkouts(w http.ResponseWriter, r *http.Request) {
	list, err := h.records.Workouts(r.Context(), PrincipalFrom(r.Context()), h.dateParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, list)
}

func (h *handlers) addWorkout(w http.ResponseWriter, r *http.Request) {
	var workout models.WorkoutLog
	if !decode(w, r, &workout) {
		return
	}
	if workout.WorkoutDate == "" {
		workout.WorkoutDate = h.today()
	}
	created, err := h.records.AddWorkout(r.Context(), PrincipalFrom(r.Context()), workout)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusCreated, created)
}

func (h *handlers) dailyStats(w http.ResponseWriter, r *http.Request) {
	snap, err := h.records.DailyStats(r.Context(), PrincipalFrom(r.Context()), h.dateParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, snap)
}

func (h *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// dateParam reads ?date=, defaulting to today when absent.
func (h *handlers) dateParam(r *http.Request) string {
	if d := r.URL.Query().Get("date"); d != "" {
		return d
	}
	return h.today()
}

func utcToday() string {
	return time.Now().UTC().Format(common.DateLayout)
}
