// Package http exposes the REST and websocket surface of the service.
package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"eduquest-service/internal/app"
	"eduquest-service/internal/domain"
)

// Handler wires the REST routes to the application services.
type Handler struct {
	service *app.QuestService
	hints   *app.HintService
}

func NewHandler(service *app.QuestService, hints *app.HintService) *Handler {
	return &Handler{service: service, hints: hints}
}

// Register attaches all REST routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/{$}", h.welcome)
	mux.HandleFunc("POST /api/students", h.createStudent)
	mux.HandleFunc("GET /api/students/{id}", h.getStudent)
	mux.HandleFunc("GET /api/students/{id}/progress", h.studentProgress)
	mux.HandleFunc("POST /api/students/{id}/submit_quest", h.submitQuest)
	mux.HandleFunc("POST /api/students/{id}/generate_hint", h.generateHint)
	mux.HandleFunc("GET /api/quests", h.listQuests)
	mux.HandleFunc("GET /api/leaderboard", h.leaderboard)
	mux.HandleFunc("GET /api/badges", h.badges)
}

func (h *Handler) welcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":      "Welcome to EduQuest Odisha!",
		"message_odia": "ଏଡୁକ୍ୱେଷ୍ଟ ଓଡ଼ିଶାରେ ସ୍ୱାଗତ!",
	})
}

type createStudentRequest struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Grade    int    `json:"grade"`
	Avatar   string `json:"avatar"`
	Language string `json:"language"`
}

func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	var req createStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Avatar == "" {
		writeError(w, http.StatusBadRequest, "name and avatar are required")
		return
	}
	if req.Age <= 0 || req.Grade <= 0 {
		writeError(w, http.StatusBadRequest, "age and grade must be positive")
		return
	}
	language, ok := domain.ParseLanguage(req.Language)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown language")
		return
	}

	student, err := h.service.RegisterStudent(r.Context(), app.Registration{
		Name:     req.Name,
		Age:      req.Age,
		Grade:    req.Grade,
		Avatar:   req.Avatar,
		Language: language,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *Handler) getStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.service.GetStudent(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *Handler) listQuests(w http.ResponseWriter, r *http.Request) {
	filter := domain.QuestFilter{}
	if raw := r.URL.Query().Get("grade"); raw != "" {
		grade, err := strconv.Atoi(raw)
		if err != nil || grade <= 0 {
			writeError(w, http.StatusBadRequest, "invalid grade")
			return
		}
		filter.Grade = grade
	}
	if raw := r.URL.Query().Get("subject"); raw != "" {
		subject, ok := domain.ParseSubject(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown subject")
			return
		}
		filter.Subject = subject
	}

	quests, err := h.service.ListQuests(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if quests == nil {
		quests = []domain.Quest{}
	}
	writeJSON(w, http.StatusOK, quests)
}

func (h *Handler) studentProgress(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.StudentProgress(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []domain.Progress{}
	}
	writeJSON(w, http.StatusOK, records)
}

type submitQuestRequest struct {
	QuestID string                  `json:"quest_id"`
	Answers []domain.QuestionAnswer `json:"answers"`
}

func (h *Handler) submitQuest(w http.ResponseWriter, r *http.Request) {
	var req submitQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestID == "" {
		writeError(w, http.StatusBadRequest, "quest_id is required")
		return
	}

	result, err := h.service.SubmitQuest(r.Context(), r.PathValue("id"), req.QuestID, req.Answers)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) generateHint(w http.ResponseWriter, r *http.Request) {
	questID := r.URL.Query().Get("quest_id")
	questionID := r.URL.Query().Get("question_id")
	if questID == "" || questionID == "" {
		writeError(w, http.StatusBadRequest, "quest_id and question_id are required")
		return
	}

	hint, err := h.hints.GenerateHint(r.Context(), r.PathValue("id"), questID, questionID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hint)
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	grade := 0
	if raw := r.URL.Query().Get("grade"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid grade")
			return
		}
		grade = parsed
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.service.Leaderboard(r.Context(), grade, limit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) badges(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Badges)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrQuestNotFound),
		errors.Is(err, domain.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
