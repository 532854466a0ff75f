package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/matchmerit/services"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

// CreateMatch godoc
// @Summary Запланировать матч
// @Tags matches
// @Accept json
// @Produce json
// @Param body body services.CreateMatchInput true "Матч"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "INVALID_SPORT / INVALID_CAPACITY / INVALID_DURATION / INVALID_COLOR"
// @Failure 403 {object} map[string]string "INSUFFICIENT_PERMISSIONS"
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input services.CreateMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.GroupID != "" {
		if _, err := uuid.Parse(input.GroupID); err != nil {
			badRequestResponse(w, r, errors.New("group_id must be a UUID"))
			return
		}
	}
	input.RequesterID = userID

	match, err := h.matchService.CreateMatch(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateMatch godoc
// @Summary Изменить матч
// @Tags matches
// @Accept json
// @Produce json
// @Param matchID path string true "Match ID"
// @Param body body services.UpdateMatchInput true "Изменяемые поля"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "MATCH_LOCKED / INSUFFICIENT_PERMISSIONS"
// @Security BearerAuth
// @Router /matches/{matchID} [patch]
func (h *MatchHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.MatchID = matchID
	input.RequesterID = userID

	match, err := h.matchService.UpdateMatch(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateMatchStatus godoc
// @Summary Сменить статус матча
// @Tags matches
// @Description planning → playing фиксирует резерв по текущему рейтингу.
// @Accept json
// @Produce json
// @Param matchID path string true "Match ID"
// @Param body body services.UpdateMatchStatusInput true "Новый статус"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "INVALID_TRANSITION"
// @Failure 403 {object} map[string]string "MATCH_LOCKED / INSUFFICIENT_PERMISSIONS"
// @Security BearerAuth
// @Router /matches/{matchID}/status [patch]
func (h *MatchHandler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateMatchStatusInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.MatchID = matchID
	input.RequesterID = userID

	match, err := h.matchService.UpdateMatchStatus(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LockMatch godoc
// @Summary Заблокировать завершенный матч
// @Tags matches
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "MATCH_NOT_FINISHED"
// @Failure 403 {object} map[string]string "INSUFFICIENT_PERMISSIONS"
// @Security BearerAuth
// @Router /matches/{matchID}/lock [patch]
func (h *MatchHandler) LockMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.LockMatch(r.Context(), matchID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// JoinMatch godoc
// @Summary Записаться на матч
// @Tags matches
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "MATCH_NOT_PLANNING"
// @Failure 409 {object} map[string]string "ALREADY_JOINED"
// @Security BearerAuth
// @Router /matches/{matchID}/participants [post]
func (h *MatchHandler) JoinMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	reg, err := h.matchService.JoinMatch(r.Context(), matchID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"registration": reg}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LeaveMatch godoc
// @Summary Отменить запись на матч
// @Tags matches
// @Description Поздняя отмена сохраняет запись с пометкой is_late_cancellation.
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "MATCH_NOT_PLANNING / NOT_REGISTERED"
// @Security BearerAuth
// @Router /matches/{matchID}/participants/me [delete]
func (h *MatchHandler) LeaveMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	late, err := h.matchService.LeaveMatch(r.Context(), matchID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"late_cancellation": late}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListParticipants godoc
// @Summary Рейтинг участников матча
// @Tags matches
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "NOT_A_GROUP_MEMBER"
// @Security BearerAuth
// @Router /matches/{matchID}/participants [get]
func (h *MatchHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participants, err := h.matchService.ListParticipants(r.Context(), matchID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"participants": participants}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// EvaluateParticipant godoc
// @Summary Оценить участника
// @Tags matches
// @Accept json
// @Produce json
// @Param matchID path string true "Match ID"
// @Param userID path string true "User ID"
// @Param body body services.EvaluateParticipantInput true "did_play / attitude"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "MATCH_NOT_FINISHED / INVALID_ATTITUDE"
// @Failure 403 {object} map[string]string "MATCH_LOCKED / INSUFFICIENT_PERMISSIONS"
// @Failure 404 {object} map[string]string "REGISTRATION_NOT_FOUND"
// @Security BearerAuth
// @Router /matches/{matchID}/participants/{userID}/evaluation [patch]
func (h *MatchHandler) EvaluateParticipant(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	userID, err := getIDFromURL(r, "userID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.EvaluateParticipantInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.MatchID = matchID
	input.RequesterID = requesterID
	input.UserID = userID

	reg, err := h.matchService.EvaluateParticipant(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"registration": reg}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
