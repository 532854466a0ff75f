package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/matchmerit/services"
	"github.com/google/uuid"
)

type GroupHandler struct {
	groupService services.GroupService
	matchService services.MatchService
}

func NewGroupHandler(gs services.GroupService, ms services.MatchService) *GroupHandler {
	return &GroupHandler{
		groupService: gs,
		matchService: ms,
	}
}

// CreateGroup godoc
// @Summary Создать группу
// @Tags groups
// @Description Создатель становится владельцем группы.
// @Accept json
// @Produce json
// @Param body body services.CreateGroupInput true "Группа"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "REQUIRED_FIELD_MISSING / INVALID_MERIT_CONFIG"
// @Failure 409 {object} map[string]string "GROUP_NAME_ALREADY_EXISTS"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input services.CreateGroupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.CreatorID = userID

	group, err := h.groupService.CreateGroup(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"group": group}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListGroups godoc
// @Summary Группы текущего пользователя
// @Tags groups
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	groups, err := h.groupService.ListGroups(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetGroup godoc
// @Summary Получить группу
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "NOT_A_GROUP_MEMBER"
// @Failure 404 {object} map[string]string "GROUP_NOT_FOUND"
// @Security BearerAuth
// @Router /groups/{groupID} [get]
func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	group, err := h.groupService.GetGroup(r.Context(), groupID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"group": group}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateGroup godoc
// @Summary Изменить группу
// @Tags groups
// @Description Метаданные меняет владелец; деактивирует только старший владелец.
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param body body services.UpdateGroupInput true "Изменяемые поля"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "ONLY_OWNER_CAN_EDIT_METADATA / ONLY_OLDEST_OWNER_CAN_DEACTIVATE_GROUP"
// @Security BearerAuth
// @Router /groups/{groupID} [patch]
func (h *GroupHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateGroupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.GroupID = groupID
	input.RequesterID = userID

	group, err := h.groupService.UpdateGroup(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"group": group}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// InviteMember godoc
// @Summary Пригласить пользователя в группу
// @Tags groups
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param body body services.InviteMemberInput true "Приглашаемый пользователь"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "INSUFFICIENT_PERMISSIONS / USER_INACTIVE"
// @Failure 409 {object} map[string]string "USER_ALREADY_IN_GROUP"
// @Security BearerAuth
// @Router /groups/{groupID}/members [post]
func (h *GroupHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.InviteMemberInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := uuid.Parse(input.UserID); err != nil {
		badRequestResponse(w, r, errors.New("user_id must be a UUID"))
		return
	}
	input.GroupID = groupID
	input.InviterID = userID

	member, err := h.groupService.InviteMember(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"member": member}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ManageInvitation godoc
// @Summary Принять или отклонить приглашение
// @Tags groups
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param body body services.ManageInvitationInput true "accepted | rejected"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "NO_INVITATION_FOUND"
// @Failure 409 {object} map[string]string "ALREADY_PROCESSED"
// @Security BearerAuth
// @Router /groups/{groupID}/invitations [patch]
func (h *GroupHandler) ManageInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ManageInvitationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.GroupID = groupID
	input.UserID = userID

	member, err := h.groupService.ManageInvitation(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"member": member}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ChangeMemberRole godoc
// @Summary Изменить роль участника
// @Tags groups
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param userID path string true "User ID"
// @Param body body services.ChangeMemberRoleInput true "owner | manager | member"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "INVALID_ROLE / MINIMUM_OWNER_REQUIRED"
// @Failure 403 {object} map[string]string "INSUFFICIENT_PERMISSIONS / ONLY_OLDEST_OWNER_CAN_DEMOTE_OWNERS"
// @Security BearerAuth
// @Router /groups/{groupID}/members/{userID}/role [patch]
func (h *GroupHandler) ChangeMemberRole(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	targetID, err := getIDFromURL(r, "userID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ChangeMemberRoleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.GroupID = groupID
	input.TargetUserID = targetID
	input.RequesterID = requesterID

	member, err := h.groupService.ChangeMemberRole(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"member": member}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LeaveGroup godoc
// @Summary Покинуть группу
// @Tags groups
// @Param groupID path string true "Group ID"
// @Success 204
// @Failure 400 {object} map[string]string "MINIMUM_OWNER_REQUIRED"
// @Security BearerAuth
// @Router /groups/{groupID}/members/me [delete]
func (h *GroupHandler) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.groupService.LeaveGroup(r.Context(), groupID, userID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMembers godoc
// @Summary Участники группы
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /groups/{groupID}/members [get]
func (h *GroupHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	members, err := h.groupService.ListMembers(r.Context(), groupID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"members": members}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListGroupMatches godoc
// @Summary Матчи группы
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /groups/{groupID}/matches [get]
func (h *GroupHandler) ListGroupMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.ListGroupMatches(r.Context(), groupID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
