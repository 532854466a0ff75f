package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/matchmerit/models"
	"github.com/Dosada05/matchmerit/repositories"
	"github.com/google/uuid"
)

type GroupService interface {
	CreateGroup(ctx context.Context, input CreateGroupInput) (*models.Group, error)
	GetGroup(ctx context.Context, groupID, requesterID string) (*models.Group, error)
	ListGroups(ctx context.Context, userID string) ([]models.Group, error)
	UpdateGroup(ctx context.Context, input UpdateGroupInput) (*models.Group, error)
	InviteMember(ctx context.Context, input InviteMemberInput) (*models.GroupMember, error)
	ManageInvitation(ctx context.Context, input ManageInvitationInput) (*models.GroupMember, error)
	ChangeMemberRole(ctx context.Context, input ChangeMemberRoleInput) (*models.GroupMember, error)
	LeaveGroup(ctx context.Context, groupID, userID string) error
	ListMembers(ctx context.Context, groupID, requesterID string) ([]models.GroupMember, error)
}

type CreateGroupInput struct {
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	Merit       *models.MeritConfig `json:"merit,omitempty"`
	CreatorID   string              `json:"-"`
}

type UpdateGroupInput struct {
	GroupID     string              `json:"-"`
	RequesterID string              `json:"-"`
	Name        *string             `json:"name,omitempty"`
	Description *string             `json:"description,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
	Merit       *models.MeritConfig `json:"merit,omitempty"`
}

type InviteMemberInput struct {
	GroupID   string `json:"-"`
	InviterID string `json:"-"`
	UserID    string `json:"user_id"`
}

type ManageInvitationInput struct {
	GroupID string              `json:"-"`
	UserID  string              `json:"-"`
	Status  models.MemberStatus `json:"status"`
}

type ChangeMemberRoleInput struct {
	GroupID      string            `json:"-"`
	TargetUserID string            `json:"-"`
	RequesterID  string            `json:"-"`
	Role         models.MemberRole `json:"role"`
}

type groupService struct {
	groupRepo repositories.GroupRepository
	userRepo  repositories.UserRepository
	logger    *slog.Logger
	now       func() time.Time
}

func NewGroupService(groupRepo repositories.GroupRepository, userRepo repositories.UserRepository, logger *slog.Logger) GroupService {
	return &groupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *groupService) loadGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to load group %s: %w", groupID, err)
	}
	return group, nil
}

func (s *groupService) loadRoster(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	members, err := s.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members of group %s: %w", groupID, err)
	}
	return members, nil
}

// loadMember returns nil without error when the user has no membership record.
func (s *groupService) loadMember(ctx context.Context, groupID, userID string) (*models.GroupMember, error) {
	member, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load member %s of group %s: %w", userID, groupID, err)
	}
	return member, nil
}

func (s *groupService) loadActiveUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

// nameTaken reports whether a group other than exceptID already uses name.
func (s *groupService) nameTaken(ctx context.Context, name, exceptID string) (bool, error) {
	existing, err := s.groupRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check group name: %w", err)
	}
	return existing.ID != exceptID, nil
}

func (s *groupService) CreateGroup(ctx context.Context, input CreateGroupInput) (*models.Group, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrRequiredFieldMissing.withDetail("name is required")
	}
	if input.CreatorID == "" {
		return nil, ErrRequiredFieldMissing.withDetail("creator is required")
	}
	cfg := models.DefaultMeritConfig()
	if input.Merit != nil {
		cfg = *input.Merit
		if err := validateMeritConfig(cfg); err != nil {
			return nil, err
		}
	}

	if _, err := s.loadActiveUser(ctx, input.CreatorID); err != nil {
		return nil, err
	}
	taken, err := s.nameTaken(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrGroupNameAlreadyExists
	}

	now := s.now()
	group := &models.Group{
		ID:          uuid.NewString(),
		Name:        name,
		Description: normalizeOptional(input.Description),
		IsActive:    true,
		Merit:       cfg,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	owner := &models.GroupMember{
		GroupID:         group.ID,
		UserID:          input.CreatorID,
		Status:          models.MemberStatusAccepted,
		Role:            models.RoleOwner,
		StatusUpdatedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.groupRepo.CreateWithOwner(ctx, group, owner); err != nil {
		if errors.Is(err, repositories.ErrGroupNameConflict) {
			return nil, ErrGroupNameAlreadyExists
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.logger.InfoContext(ctx, "group created",
		slog.String("group_id", group.ID),
		slog.String("owner_id", owner.UserID),
	)
	return group, nil
}

func (s *groupService) GetGroup(ctx context.Context, groupID, requesterID string) (*models.Group, error) {
	group, err := s.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	member, err := s.loadMember(ctx, groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if !isAcceptedMember(member) {
		return nil, ErrNotAGroupMember
	}
	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context, userID string) ([]models.Group, error) {
	groups, err := s.groupRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups of user %s: %w", userID, err)
	}
	return groups, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, input UpdateGroupInput) (*models.Group, error) {
	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrRequiredFieldMissing.withDetail("name must not be empty")
		}
	}
	if input.Merit != nil {
		if err := validateMeritConfig(*input.Merit); err != nil {
			return nil, err
		}
	}

	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	members, err := s.loadRoster(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	if findMember(members, input.RequesterID) == nil {
		return nil, ErrNotAGroupMember
	}

	if input.Name != nil || input.Description != nil || input.Merit != nil {
		if err := checkMetadataEdit(members, input.RequesterID); err != nil {
			return nil, err
		}
	}
	if input.IsActive != nil {
		if err := checkActiveStatusChange(group, members, input.RequesterID, *input.IsActive); err != nil {
			return nil, err
		}
	}
	if input.Name != nil && name != group.Name {
		taken, err := s.nameTaken(ctx, name, group.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrGroupNameAlreadyExists
		}
	}

	wasActive := group.IsActive
	if input.Name != nil {
		group.Name = name
	}
	if input.Description != nil {
		group.Description = normalizeOptional(input.Description)
	}
	if input.Merit != nil {
		group.Merit = *input.Merit
	}
	if input.IsActive != nil {
		group.IsActive = *input.IsActive
	}
	group.UpdatedAt = s.now()

	if err := s.groupRepo.Update(ctx, group); err != nil {
		switch {
		case errors.Is(err, repositories.ErrGroupNameConflict):
			return nil, ErrGroupNameAlreadyExists
		case errors.Is(err, repositories.ErrGroupNotFound):
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to update group %s: %w", group.ID, err)
	}

	if wasActive != group.IsActive {
		s.logger.InfoContext(ctx, "group active status changed",
			slog.String("group_id", group.ID),
			slog.String("requester_id", input.RequesterID),
			slog.Bool("is_active", group.IsActive),
		)
	}
	return group, nil
}

func (s *groupService) InviteMember(ctx context.Context, input InviteMemberInput) (*models.GroupMember, error) {
	if input.UserID == "" {
		return nil, ErrRequiredFieldMissing.withDetail("user_id is required")
	}
	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	inviter, err := s.loadMember(ctx, group.ID, input.InviterID)
	if err != nil {
		return nil, err
	}
	if !isAcceptedMember(inviter) {
		return nil, ErrNotAGroupMember
	}
	if inviter.Role != models.RoleOwner && inviter.Role != models.RoleManager {
		return nil, ErrInsufficientPermissions
	}
	if _, err := s.loadActiveUser(ctx, input.UserID); err != nil {
		return nil, err
	}
	existing, err := s.loadMember(ctx, group.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyInGroup
	}

	now := s.now()
	member := &models.GroupMember{
		GroupID:         group.ID,
		UserID:          input.UserID,
		Status:          models.MemberStatusInvited,
		Role:            models.RoleMember,
		StatusUpdatedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.groupRepo.AddMember(ctx, member); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMemberConflict):
			return nil, ErrUserAlreadyInGroup
		case errors.Is(err, repositories.ErrMemberUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrGroupNotFound):
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to add member to group %s: %w", group.ID, err)
	}

	s.logger.InfoContext(ctx, "member invited",
		slog.String("group_id", group.ID),
		slog.String("user_id", member.UserID),
		slog.String("inviter_id", input.InviterID),
	)
	return member, nil
}

func (s *groupService) ManageInvitation(ctx context.Context, input ManageInvitationInput) (*models.GroupMember, error) {
	if input.Status != models.MemberStatusAccepted && input.Status != models.MemberStatusRejected {
		return nil, ErrInvalidStatus.withDetail("invitation can only be accepted or rejected, got %q", input.Status)
	}
	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	member, err := s.loadMember(ctx, group.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNoInvitationFound
	}
	if member.Status != models.MemberStatusInvited {
		return nil, ErrAlreadyProcessed
	}

	now := s.now()
	member.Status = input.Status
	member.StatusUpdatedAt = now
	member.UpdatedAt = now
	if err := s.groupRepo.UpdateMember(ctx, member); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrNoInvitationFound
		}
		return nil, fmt.Errorf("failed to update invitation of user %s: %w", member.UserID, err)
	}
	return member, nil
}

func (s *groupService) ChangeMemberRole(ctx context.Context, input ChangeMemberRoleInput) (*models.GroupMember, error) {
	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	members, err := s.loadRoster(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	updated, err := applyRoleChange(members, input.TargetUserID, input.RequesterID, input.Role, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.groupRepo.UpdateMember(ctx, updated); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrNotAGroupMember
		}
		return nil, fmt.Errorf("failed to update role of user %s: %w", updated.UserID, err)
	}

	s.logger.InfoContext(ctx, "member role changed",
		slog.String("group_id", group.ID),
		slog.String("user_id", updated.UserID),
		slog.String("requester_id", input.RequesterID),
		slog.String("role", string(updated.Role)),
	)
	return updated, nil
}

func (s *groupService) LeaveGroup(ctx context.Context, groupID, userID string) error {
	group, err := s.loadGroup(ctx, groupID)
	if err != nil {
		return err
	}
	members, err := s.loadRoster(ctx, group.ID)
	if err != nil {
		return err
	}
	if _, err := checkLeave(members, userID); err != nil {
		return err
	}
	if err := s.groupRepo.RemoveMember(ctx, group.ID, userID); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return ErrNotAGroupMember
		}
		return fmt.Errorf("failed to remove user %s from group %s: %w", userID, group.ID, err)
	}

	s.logger.InfoContext(ctx, "member left group",
		slog.String("group_id", group.ID),
		slog.String("user_id", userID),
	)
	return nil
}

func (s *groupService) ListMembers(ctx context.Context, groupID, requesterID string) ([]models.GroupMember, error) {
	if _, err := s.loadGroup(ctx, groupID); err != nil {
		return nil, err
	}
	members, err := s.loadRoster(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !isAcceptedMember(findMember(members, requesterID)) {
		return nil, ErrNotAGroupMember
	}
	return members, nil
}
