package services

import (
	"time"

	"github.com/Dosada05/matchmerit/models"
)

// Governance rules operate on the full roster of a group because every
// decision depends on the other owners.

func findMember(members []models.GroupMember, userID string) *models.GroupMember {
	for i := range members {
		if members[i].UserID == userID {
			return &members[i]
		}
	}
	return nil
}

func activeOwners(members []models.GroupMember) []models.GroupMember {
	owners := make([]models.GroupMember, 0)
	for _, m := range members {
		if m.IsActiveOwner() {
			owners = append(owners, m)
		}
	}
	return owners
}

// seniorOwner is the accepted owner with the earliest membership, ties broken by user id.
func seniorOwner(members []models.GroupMember) *models.GroupMember {
	var senior *models.GroupMember
	for i := range members {
		m := &members[i]
		if !m.IsActiveOwner() {
			continue
		}
		if senior == nil ||
			m.CreatedAt.Before(senior.CreatedAt) ||
			(m.CreatedAt.Equal(senior.CreatedAt) && m.UserID < senior.UserID) {
			senior = m
		}
	}
	return senior
}

func isSeniorOwner(members []models.GroupMember, userID string) bool {
	senior := seniorOwner(members)
	return senior != nil && senior.UserID == userID
}

// applyRoleChange validates a role change against the roster and returns the
// updated member. The roster is not modified.
func applyRoleChange(members []models.GroupMember, targetID, requesterID string, newRole models.MemberRole, now time.Time) (*models.GroupMember, error) {
	target := findMember(members, targetID)
	requester := findMember(members, requesterID)
	if target == nil || requester == nil {
		return nil, ErrNotAGroupMember
	}
	if requester.Role != models.RoleOwner {
		return nil, ErrInsufficientPermissions
	}
	if !newRole.IsValid() {
		return nil, ErrInvalidRole.withDetail("unknown role %q", newRole)
	}

	if target.Role == models.RoleOwner && newRole != models.RoleOwner {
		if len(activeOwners(members)) <= 1 {
			return nil, ErrMinimumOwnerRequired
		}
		if !isSeniorOwner(members, requesterID) {
			return nil, ErrOnlyOldestOwnerCanDemoteOwners
		}
	}

	updated := *target
	updated.Role = newRole
	updated.UpdatedAt = now
	updated.StatusUpdatedAt = now
	return &updated, nil
}

// checkLeave validates that userID may leave the group and returns its membership.
func checkLeave(members []models.GroupMember, userID string) (*models.GroupMember, error) {
	leaving := findMember(members, userID)
	if leaving == nil {
		return nil, ErrNotAGroupMember
	}
	if leaving.IsActiveOwner() {
		others := 0
		for _, owner := range activeOwners(members) {
			if owner.UserID != userID {
				others++
			}
		}
		if others == 0 {
			return nil, ErrMinimumOwnerRequired
		}
	}
	return leaving, nil
}

// checkActiveStatusChange guards switching a group's isActive flag.
// Only deactivation is restricted to the senior owner.
func checkActiveStatusChange(group *models.Group, members []models.GroupMember, requesterID string, newIsActive bool) error {
	requester := findMember(members, requesterID)
	if requester == nil {
		return ErrNotAGroupMember
	}
	if requester.Role != models.RoleOwner {
		return ErrInsufficientPermissions
	}
	if group.IsActive && !newIsActive && !isSeniorOwner(members, requesterID) {
		return ErrOnlyOldestOwnerCanDeactivateGroup
	}
	return nil
}

func checkMetadataEdit(members []models.GroupMember, requesterID string) error {
	requester := findMember(members, requesterID)
	if requester == nil {
		return ErrNotAGroupMember
	}
	if requester.Role != models.RoleOwner {
		return ErrOnlyOwnerCanEditMetadata
	}
	return nil
}
