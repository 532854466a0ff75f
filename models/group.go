package models

import "time"

type MemberStatus string

const (
	MemberStatusInvited  MemberStatus = "invited"
	MemberStatusAccepted MemberStatus = "accepted"
	MemberStatusRejected MemberStatus = "rejected"
	MemberStatusDisabled MemberStatus = "disabled"
)

type MemberRole string

const (
	RoleOwner   MemberRole = "owner"
	RoleManager MemberRole = "manager"
	RoleMember  MemberRole = "member"
)

func (r MemberRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleMember:
		return true
	}
	return false
}

// MeritConfig задаёт веса формулы рейтинга группы.
type MeritConfig struct {
	MaxMatchesConsidered   int `json:"max_matches_considered"`
	PointsPlayed           int `json:"points_played"`
	PointsNoShow           int `json:"points_no_show"`
	PointsReserve          int `json:"points_reserve"`
	PointsPositiveAttitude int `json:"points_positive_attitude"`
	PointsNegativeAttitude int `json:"points_negative_attitude"`
	HoursBeforePenalty     int `json:"hours_before_penalty"`
	PointsLateCancel       int `json:"points_late_cancel"`
}

func DefaultMeritConfig() MeritConfig {
	return MeritConfig{
		MaxMatchesConsidered:   10,
		PointsPlayed:           3,
		PointsNoShow:           -5,
		PointsReserve:          1,
		PointsPositiveAttitude: 1,
		PointsNegativeAttitude: -1,
		HoursBeforePenalty:     12,
		PointsLateCancel:       -2,
	}
}

type Group struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	IsActive    bool        `json:"is_active"`
	Merit       MeritConfig `json:"merit"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type GroupMember struct {
	GroupID         string       `json:"group_id"`
	UserID          string       `json:"user_id"`
	Status          MemberStatus `json:"status"`
	Role            MemberRole   `json:"role"`
	StatusUpdatedAt time.Time    `json:"status_updated_at"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (m *GroupMember) IsActiveOwner() bool {
	return m.Role == RoleOwner && m.Status == MemberStatusAccepted
}
