package models

import "time"

type MatchStatus string

const (
	MatchStatusPlanning  MatchStatus = "planning"
	MatchStatusPlaying   MatchStatus = "playing"
	MatchStatusFinished  MatchStatus = "finished"
	MatchStatusCancelled MatchStatus = "cancelled"
)

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPlanning, MatchStatusPlaying, MatchStatusFinished, MatchStatusCancelled:
		return true
	}
	return false
}

type Sport string

const (
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
	SportPadel      Sport = "padel"
)

func (s Sport) IsValid() bool {
	switch s {
	case SportFootball, SportBasketball, SportPadel:
		return true
	}
	return false
}

type Attitude string

const (
	AttitudePositive Attitude = "positive"
	AttitudeNegative Attitude = "negative"
	AttitudeNeutral  Attitude = "neutral"
)

func (a Attitude) IsValid() bool {
	switch a {
	case AttitudePositive, AttitudeNegative, AttitudeNeutral:
		return true
	}
	return false
}

type Match struct {
	ID              string      `json:"id"`
	GroupID         string      `json:"group_id"`
	Sport           Sport       `json:"sport"`
	ScheduledAt     time.Time   `json:"scheduled_at"`
	DurationMinutes int         `json:"duration_minutes"`
	Capacity        int         `json:"capacity"`
	Location        string      `json:"location"`
	Status          MatchStatus `json:"status"`
	IsLocked        bool        `json:"is_locked"`
	TeamAColor      RGB         `json:"team_a_color"`
	TeamBColor      RGB         `json:"team_b_color"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type MatchRegistration struct {
	MatchID            string    `json:"match_id"`
	UserID             string    `json:"user_id"`
	RegisteredAt       time.Time `json:"registered_at"`
	IsReserve          bool      `json:"is_reserve"`
	DidPlay            bool      `json:"did_play"`
	Attitude           Attitude  `json:"attitude"`
	IsLateCancellation bool      `json:"is_late_cancellation"`
}
