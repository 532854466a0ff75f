package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/matchmerit/models"
	"github.com/Dosada05/matchmerit/repositories"
)

// ComputeMerit folds a user's registrations from the merit window into a score.
// A late cancellation earns only the late-cancel penalty for that match.
func ComputeMerit(history []models.MatchRegistration, cfg models.MeritConfig) int {
	score := 0
	for _, reg := range history {
		switch {
		case reg.IsLateCancellation:
			score += cfg.PointsLateCancel
		case reg.DidPlay:
			score += cfg.PointsPlayed
			switch reg.Attitude {
			case models.AttitudePositive:
				score += cfg.PointsPositiveAttitude
			case models.AttitudeNegative:
				score += cfg.PointsNegativeAttitude
			}
		case reg.IsReserve:
			score += cfg.PointsReserve
		default:
			score += cfg.PointsNoShow
		}
	}
	return score
}

// MeritCalculator loads a user's history from the match store and scores it.
type MeritCalculator struct {
	matchRepo repositories.MatchRepository
}

func NewMeritCalculator(matchRepo repositories.MatchRepository) *MeritCalculator {
	return &MeritCalculator{matchRepo: matchRepo}
}

func (c *MeritCalculator) Compute(ctx context.Context, userID string, pastMatchIDs []string, cfg models.MeritConfig) (int, error) {
	if len(pastMatchIDs) == 0 {
		return 0, nil
	}
	history, err := c.matchRepo.ListUserRegistrations(ctx, userID, pastMatchIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to load history of user %s: %w", userID, err)
	}
	return ComputeMerit(history, cfg), nil
}

// meritWindow returns the ids of the group's most recent finished matches,
// excluding the match being ranked.
func meritWindow(ctx context.Context, matchRepo repositories.MatchRepository, groupID, currentMatchID string, limit int) ([]string, error) {
	past, err := matchRepo.ListLastFinished(ctx, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load finished matches of group %s: %w", groupID, err)
	}
	ids := make([]string, 0, len(past))
	for _, m := range past {
		if m.ID == currentMatchID {
			continue
		}
		ids = append(ids, m.ID)
	}
	return ids, nil
}
