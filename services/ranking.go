package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Dosada05/matchmerit/models"
	"github.com/Dosada05/matchmerit/repositories"
)

// RankedParticipant is a registration annotated with its live merit score
// and the reserve flag derived from its position.
type RankedParticipant struct {
	models.MatchRegistration
	Score               int  `json:"score"`
	Position            int  `json:"position"`
	IsReserveCalculated bool `json:"is_reserve_calculated"`
}

// RankRegistrations orders registrations by score (desc) then registration
// time (asc) and pushes late cancellations to the end keeping their relative
// order. Positions at or beyond capacity are reserve; late cancellations are
// always reserve.
func RankRegistrations(regs []models.MatchRegistration, scores map[string]int, capacity int) []RankedParticipant {
	ranked := make([]RankedParticipant, len(regs))
	for i, reg := range regs {
		ranked[i] = RankedParticipant{MatchRegistration: reg, Score: scores[reg.UserID]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.RegisteredAt.Equal(b.RegisteredAt) {
			return a.RegisteredAt.Before(b.RegisteredAt)
		}
		return a.UserID < b.UserID
	})

	ordered := make([]RankedParticipant, 0, len(ranked))
	late := make([]RankedParticipant, 0)
	for _, p := range ranked {
		if p.IsLateCancellation {
			late = append(late, p)
			continue
		}
		ordered = append(ordered, p)
	}
	ordered = append(ordered, late...)

	for i := range ordered {
		ordered[i].Position = i + 1
		ordered[i].IsReserveCalculated = ordered[i].IsLateCancellation || i >= capacity
	}
	return ordered
}

// ParticipantRanker scores the registrations of a match against the group's
// merit window and ranks them.
type ParticipantRanker struct {
	matchRepo repositories.MatchRepository
	merit     *MeritCalculator
}

func NewParticipantRanker(matchRepo repositories.MatchRepository, merit *MeritCalculator) *ParticipantRanker {
	return &ParticipantRanker{matchRepo: matchRepo, merit: merit}
}

// Rank never writes; sealing persists its output separately.
func (r *ParticipantRanker) Rank(ctx context.Context, match *models.Match, cfg models.MeritConfig) ([]RankedParticipant, error) {
	regs, err := r.matchRepo.ListRegistrations(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations of match %s: %w", match.ID, err)
	}
	window, err := meritWindow(ctx, r.matchRepo, match.GroupID, match.ID, cfg.MaxMatchesConsidered)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]int, len(regs))
	for _, reg := range regs {
		score, err := r.merit.Compute(ctx, reg.UserID, window, cfg)
		if err != nil {
			return nil, err
		}
		scores[reg.UserID] = score
	}
	return RankRegistrations(regs, scores, match.Capacity), nil
}
