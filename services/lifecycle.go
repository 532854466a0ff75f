package services

import "github.com/Dosada05/matchmerit/models"

var allowedMatchTransitions = map[models.MatchStatus][]models.MatchStatus{
	models.MatchStatusPlanning:  {models.MatchStatusPlaying, models.MatchStatusCancelled},
	models.MatchStatusPlaying:   {models.MatchStatusFinished, models.MatchStatusCancelled},
	models.MatchStatusFinished:  {},
	models.MatchStatusCancelled: {},
}

func isValidStatusTransition(current, next models.MatchStatus) bool {
	if current == next {
		return true
	}
	for _, allowedNextStatus := range allowedMatchTransitions[current] {
		if next == allowedNextStatus {
			return true
		}
	}
	return false
}

// sealReserves copies the ranker's reserve decision onto the stored registrations.
func sealReserves(ranked []RankedParticipant) []models.MatchRegistration {
	sealed := make([]models.MatchRegistration, len(ranked))
	for i, p := range ranked {
		reg := p.MatchRegistration
		reg.IsReserve = p.IsReserveCalculated
		sealed[i] = reg
	}
	return sealed
}
