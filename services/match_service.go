package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/matchmerit/models"
	"github.com/Dosada05/matchmerit/repositories"
	"github.com/Dosada05/matchmerit/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	participantsTimeout = 10 * time.Second
	sealAttempts        = 3
)

var (
	defaultTeamAColor = models.RGB{R: 1, G: 1, B: 1}
	defaultTeamBColor = models.RGB{R: 0, G: 0, B: 0}
)

type MatchService interface {
	CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	UpdateMatch(ctx context.Context, input UpdateMatchInput) (*models.Match, error)
	JoinMatch(ctx context.Context, matchID, userID string) (*models.MatchRegistration, error)
	// LeaveMatch reports whether the withdrawal was recorded as a late cancellation.
	LeaveMatch(ctx context.Context, matchID, userID string) (bool, error)
	UpdateMatchStatus(ctx context.Context, input UpdateMatchStatusInput) (*models.Match, error)
	LockMatch(ctx context.Context, matchID, requesterID string) (*models.Match, error)
	EvaluateParticipant(ctx context.Context, input EvaluateParticipantInput) (*models.MatchRegistration, error)
	ListParticipants(ctx context.Context, matchID, requesterID string) ([]RankedParticipant, error)
	ListGroupMatches(ctx context.Context, groupID, requesterID string) ([]models.Match, error)
}

type CreateMatchInput struct {
	GroupID         string       `json:"group_id"`
	RequesterID     string       `json:"-"`
	Sport           models.Sport `json:"sport"`
	ScheduledAt     time.Time    `json:"scheduled_at"`
	DurationMinutes int          `json:"duration_minutes"`
	Capacity        int          `json:"capacity"`
	Location        string       `json:"location"`
	TeamAColor      *models.RGB  `json:"team_a_color,omitempty"`
	TeamBColor      *models.RGB  `json:"team_b_color,omitempty"`
}

type UpdateMatchInput struct {
	MatchID         string        `json:"-"`
	RequesterID     string        `json:"-"`
	Sport           *models.Sport `json:"sport,omitempty"`
	ScheduledAt     *time.Time    `json:"scheduled_at,omitempty"`
	DurationMinutes *int          `json:"duration_minutes,omitempty"`
	Capacity        *int          `json:"capacity,omitempty"`
	Location        *string       `json:"location,omitempty"`
	TeamAColor      *models.RGB   `json:"team_a_color,omitempty"`
	TeamBColor      *models.RGB   `json:"team_b_color,omitempty"`
}

type UpdateMatchStatusInput struct {
	MatchID     string             `json:"-"`
	RequesterID string             `json:"-"`
	Status      models.MatchStatus `json:"status"`
}

type EvaluateParticipantInput struct {
	MatchID     string           `json:"-"`
	RequesterID string           `json:"-"`
	UserID      string           `json:"-"`
	DidPlay     *bool            `json:"did_play,omitempty"`
	Attitude    *models.Attitude `json:"attitude,omitempty"`
}

// matchSheet is the archived snapshot of a locked match.
type matchSheet struct {
	Match        *models.Match       `json:"match"`
	Participants []RankedParticipant `json:"participants"`
	ArchivedAt   time.Time           `json:"archived_at"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	groupRepo repositories.GroupRepository
	ranker    *ParticipantRanker
	archive   storage.FileUploader
	logger    *slog.Logger
	now       func() time.Time

	participants singleflight.Group
}

// NewMatchService wires the lifecycle use-cases. archive may be nil, in which
// case locked matches are not exported.
func NewMatchService(
	matchRepo repositories.MatchRepository,
	groupRepo repositories.GroupRepository,
	archive storage.FileUploader,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		groupRepo: groupRepo,
		ranker:    NewParticipantRanker(matchRepo, NewMeritCalculator(matchRepo)),
		archive:   archive,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *matchService) loadMatch(ctx context.Context, matchID string) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %s: %w", matchID, err)
	}
	return match, nil
}

func (s *matchService) loadGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to load group %s: %w", groupID, err)
	}
	return group, nil
}

func (s *matchService) loadMember(ctx context.Context, groupID, userID string) (*models.GroupMember, error) {
	member, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load member %s of group %s: %w", userID, groupID, err)
	}
	return member, nil
}

func (s *matchService) requireMember(ctx context.Context, groupID, userID string) error {
	member, err := s.loadMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !isAcceptedMember(member) {
		return ErrNotAGroupMember
	}
	return nil
}

func (s *matchService) requireOwner(ctx context.Context, groupID, userID string) error {
	member, err := s.loadMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if member == nil || member.Role != models.RoleOwner {
		return ErrInsufficientPermissions
	}
	return nil
}

func validateMatchFields(sport models.Sport, durationMinutes, capacity int, teamA, teamB *models.RGB) error {
	if !sport.IsValid() {
		return ErrInvalidSport.withDetail("unknown sport %q", sport)
	}
	if durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if err := validateColor(teamA); err != nil {
		return err
	}
	return validateColor(teamB)
}

func (s *matchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	location := strings.TrimSpace(input.Location)
	if input.GroupID == "" || input.ScheduledAt.IsZero() || location == "" {
		return nil, ErrRequiredFieldMissing.withDetail("group_id, scheduled_at and location are required")
	}
	if err := validateMatchFields(input.Sport, input.DurationMinutes, input.Capacity, input.TeamAColor, input.TeamBColor); err != nil {
		return nil, err
	}

	group, err := s.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	member, err := s.loadMember(ctx, group.ID, input.RequesterID)
	if err != nil {
		return nil, err
	}
	if !isAcceptedMember(member) {
		return nil, ErrNotAGroupMember
	}
	if member.Role != models.RoleOwner {
		return nil, ErrInsufficientPermissions
	}

	now := s.now()
	match := &models.Match{
		ID:              uuid.NewString(),
		GroupID:         group.ID,
		Sport:           input.Sport,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		Capacity:        input.Capacity,
		Location:        location,
		Status:          models.MatchStatusPlanning,
		IsLocked:        false,
		TeamAColor:      defaultTeamAColor,
		TeamBColor:      defaultTeamBColor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.TeamAColor != nil {
		match.TeamAColor = *input.TeamAColor
	}
	if input.TeamBColor != nil {
		match.TeamBColor = *input.TeamBColor
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchGroupInvalid) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match created",
		slog.String("match_id", match.ID),
		slog.String("group_id", match.GroupID),
		slog.Time("scheduled_at", match.ScheduledAt),
	)
	return match, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, input UpdateMatchInput) (*models.Match, error) {
	match, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	if match.IsLocked {
		return nil, ErrMatchLocked
	}
	if err := s.requireOwner(ctx, match.GroupID, input.RequesterID); err != nil {
		return nil, err
	}

	if input.Sport != nil {
		match.Sport = *input.Sport
	}
	if input.ScheduledAt != nil {
		if input.ScheduledAt.IsZero() {
			return nil, ErrRequiredFieldMissing.withDetail("scheduled_at must not be empty")
		}
		match.ScheduledAt = *input.ScheduledAt
	}
	if input.DurationMinutes != nil {
		match.DurationMinutes = *input.DurationMinutes
	}
	if input.Capacity != nil {
		match.Capacity = *input.Capacity
	}
	if input.Location != nil {
		location := strings.TrimSpace(*input.Location)
		if location == "" {
			return nil, ErrRequiredFieldMissing.withDetail("location must not be empty")
		}
		match.Location = location
	}
	if err := validateMatchFields(match.Sport, match.DurationMinutes, match.Capacity, input.TeamAColor, input.TeamBColor); err != nil {
		return nil, err
	}
	if input.TeamAColor != nil {
		match.TeamAColor = *input.TeamAColor
	}
	if input.TeamBColor != nil {
		match.TeamBColor = *input.TeamBColor
	}
	match.UpdatedAt = s.now()

	if err := s.matchRepo.Update(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match %s: %w", match.ID, err)
	}
	return match, nil
}

func (s *matchService) JoinMatch(ctx context.Context, matchID, userID string) (*models.MatchRegistration, error) {
	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != models.MatchStatusPlanning {
		return nil, ErrMatchNotPlanning
	}
	if err := s.requireMember(ctx, match.GroupID, userID); err != nil {
		return nil, err
	}

	if _, err := s.matchRepo.GetRegistration(ctx, match.ID, userID); err == nil {
		return nil, ErrAlreadyJoined
	} else if !errors.Is(err, repositories.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("failed to check registration: %w", err)
	}

	reg := &models.MatchRegistration{
		MatchID:      match.ID,
		UserID:       userID,
		RegisteredAt: s.now(),
		Attitude:     models.AttitudeNeutral,
	}
	if err := s.matchRepo.AddRegistration(ctx, reg); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRegistrationConflict):
			return nil, ErrAlreadyJoined
		case errors.Is(err, repositories.ErrMatchNotOpen):
			return nil, ErrMatchNotPlanning
		case errors.Is(err, repositories.ErrMatchNotFound):
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to register user %s for match %s: %w", userID, match.ID, err)
	}
	return reg, nil
}

func (s *matchService) LeaveMatch(ctx context.Context, matchID, userID string) (bool, error) {
	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return false, err
	}
	if match.Status != models.MatchStatusPlanning {
		return false, ErrMatchNotPlanning
	}
	reg, err := s.matchRepo.GetRegistration(ctx, match.ID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return false, ErrNotRegistered
		}
		return false, fmt.Errorf("failed to load registration: %w", err)
	}
	group, err := s.loadGroup(ctx, match.GroupID)
	if err != nil {
		return false, err
	}

	limit := match.ScheduledAt.Add(-time.Duration(group.Merit.HoursBeforePenalty) * time.Hour)
	if s.now().After(limit) {
		reg.IsLateCancellation = true
		if err := s.matchRepo.UpdateRegistration(ctx, reg); err != nil {
			if errors.Is(err, repositories.ErrRegistrationNotFound) {
				return false, ErrNotRegistered
			}
			return false, fmt.Errorf("failed to record late cancellation: %w", err)
		}
		s.logger.InfoContext(ctx, "late cancellation recorded",
			slog.String("match_id", match.ID),
			slog.String("user_id", userID),
		)
		return true, nil
	}

	if err := s.matchRepo.RemoveRegistration(ctx, match.ID, userID); err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return false, ErrNotRegistered
		}
		return false, fmt.Errorf("failed to remove registration: %w", err)
	}
	return false, nil
}

func (s *matchService) UpdateMatchStatus(ctx context.Context, input UpdateMatchStatusInput) (*models.Match, error) {
	match, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	if match.IsLocked {
		return nil, ErrMatchLocked
	}
	if err := s.requireOwner(ctx, match.GroupID, input.RequesterID); err != nil {
		return nil, err
	}
	if !input.Status.IsValid() || !isValidStatusTransition(match.Status, input.Status) {
		return nil, ErrInvalidTransition.withDetail("cannot move match from %q to %q", match.Status, input.Status)
	}
	if match.Status == input.Status {
		return match, nil
	}

	previous := match.Status
	match.Status = input.Status
	match.UpdatedAt = s.now()

	if input.Status == models.MatchStatusPlaying {
		group, err := s.loadGroup(ctx, match.GroupID)
		if err != nil {
			return nil, err
		}
		ranked, err := s.rankAndSeal(ctx, match, group.Merit)
		if err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "match started, reserves sealed",
			slog.String("match_id", match.ID),
			slog.Int("participants", len(ranked)),
			slog.Int("capacity", match.Capacity),
		)
		return match, nil
	}

	if err := s.matchRepo.Update(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update status of match %s: %w", match.ID, err)
	}
	s.logger.InfoContext(ctx, "match status changed",
		slog.String("match_id", match.ID),
		slog.String("from", string(previous)),
		slog.String("to", string(match.Status)),
	)
	return match, nil
}

// rankAndSeal ranks the match and persists the reserve flags together with
// the new status, re-ranking when registrations changed in between.
func (s *matchService) rankAndSeal(ctx context.Context, match *models.Match, cfg models.MeritConfig) ([]RankedParticipant, error) {
	for attempt := 1; ; attempt++ {
		ranked, err := s.ranker.Rank(ctx, match, cfg)
		if err != nil {
			return nil, err
		}
		err = s.matchRepo.UpdateWithRegistrations(ctx, match, sealReserves(ranked))
		switch {
		case err == nil:
			return ranked, nil
		case errors.Is(err, repositories.ErrRegistrationsChanged) && attempt < sealAttempts:
			s.logger.WarnContext(ctx, "registrations changed while sealing, re-ranking",
				slog.String("match_id", match.ID),
				slog.Int("attempt", attempt),
			)
			continue
		case errors.Is(err, repositories.ErrMatchNotOpen):
			return nil, ErrInvalidTransition.withDetail("match %s already left planning", match.ID)
		case errors.Is(err, repositories.ErrMatchNotFound):
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to seal reserves of match %s: %w", match.ID, err)
	}
}

func (s *matchService) LockMatch(ctx context.Context, matchID, requesterID string) (*models.Match, error) {
	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, match.GroupID, requesterID); err != nil {
		return nil, err
	}
	if match.Status != models.MatchStatusFinished {
		return nil, ErrMatchNotFinished
	}
	if match.IsLocked {
		return match, nil
	}

	match.IsLocked = true
	match.UpdatedAt = s.now()
	if err := s.matchRepo.Update(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to lock match %s: %w", match.ID, err)
	}
	s.logger.InfoContext(ctx, "match locked", slog.String("match_id", match.ID))

	s.archiveMatch(ctx, match)
	return match, nil
}

// archiveMatch uploads the final sheet of a locked match. Failures are logged only.
func (s *matchService) archiveMatch(ctx context.Context, match *models.Match) {
	if s.archive == nil {
		return
	}
	logger := s.logger.With(slog.String("match_id", match.ID))

	group, err := s.loadGroup(ctx, match.GroupID)
	if err != nil {
		logger.ErrorContext(ctx, "archive: failed to load group", slog.Any("error", err))
		return
	}
	ranked, err := s.ranker.Rank(ctx, match, group.Merit)
	if err != nil {
		logger.ErrorContext(ctx, "archive: failed to rank participants", slog.Any("error", err))
		return
	}
	data, err := json.Marshal(matchSheet{Match: match, Participants: ranked, ArchivedAt: s.now()})
	if err != nil {
		logger.ErrorContext(ctx, "archive: failed to encode sheet", slog.Any("error", err))
		return
	}

	key := storage.MatchSheetKey(match.GroupID, match.ID)
	result, err := s.archive.Upload(ctx, key, storage.ContentTypeJSON, bytes.NewReader(data))
	if err != nil {
		logger.ErrorContext(ctx, "archive: upload failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	logger.InfoContext(ctx, "match sheet archived", slog.String("location", result.Location))
}

func (s *matchService) EvaluateParticipant(ctx context.Context, input EvaluateParticipantInput) (*models.MatchRegistration, error) {
	match, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	if match.IsLocked {
		return nil, ErrMatchLocked
	}
	if match.Status != models.MatchStatusFinished {
		return nil, ErrMatchNotFinished
	}
	if err := s.requireOwner(ctx, match.GroupID, input.RequesterID); err != nil {
		return nil, err
	}
	if input.Attitude != nil && !input.Attitude.IsValid() {
		return nil, ErrInvalidAttitude.withDetail("unknown attitude %q", *input.Attitude)
	}

	reg, err := s.matchRepo.GetRegistration(ctx, match.ID, input.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to load registration: %w", err)
	}
	if input.DidPlay != nil {
		reg.DidPlay = *input.DidPlay
	}
	if input.Attitude != nil {
		reg.Attitude = *input.Attitude
	}
	if err := s.matchRepo.UpdateRegistration(ctx, reg); err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return reg, nil
}

func (s *matchService) ListParticipants(ctx context.Context, matchID, requesterID string) ([]RankedParticipant, error) {
	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, match.GroupID, requesterID); err != nil {
		return nil, err
	}

	// The flight outlives the cancellation of any single caller.
	ch := s.participants.DoChan(match.ID, func() (interface{}, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), participantsTimeout)
		defer cancel()
		group, err := s.loadGroup(flightCtx, match.GroupID)
		if err != nil {
			return nil, err
		}
		return s.ranker.Rank(flightCtx, match, group.Merit)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	shared := res.Val.([]RankedParticipant)
	ranked := make([]RankedParticipant, len(shared))
	copy(ranked, shared)
	return ranked, nil
}

func (s *matchService) ListGroupMatches(ctx context.Context, groupID, requesterID string) ([]models.Match, error) {
	group, err := s.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, group.ID, requesterID); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByGroupID(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of group %s: %w", group.ID, err)
	}
	return matches, nil
}
