package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Dosada05/matchmerit/models"
	"github.com/Dosada05/matchmerit/repositories"
	"github.com/Dosada05/matchmerit/storage"
)

var t0 = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fixture struct {
	users    repositories.UserRepository
	groups   repositories.GroupRepository
	matches  repositories.MatchRepository
	clock    *fakeClock
	groupSvc *groupService
	matchSvc *matchService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithArchive(t, nil)
}

func newFixtureWithArchive(t *testing.T, archive storage.FileUploader) *fixture {
	t.Helper()
	f := &fixture{
		users:   repositories.NewMemoryUserRepository(),
		groups:  repositories.NewMemoryGroupRepository(),
		matches: repositories.NewMemoryMatchRepository(),
		clock:   &fakeClock{now: t0},
	}
	f.groupSvc = NewGroupService(f.groups, f.users, discardLogger()).(*groupService)
	f.groupSvc.now = f.clock.Now
	f.matchSvc = NewMatchService(f.matches, f.groups, archive, discardLogger()).(*matchService)
	f.matchSvc.now = f.clock.Now
	return f
}

func (f *fixture) addUser(t *testing.T, id string, active bool) {
	t.Helper()
	u := &models.User{ID: id, Username: id, Name: id, Email: id + "@example.com", IsActive: active}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", id, err)
	}
}

func (f *fixture) addGroup(t *testing.T, id string, cfg models.MeritConfig) *models.Group {
	t.Helper()
	g := &models.Group{ID: id, Name: "group " + id, IsActive: true, Merit: cfg, CreatedAt: t0, UpdatedAt: t0}
	if err := f.groups.Create(context.Background(), g); err != nil {
		t.Fatalf("create group %s: %v", id, err)
	}
	return g
}

func (f *fixture) addMember(t *testing.T, groupID, userID string, role models.MemberRole, status models.MemberStatus, createdAt time.Time) {
	t.Helper()
	m := &models.GroupMember{
		GroupID:         groupID,
		UserID:          userID,
		Role:            role,
		Status:          status,
		StatusUpdatedAt: createdAt,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	if err := f.groups.AddMember(context.Background(), m); err != nil {
		t.Fatalf("add member %s to %s: %v", userID, groupID, err)
	}
}

func (f *fixture) addMatch(t *testing.T, id, groupID string, status models.MatchStatus, scheduledAt time.Time, capacity int) *models.Match {
	t.Helper()
	m := &models.Match{
		ID:              id,
		GroupID:         groupID,
		Sport:           models.SportFootball,
		ScheduledAt:     scheduledAt,
		DurationMinutes: 60,
		Capacity:        capacity,
		Location:        "Pitch 1",
		Status:          status,
		CreatedAt:       t0,
		UpdatedAt:       t0,
	}
	if err := f.matches.Create(context.Background(), m); err != nil {
		t.Fatalf("create match %s: %v", id, err)
	}
	return m
}

func (f *fixture) register(t *testing.T, matchID, userID string, registeredAt time.Time, mutate func(*models.MatchRegistration)) {
	t.Helper()
	reg := &models.MatchRegistration{MatchID: matchID, UserID: userID, RegisteredAt: registeredAt, Attitude: models.AttitudeNeutral}
	if mutate != nil {
		mutate(reg)
	}
	// Registrations only open in planning, so history is seeded by reopening the match.
	ctx := context.Background()
	m, err := f.matches.GetByID(ctx, matchID)
	if err != nil {
		t.Fatalf("register: get match %s: %v", matchID, err)
	}
	status := m.Status
	if status != models.MatchStatusPlanning {
		m.Status = models.MatchStatusPlanning
		if err := f.matches.Update(ctx, m); err != nil {
			t.Fatalf("register: reopen match %s: %v", matchID, err)
		}
	}
	if err := f.matches.AddRegistration(ctx, reg); err != nil {
		t.Fatalf("register %s for %s: %v", userID, matchID, err)
	}
	if status != models.MatchStatusPlanning {
		m.Status = status
		if err := f.matches.Update(ctx, m); err != nil {
			t.Fatalf("register: restore match %s: %v", matchID, err)
		}
	}
}

func (f *fixture) member(t *testing.T, groupID, userID string) *models.GroupMember {
	t.Helper()
	m, err := f.groups.GetMember(context.Background(), groupID, userID)
	if err != nil {
		t.Fatalf("get member %s of %s: %v", userID, groupID, err)
	}
	return m
}

func (f *fixture) registration(t *testing.T, matchID, userID string) *models.MatchRegistration {
	t.Helper()
	reg, err := f.matches.GetRegistration(context.Background(), matchID, userID)
	if err != nil {
		t.Fatalf("get registration %s of %s: %v", userID, matchID, err)
	}
	return reg
}

func played(r *models.MatchRegistration) { r.DidPlay = true }
func reserve(r *models.MatchRegistration) { r.IsReserve = true }
func lateCancel(r *models.MatchRegistration) { r.IsLateCancellation = true }

func withAttitude(a models.Attitude) func(*models.MatchRegistration) {
	return func(r *models.MatchRegistration) {
		r.DidPlay = true
		r.Attitude = a
	}
}
