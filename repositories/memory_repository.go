package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/Dosada05/matchmerit/models"
)

// In-memory implementations share ordering and uniqueness rules with the
// postgres ones so services behave identically on both backends.

type memberKey struct{ groupID, userID string }

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrUserUsernameConflict
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *memoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}
	updated := *user
	updated.Username = existing.Username
	updated.CreatedAt = existing.CreatedAt
	r.users[user.ID] = updated
	return nil
}

type memoryGroupRepository struct {
	mu      sync.RWMutex
	groups  map[string]models.Group
	members map[memberKey]models.GroupMember
}

func NewMemoryGroupRepository() GroupRepository {
	return &memoryGroupRepository{
		groups:  make(map[string]models.Group),
		members: make(map[memberKey]models.GroupMember),
	}
}

func (r *memoryGroupRepository) GetByID(_ context.Context, id string) (*models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.groups[id]
	if !ok {
		return nil, ErrGroupNotFound
	}
	return &g, nil
}

func (r *memoryGroupRepository) GetByName(_ context.Context, name string) (*models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.groups {
		if g.Name == name {
			return &g, nil
		}
	}
	return nil, ErrGroupNotFound
}

func (r *memoryGroupRepository) nameTakenLocked(name, exceptID string) bool {
	for id, g := range r.groups {
		if id != exceptID && g.Name == name {
			return true
		}
	}
	return false
}

func (r *memoryGroupRepository) Create(_ context.Context, group *models.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTakenLocked(group.Name, "") {
		return ErrGroupNameConflict
	}
	r.groups[group.ID] = *group
	return nil
}

func (r *memoryGroupRepository) CreateWithOwner(_ context.Context, group *models.Group, owner *models.GroupMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTakenLocked(group.Name, "") {
		return ErrGroupNameConflict
	}
	key := memberKey{owner.GroupID, owner.UserID}
	if _, exists := r.members[key]; exists {
		return ErrMemberConflict
	}
	r.groups[group.ID] = *group
	r.members[key] = *owner
	return nil
}

func (r *memoryGroupRepository) Update(_ context.Context, group *models.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[group.ID]; !ok {
		return ErrGroupNotFound
	}
	if r.nameTakenLocked(group.Name, group.ID) {
		return ErrGroupNameConflict
	}
	r.groups[group.ID] = *group
	return nil
}

func (r *memoryGroupRepository) ListByUserID(_ context.Context, userID string) ([]models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	groups := make([]models.Group, 0)
	for key := range r.members {
		if key.userID != userID {
			continue
		}
		if g, ok := r.groups[key.groupID]; ok {
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups, nil
}

func (r *memoryGroupRepository) AddMember(_ context.Context, member *models.GroupMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[member.GroupID]; !ok {
		return ErrGroupNotFound
	}
	key := memberKey{member.GroupID, member.UserID}
	if _, exists := r.members[key]; exists {
		return ErrMemberConflict
	}
	r.members[key] = *member
	return nil
}

func (r *memoryGroupRepository) UpdateMember(_ context.Context, member *models.GroupMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := memberKey{member.GroupID, member.UserID}
	if _, ok := r.members[key]; !ok {
		return ErrMemberNotFound
	}
	r.members[key] = *member
	return nil
}

func (r *memoryGroupRepository) RemoveMember(_ context.Context, groupID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := memberKey{groupID, userID}
	if _, ok := r.members[key]; !ok {
		return ErrMemberNotFound
	}
	delete(r.members, key)
	return nil
}

func (r *memoryGroupRepository) GetMember(_ context.Context, groupID, userID string) (*models.GroupMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[memberKey{groupID, userID}]
	if !ok {
		return nil, ErrMemberNotFound
	}
	return &m, nil
}

func (r *memoryGroupRepository) ListMembers(_ context.Context, groupID string) ([]models.GroupMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	members := make([]models.GroupMember, 0)
	for key, m := range r.members {
		if key.groupID == groupID {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		if !members[i].CreatedAt.Equal(members[j].CreatedAt) {
			return members[i].CreatedAt.Before(members[j].CreatedAt)
		}
		return members[i].UserID < members[j].UserID
	})
	return members, nil
}

type registrationKey struct{ matchID, userID string }

type memoryMatchRepository struct {
	mu            sync.RWMutex
	matches       map[string]models.Match
	registrations map[registrationKey]models.MatchRegistration
}

func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatchRepository{
		matches:       make(map[string]models.Match),
		registrations: make(map[registrationKey]models.MatchRegistration),
	}
}

func (r *memoryMatchRepository) GetByID(_ context.Context, id string) (*models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return &m, nil
}

func (r *memoryMatchRepository) Create(_ context.Context, match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[match.ID] = *match
	return nil
}

func (r *memoryMatchRepository) Update(_ context.Context, match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[match.ID]; !ok {
		return ErrMatchNotFound
	}
	r.matches[match.ID] = *match
	return nil
}

func (r *memoryMatchRepository) UpdateWithRegistrations(_ context.Context, match *models.Match, regs []models.MatchRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.matches[match.ID]
	if !ok {
		return ErrMatchNotFound
	}
	if stored.Status != models.MatchStatusPlanning {
		return ErrMatchNotOpen
	}
	current := make([]models.MatchRegistration, 0, len(regs))
	for key, reg := range r.registrations {
		if key.matchID == match.ID {
			current = append(current, reg)
		}
	}
	if !sameRegistrations(current, regs) {
		return ErrRegistrationsChanged
	}
	r.matches[match.ID] = *match
	for _, reg := range regs {
		r.registrations[registrationKey{reg.MatchID, reg.UserID}] = reg
	}
	return nil
}

func sortMatchesRecentFirst(matches []models.Match) {
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].ScheduledAt.Equal(matches[j].ScheduledAt) {
			return matches[i].ScheduledAt.After(matches[j].ScheduledAt)
		}
		return matches[i].ID < matches[j].ID
	})
}

func (r *memoryMatchRepository) ListByGroupID(_ context.Context, groupID string) ([]models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]models.Match, 0)
	for _, m := range r.matches {
		if m.GroupID == groupID {
			matches = append(matches, m)
		}
	}
	sortMatchesRecentFirst(matches)
	return matches, nil
}

func (r *memoryMatchRepository) ListLastFinished(_ context.Context, groupID string, limit int) ([]models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]models.Match, 0)
	if limit <= 0 {
		return matches, nil
	}
	for _, m := range r.matches {
		if m.GroupID == groupID && m.Status == models.MatchStatusFinished {
			matches = append(matches, m)
		}
	}
	sortMatchesRecentFirst(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *memoryMatchRepository) AddRegistration(_ context.Context, reg *models.MatchRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[reg.MatchID]
	if !ok {
		return ErrMatchNotFound
	}
	if match.Status != models.MatchStatusPlanning {
		return ErrMatchNotOpen
	}
	key := registrationKey{reg.MatchID, reg.UserID}
	if _, exists := r.registrations[key]; exists {
		return ErrRegistrationConflict
	}
	r.registrations[key] = *reg
	return nil
}

func (r *memoryMatchRepository) UpdateRegistration(_ context.Context, reg *models.MatchRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := registrationKey{reg.MatchID, reg.UserID}
	if _, ok := r.registrations[key]; !ok {
		return ErrRegistrationNotFound
	}
	r.registrations[key] = *reg
	return nil
}

func (r *memoryMatchRepository) RemoveRegistration(_ context.Context, matchID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := registrationKey{matchID, userID}
	if _, ok := r.registrations[key]; !ok {
		return ErrRegistrationNotFound
	}
	delete(r.registrations, key)
	return nil
}

func (r *memoryMatchRepository) GetRegistration(_ context.Context, matchID, userID string) (*models.MatchRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.registrations[registrationKey{matchID, userID}]
	if !ok {
		return nil, ErrRegistrationNotFound
	}
	return &reg, nil
}

func sortRegistrations(regs []models.MatchRegistration, tieBreak func(a, b models.MatchRegistration) bool) {
	sort.Slice(regs, func(i, j int) bool {
		if !regs[i].RegisteredAt.Equal(regs[j].RegisteredAt) {
			return regs[i].RegisteredAt.Before(regs[j].RegisteredAt)
		}
		return tieBreak(regs[i], regs[j])
	})
}

func (r *memoryMatchRepository) ListRegistrations(_ context.Context, matchID string) ([]models.MatchRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := make([]models.MatchRegistration, 0)
	for key, reg := range r.registrations {
		if key.matchID == matchID {
			regs = append(regs, reg)
		}
	}
	sortRegistrations(regs, func(a, b models.MatchRegistration) bool { return a.UserID < b.UserID })
	return regs, nil
}

func (r *memoryMatchRepository) ListUserRegistrations(_ context.Context, userID string, matchIDs []string) ([]models.MatchRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := make([]models.MatchRegistration, 0, len(matchIDs))
	seen := make(map[string]struct{}, len(matchIDs))
	for _, matchID := range matchIDs {
		if _, dup := seen[matchID]; dup {
			continue
		}
		seen[matchID] = struct{}{}
		if reg, ok := r.registrations[registrationKey{matchID, userID}]; ok {
			regs = append(regs, reg)
		}
	}
	sortRegistrations(regs, func(a, b models.MatchRegistration) bool { return a.MatchID < b.MatchID })
	return regs, nil
}
