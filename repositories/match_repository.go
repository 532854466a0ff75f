package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/matchmerit/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound        = errors.New("match not found")
	ErrMatchGroupInvalid    = errors.New("match group conflict or invalid")
	ErrRegistrationNotFound = errors.New("match registration not found")
	ErrRegistrationConflict = errors.New("match registration already exists")
	ErrMatchNotOpen         = errors.New("match is no longer in planning")
	ErrRegistrationsChanged = errors.New("match registrations changed concurrently")
)

type MatchRepository interface {
	GetByID(ctx context.Context, id string) (*models.Match, error)
	Create(ctx context.Context, match *models.Match) error
	Update(ctx context.Context, match *models.Match) error
	// UpdateWithRegistrations writes the match and the given registrations atomically.
	// The stored match must still be in planning (ErrMatchNotOpen) and its
	// registrations must be exactly regs as read (ErrRegistrationsChanged).
	UpdateWithRegistrations(ctx context.Context, match *models.Match, regs []models.MatchRegistration) error
	// ListByGroupID returns the group's matches, most recent scheduled_at first.
	ListByGroupID(ctx context.Context, groupID string) ([]models.Match, error)
	// ListLastFinished returns at most limit finished matches of the group, most recent first.
	ListLastFinished(ctx context.Context, groupID string, limit int) ([]models.Match, error)

	// AddRegistration inserts reg only while the stored match is in planning (ErrMatchNotOpen).
	AddRegistration(ctx context.Context, reg *models.MatchRegistration) error
	UpdateRegistration(ctx context.Context, reg *models.MatchRegistration) error
	RemoveRegistration(ctx context.Context, matchID, userID string) error
	GetRegistration(ctx context.Context, matchID, userID string) (*models.MatchRegistration, error)
	// ListRegistrations returns the match registrations ordered by registered_at, then user_id.
	ListRegistrations(ctx context.Context, matchID string) ([]models.MatchRegistration, error)
	ListUserRegistrations(ctx context.Context, userID string, matchIDs []string) ([]models.MatchRegistration, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	id, group_id, sport, scheduled_at, duration_minutes, capacity, location,
	status, is_locked, team_a_color, team_b_color, created_at, updated_at`

func scanMatch(row rowScanner) (*models.Match, error) {
	var m models.Match
	var colorA, colorB string
	err := row.Scan(
		&m.ID, &m.GroupID, &m.Sport, &m.ScheduledAt, &m.DurationMinutes, &m.Capacity, &m.Location,
		&m.Status, &m.IsLocked, &colorA, &colorB, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if m.TeamAColor, err = models.ParseHexColor(colorA); err != nil {
		return nil, fmt.Errorf("match %s team a color: %w", m.ID, err)
	}
	if m.TeamBColor, err = models.ParseHexColor(colorB); err != nil {
		return nil, fmt.Errorf("match %s team b color: %w", m.ID, err)
	}
	return &m, nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	m, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	return m, nil
}

func (r *postgresMatchRepository) Create(ctx context.Context, m *models.Match) error {
	query := `
		INSERT INTO matches (` + matchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.GroupID, m.Sport, m.ScheduledAt, m.DurationMinutes, m.Capacity, m.Location,
		m.Status, m.IsLocked, m.TeamAColor.Hex(), m.TeamBColor.Hex(), m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if code, _, ok := pqErrorCode(err); ok && code == pqForeignKeyViolation {
			return ErrMatchGroupInvalid
		}
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func updateMatch(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	query := `
		UPDATE matches SET
			sport = $1, scheduled_at = $2, duration_minutes = $3, capacity = $4, location = $5,
			status = $6, is_locked = $7, team_a_color = $8, team_b_color = $9, updated_at = $10
		WHERE id = $11`

	result, err := exec.ExecContext(ctx, query,
		m.Sport, m.ScheduledAt, m.DurationMinutes, m.Capacity, m.Location,
		m.Status, m.IsLocked, m.TeamAColor.Hex(), m.TeamBColor.Hex(), m.UpdatedAt,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", m.ID, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Update(ctx context.Context, m *models.Match) error {
	return updateMatch(ctx, r.db, m)
}

func (r *postgresMatchRepository) UpdateWithRegistrations(ctx context.Context, m *models.Match, regs []models.MatchRegistration) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		// Joins take FOR SHARE on the same row, so none can slip in after this.
		var status models.MatchStatus
		err := tx.QueryRowContext(ctx, `SELECT status FROM matches WHERE id = $1 FOR UPDATE`, m.ID).Scan(&status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMatchNotFound
			}
			return fmt.Errorf("failed to lock match %s: %w", m.ID, err)
		}
		if status != models.MatchStatusPlanning {
			return ErrMatchNotOpen
		}

		current, err := listRegistrations(ctx, tx, `
			SELECT `+registrationColumns+`
			FROM match_registrations
			WHERE match_id = $1`, m.ID)
		if err != nil {
			return err
		}
		if !sameRegistrations(current, regs) {
			return ErrRegistrationsChanged
		}

		if err := updateMatch(ctx, tx, m); err != nil {
			return err
		}
		for i := range regs {
			if err := updateRegistration(ctx, tx, &regs[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *postgresMatchRepository) listMatches(ctx context.Context, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match rows: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) ListByGroupID(ctx context.Context, groupID string) ([]models.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE group_id = $1
		ORDER BY scheduled_at DESC, id ASC`
	return r.listMatches(ctx, query, groupID)
}

func (r *postgresMatchRepository) ListLastFinished(ctx context.Context, groupID string, limit int) ([]models.Match, error) {
	if limit <= 0 {
		return []models.Match{}, nil
	}
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE group_id = $1 AND status = $2
		ORDER BY scheduled_at DESC, id ASC
		LIMIT $3`
	return r.listMatches(ctx, query, groupID, models.MatchStatusFinished, limit)
}

const registrationColumns = `match_id, user_id, registered_at, is_reserve, did_play, attitude, is_late_cancellation`

func scanRegistration(row rowScanner) (*models.MatchRegistration, error) {
	var reg models.MatchRegistration
	err := row.Scan(&reg.MatchID, &reg.UserID, &reg.RegisteredAt, &reg.IsReserve, &reg.DidPlay, &reg.Attitude, &reg.IsLateCancellation)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *postgresMatchRepository) AddRegistration(ctx context.Context, reg *models.MatchRegistration) error {
	query := `
		INSERT INTO match_registrations (` + registrationColumns + `)
		SELECT m.id, $2::uuid, $3::timestamptz, $4::boolean, $5::boolean, $6::varchar, $7::boolean
		FROM matches m
		WHERE m.id = $1 AND m.status = $8
		FOR SHARE`

	result, err := r.db.ExecContext(ctx, query,
		reg.MatchID, reg.UserID, reg.RegisteredAt, reg.IsReserve, reg.DidPlay, reg.Attitude, reg.IsLateCancellation,
		models.MatchStatusPlanning,
	)
	if err != nil {
		if code, _, ok := pqErrorCode(err); ok {
			switch code {
			case pqUniqueViolation:
				return ErrRegistrationConflict
			case pqForeignKeyViolation:
				return ErrMatchNotFound
			}
		}
		return fmt.Errorf("failed to insert registration: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if inserted == 0 {
		var exists bool
		if qErr := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)`, reg.MatchID).Scan(&exists); qErr != nil {
			return fmt.Errorf("failed to check match %s: %w", reg.MatchID, qErr)
		}
		if !exists {
			return ErrMatchNotFound
		}
		return ErrMatchNotOpen
	}
	return nil
}

func updateRegistration(ctx context.Context, exec SQLExecutor, reg *models.MatchRegistration) error {
	query := `
		UPDATE match_registrations
		SET is_reserve = $1, did_play = $2, attitude = $3, is_late_cancellation = $4
		WHERE match_id = $5 AND user_id = $6`

	result, err := exec.ExecContext(ctx, query,
		reg.IsReserve, reg.DidPlay, reg.Attitude, reg.IsLateCancellation, reg.MatchID, reg.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update registration of user %s in match %s: %w", reg.UserID, reg.MatchID, err)
	}
	return checkAffectedRows(result, ErrRegistrationNotFound)
}

func (r *postgresMatchRepository) UpdateRegistration(ctx context.Context, reg *models.MatchRegistration) error {
	return updateRegistration(ctx, r.db, reg)
}

func (r *postgresMatchRepository) RemoveRegistration(ctx context.Context, matchID, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM match_registrations WHERE match_id = $1 AND user_id = $2`, matchID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete registration of user %s in match %s: %w", userID, matchID, err)
	}
	return checkAffectedRows(result, ErrRegistrationNotFound)
}

func (r *postgresMatchRepository) GetRegistration(ctx context.Context, matchID, userID string) (*models.MatchRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM match_registrations WHERE match_id = $1 AND user_id = $2`
	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query, matchID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to scan registration: %w", err)
	}
	return reg, nil
}

func listRegistrations(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]models.MatchRegistration, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	regs := make([]models.MatchRegistration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		regs = append(regs, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}
	return regs, nil
}

func (r *postgresMatchRepository) ListRegistrations(ctx context.Context, matchID string) ([]models.MatchRegistration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM match_registrations
		WHERE match_id = $1
		ORDER BY registered_at ASC, user_id ASC`
	return listRegistrations(ctx, r.db, query, matchID)
}

func (r *postgresMatchRepository) ListUserRegistrations(ctx context.Context, userID string, matchIDs []string) ([]models.MatchRegistration, error) {
	if len(matchIDs) == 0 {
		return []models.MatchRegistration{}, nil
	}
	query := `
		SELECT ` + registrationColumns + `
		FROM match_registrations
		WHERE user_id = $1 AND match_id = ANY($2::uuid[])
		ORDER BY registered_at ASC, match_id ASC`
	return listRegistrations(ctx, r.db, query, userID, pq.Array(matchIDs))
}

// sameRegistrations reports whether stored holds exactly the users of read,
// with the same late cancellation flags.
func sameRegistrations(stored, read []models.MatchRegistration) bool {
	if len(stored) != len(read) {
		return false
	}
	late := make(map[string]bool, len(read))
	for _, reg := range read {
		late[reg.UserID] = reg.IsLateCancellation
	}
	for _, reg := range stored {
		flag, ok := late[reg.UserID]
		if !ok || flag != reg.IsLateCancellation {
			return false
		}
	}
	return true
}
