package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/matchmerit/models"
)

var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrGroupNameConflict  = errors.New("group name conflict")
	ErrMemberNotFound     = errors.New("group member not found")
	ErrMemberConflict     = errors.New("group member already exists")
	ErrMemberUserNotFound = errors.New("group member references unknown user")
)

type GroupRepository interface {
	GetByID(ctx context.Context, id string) (*models.Group, error)
	GetByName(ctx context.Context, name string) (*models.Group, error)
	Create(ctx context.Context, group *models.Group) error
	// CreateWithOwner stores the group and its first membership atomically.
	CreateWithOwner(ctx context.Context, group *models.Group, owner *models.GroupMember) error
	Update(ctx context.Context, group *models.Group) error
	ListByUserID(ctx context.Context, userID string) ([]models.Group, error)

	AddMember(ctx context.Context, member *models.GroupMember) error
	UpdateMember(ctx context.Context, member *models.GroupMember) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	GetMember(ctx context.Context, groupID, userID string) (*models.GroupMember, error)
	// ListMembers returns the roster ordered by created_at, then user_id.
	ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error)
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

const groupColumns = `
	id, name, description, is_active,
	max_matches_considered, points_played, points_no_show, points_reserve,
	points_positive_attitude, points_negative_attitude, hours_before_penalty, points_late_cancel,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGroup(row rowScanner) (*models.Group, error) {
	var g models.Group
	var description sql.NullString
	err := row.Scan(
		&g.ID, &g.Name, &description, &g.IsActive,
		&g.Merit.MaxMatchesConsidered, &g.Merit.PointsPlayed, &g.Merit.PointsNoShow, &g.Merit.PointsReserve,
		&g.Merit.PointsPositiveAttitude, &g.Merit.PointsNegativeAttitude, &g.Merit.HoursBeforePenalty, &g.Merit.PointsLateCancel,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		g.Description = &description.String
	}
	return &g, nil
}

func (r *postgresGroupRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.Group, error) {
	g, err := scanGroup(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to scan group: %w", err)
	}
	return g, nil
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, id string) (*models.Group, error) {
	return r.getOne(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id)
}

func (r *postgresGroupRepository) GetByName(ctx context.Context, name string) (*models.Group, error) {
	return r.getOne(ctx, `SELECT `+groupColumns+` FROM groups WHERE name = $1`, name)
}

func insertGroup(ctx context.Context, exec SQLExecutor, g *models.Group) error {
	query := `
		INSERT INTO groups (` + groupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := exec.ExecContext(ctx, query,
		g.ID, g.Name, g.Description, g.IsActive,
		g.Merit.MaxMatchesConsidered, g.Merit.PointsPlayed, g.Merit.PointsNoShow, g.Merit.PointsReserve,
		g.Merit.PointsPositiveAttitude, g.Merit.PointsNegativeAttitude, g.Merit.HoursBeforePenalty, g.Merit.PointsLateCancel,
		g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "groups_name_key") {
			return ErrGroupNameConflict
		}
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return nil
}

func insertMember(ctx context.Context, exec SQLExecutor, m *models.GroupMember) error {
	query := `
		INSERT INTO group_members (group_id, user_id, status, role, status_updated_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := exec.ExecContext(ctx, query,
		m.GroupID, m.UserID, m.Status, m.Role, m.StatusUpdatedAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if code, constraint, ok := pqErrorCode(err); ok {
			switch code {
			case pqUniqueViolation:
				return ErrMemberConflict
			case pqForeignKeyViolation:
				if constraint == "group_members_group_id_fkey" {
					return ErrGroupNotFound
				}
				return ErrMemberUserNotFound
			}
		}
		return fmt.Errorf("failed to insert group member: %w", err)
	}
	return nil
}

func (r *postgresGroupRepository) Create(ctx context.Context, group *models.Group) error {
	return insertGroup(ctx, r.db, group)
}

func (r *postgresGroupRepository) CreateWithOwner(ctx context.Context, group *models.Group, owner *models.GroupMember) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := insertGroup(ctx, tx, group); err != nil {
			return err
		}
		return insertMember(ctx, tx, owner)
	})
}

func (r *postgresGroupRepository) Update(ctx context.Context, g *models.Group) error {
	query := `
		UPDATE groups SET
			name = $1, description = $2, is_active = $3,
			max_matches_considered = $4, points_played = $5, points_no_show = $6, points_reserve = $7,
			points_positive_attitude = $8, points_negative_attitude = $9, hours_before_penalty = $10,
			points_late_cancel = $11, updated_at = $12
		WHERE id = $13`

	result, err := r.db.ExecContext(ctx, query,
		g.Name, g.Description, g.IsActive,
		g.Merit.MaxMatchesConsidered, g.Merit.PointsPlayed, g.Merit.PointsNoShow, g.Merit.PointsReserve,
		g.Merit.PointsPositiveAttitude, g.Merit.PointsNegativeAttitude, g.Merit.HoursBeforePenalty,
		g.Merit.PointsLateCancel, g.UpdatedAt,
		g.ID,
	)
	if err != nil {
		if isUniqueViolation(err, "groups_name_key") {
			return ErrGroupNameConflict
		}
		return fmt.Errorf("failed to update group %s: %w", g.ID, err)
	}
	return checkAffectedRows(result, ErrGroupNotFound)
}

func (r *postgresGroupRepository) ListByUserID(ctx context.Context, userID string) ([]models.Group, error) {
	query := `
		SELECT ` + prefixColumns("g", groupColumns) + `
		FROM groups g
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for user %s: %w", userID, err)
	}
	defer rows.Close()

	groups := make([]models.Group, 0)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}
	return groups, nil
}

func (r *postgresGroupRepository) AddMember(ctx context.Context, member *models.GroupMember) error {
	return insertMember(ctx, r.db, member)
}

func (r *postgresGroupRepository) UpdateMember(ctx context.Context, m *models.GroupMember) error {
	query := `
		UPDATE group_members SET status = $1, role = $2, status_updated_at = $3, updated_at = $4
		WHERE group_id = $5 AND user_id = $6`

	result, err := r.db.ExecContext(ctx, query, m.Status, m.Role, m.StatusUpdatedAt, m.UpdatedAt, m.GroupID, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to update member %s of group %s: %w", m.UserID, m.GroupID, err)
	}
	return checkAffectedRows(result, ErrMemberNotFound)
}

func (r *postgresGroupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete member %s of group %s: %w", userID, groupID, err)
	}
	return checkAffectedRows(result, ErrMemberNotFound)
}

const memberColumns = `group_id, user_id, status, role, status_updated_at, created_at, updated_at`

func scanMember(row rowScanner) (*models.GroupMember, error) {
	var m models.GroupMember
	err := row.Scan(&m.GroupID, &m.UserID, &m.Status, &m.Role, &m.StatusUpdatedAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresGroupRepository) GetMember(ctx context.Context, groupID, userID string) (*models.GroupMember, error) {
	query := `SELECT ` + memberColumns + ` FROM group_members WHERE group_id = $1 AND user_id = $2`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, groupID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to scan group member: %w", err)
	}
	return m, nil
}

func (r *postgresGroupRepository) ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM group_members
		WHERE group_id = $1
		ORDER BY created_at ASC, user_id ASC`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of group %s: %w", groupID, err)
	}
	defer rows.Close()

	members := make([]models.GroupMember, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group member row: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group member rows: %w", err)
	}
	return members, nil
}
