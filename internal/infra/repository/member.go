package repository

import (
	"context"
	"errors"

	"shelflife/internal/domain/team"
	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

const memberColumns = `tm.user_id, tm.team_id, u.email, tm.role, tm.status, tm.invite_code, tm.store_id, tm.created_at`

func (r *MemberRepository) Find(ctx context.Context, teamID, userID uuid.UUID) (*team.Member, error) {
	query := `SELECT ` + memberColumns + `
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1 AND tm.user_id = $2`

	m, err := scanMember(r.pool.QueryRow(ctx, query, teamID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.WrapKind(err, errs.KindNotFound, "membership not found")
		}
		return nil, errs.Wrap(err, "failed to find membership")
	}
	return m, nil
}

func (r *MemberRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]team.Member, error) {
	query := `SELECT ` + memberColumns + `
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY tm.created_at`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list team members")
	}
	defer rows.Close()

	var members []team.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, errs.Wrap(err, "failed to scan team member")
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate team members")
	}
	return members, nil
}

func (r *MemberRepository) Save(ctx context.Context, m *team.Member) error {
	const query = `INSERT INTO team_members (user_id, team_id, role, status, invite_code, store_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, team_id)
		DO UPDATE SET role = EXCLUDED.role, status = EXCLUDED.status, store_id = EXCLUDED.store_id`

	_, err := r.pool.Exec(ctx, query, m.UserID, m.TeamID, string(m.Role), string(m.Status), m.InviteCode, m.StoreID)
	if err != nil {
		return errs.Wrap(err, "failed to save membership")
	}
	return nil
}

func (r *MemberRepository) Remove(ctx context.Context, teamID, userID uuid.UUID) error {
	const query = `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`

	if _, err := r.pool.Exec(ctx, query, teamID, userID); err != nil {
		return errs.Wrap(err, "failed to remove membership")
	}
	return nil
}

// CountByTeam counts every membership regardless of status: invited seats
// consume capacity just like completed ones.
func (r *MemberRepository) CountByTeam(ctx context.Context, teamID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM team_members WHERE team_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, teamID).Scan(&count); err != nil {
		return 0, errs.Wrap(err, "failed to count team members")
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*team.Member, error) {
	var m team.Member
	var role, status string
	err := row.Scan(&m.UserID, &m.TeamID, &m.Email, &role, &status, &m.InviteCode, &m.StoreID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Role = team.Role(role)
	m.Status = team.Status(status)
	return &m, nil
}
