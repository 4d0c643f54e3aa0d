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

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	const query = `SELECT id, name FROM teams WHERE id = $1`

	var t team.Team
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.WrapKind(err, errs.KindNotFound, "team not found")
		}
		return nil, errs.Wrap(err, "failed to find team")
	}
	return &t, nil
}

func (r *TeamRepository) Remove(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM teams WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return errs.Wrap(err, "failed to remove team")
	}
	return nil
}
