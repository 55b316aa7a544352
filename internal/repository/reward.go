package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/bizsuite/loyalty/internal/model"
	"github.com/bizsuite/loyalty/pkg/db/transactor"
)

// RewardRepository is data access layer for reward catalog
type RewardRepository interface {
	FindByID(context.Context, string) (*model.Reward, error)
	FindAll(context.Context, bool) ([]*model.Reward, error)
	Create(context.Context, *model.Reward) error
	Update(context.Context, *model.Reward) (bool, error)
	DeleteByID(context.Context, string) (bool, error)
}

type postgresRewardRepository struct {
	trx transactor.PgxTransactor
}

// NewPostgresRewardRepository builds pgx-backed RewardRepository
func NewPostgresRewardRepository(trx transactor.PgxTransactor) RewardRepository {
	return &postgresRewardRepository{trx: trx}
}

func (r *postgresRewardRepository) FindByID(ctx context.Context, id string) (*model.Reward, error) {
	var rw model.Reward
	q := "SELECT id, title, description, points_required, category, image, active FROM rewards WHERE id = $1"

	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	if err := row.Scan(&rw.ID, &rw.Title, &rw.Description, &rw.PointsRequired, &rw.Category, &rw.Image, &rw.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rw, nil
}

func (r *postgresRewardRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.Reward, error) {
	rewards := make([]*model.Reward, 0)
	q := "SELECT id, title, description, points_required, category, image, active FROM rewards"
	if activeOnly {
		q += " WHERE active"
	}
	q += " ORDER BY points_required"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rw model.Reward
		if err := rows.Scan(&rw.ID, &rw.Title, &rw.Description, &rw.PointsRequired, &rw.Category, &rw.Image, &rw.Active); err != nil {
			return nil, err
		}
		rewards = append(rewards, &rw)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *postgresRewardRepository) Create(ctx context.Context, rw *model.Reward) error {
	q := `INSERT INTO rewards(id, title, description, points_required, category, image, active)
			   VALUES($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.trx.Executor(ctx).Exec(ctx, q, rw.ID, rw.Title, rw.Description, rw.PointsRequired, rw.Category, rw.Image, rw.Active)
	return err
}

func (r *postgresRewardRepository) Update(ctx context.Context, rw *model.Reward) (bool, error) {
	q := `UPDATE rewards SET title = $1, description = $2, points_required = $3, category = $4, image = $5, active = $6
		   WHERE id = $7`
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, rw.Title, rw.Description, rw.PointsRequired, rw.Category, rw.Image, rw.Active, rw.ID)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresRewardRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	q := "DELETE FROM rewards WHERE id = $1"
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}
