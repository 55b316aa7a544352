package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/bizsuite/loyalty/internal/domain/loyalty"
	"github.com/bizsuite/loyalty/internal/model"
	"github.com/bizsuite/loyalty/pkg/db/transactor"
)

// single-row table, fixed key
const settingsRowID = 1

// SettingsRepository persists program settings and the tier table.
// Load returns nil settings when nothing is stored yet, so the service
// can seed the initial snapshot from configuration.
type SettingsRepository interface {
	Load(context.Context) (*model.ProgramSettings, []loyalty.Tier, error)
	Save(context.Context, model.ProgramSettings, []loyalty.Tier) error
}

type postgresSettingsRepository struct {
	trx transactor.PgxTransactor
}

// NewPostgresSettingsRepository builds pgx-backed SettingsRepository
func NewPostgresSettingsRepository(trx transactor.PgxTransactor) SettingsRepository {
	return &postgresSettingsRepository{trx: trx}
}

func (r *postgresSettingsRepository) Load(ctx context.Context) (*model.ProgramSettings, []loyalty.Tier, error) {
	var s model.ProgramSettings
	q := "SELECT points_per_currency_unit, minimum_redeem_points FROM program_settings WHERE id = $1"

	row := r.trx.Executor(ctx).QueryRow(ctx, q, settingsRowID)
	if err := row.Scan(&s.PointsPerCurrencyUnit, &s.MinimumRedeemPoints); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	tiers, err := r.tiers(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &s, tiers, nil
}

// Save replaces settings and the whole tier table atomically
func (r *postgresSettingsRepository) Save(ctx context.Context, s model.ProgramSettings, tiers []loyalty.Tier) error {
	return r.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		q := `INSERT INTO program_settings(id, points_per_currency_unit, minimum_redeem_points)
				   VALUES($1, $2, $3)
				   ON CONFLICT (id) DO UPDATE SET points_per_currency_unit = $2, minimum_redeem_points = $3`
		if _, err := r.trx.Executor(ctx).Exec(ctx, q, settingsRowID, s.PointsPerCurrencyUnit, s.MinimumRedeemPoints); err != nil {
			return err
		}

		if _, err := r.trx.Executor(ctx).Exec(ctx, "DELETE FROM tiers"); err != nil {
			return err
		}

		for _, t := range tiers {
			q := "INSERT INTO tiers(id, min_points, display_name, color) VALUES($1, $2, $3, $4)"
			if _, err := r.trx.Executor(ctx).Exec(ctx, q, t.ID, t.MinPoints, t.DisplayName, t.Color); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *postgresSettingsRepository) tiers(ctx context.Context) ([]loyalty.Tier, error) {
	tiers := make([]loyalty.Tier, 0)
	q := "SELECT id, min_points, display_name, color FROM tiers ORDER BY min_points"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t loyalty.Tier
		if err := rows.Scan(&t.ID, &t.MinPoints, &t.DisplayName, &t.Color); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tiers, nil
}
