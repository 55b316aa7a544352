package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bizsuite/loyalty/internal/domain/loyalty"
	apperrors "github.com/bizsuite/loyalty/internal/errors"
	"github.com/bizsuite/loyalty/internal/model"
	"github.com/bizsuite/loyalty/internal/repository"
)

// SettingsProvider hands out the current immutable settings snapshot
type SettingsProvider interface {
	Snapshot() loyalty.Settings
}

// SettingsService administers program settings and the tier table.
// Updates build a fresh snapshot and swap it in atomically, readers
// never observe a half-updated tier table.
type SettingsService interface {
	SettingsProvider
	Init(context.Context) error
	Update(context.Context, model.ProgramSettings, []loyalty.Tier) (loyalty.Settings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	seed         loyalty.Settings
	snapshot     atomic.Pointer[loyalty.Settings]
	// serializes persist-then-swap so the snapshot always reflects the
	// last persisted row; Snapshot() stays lock-free
	updateMu sync.Mutex
}

// NewSettingsService builds SettingsService seeded with the provided
// defaults for the very first start
func NewSettingsService(settingsRepo repository.SettingsRepository, seed loyalty.Settings) SettingsService {
	s := &settingsService{settingsRepo: settingsRepo, seed: seed}
	s.snapshot.Store(&s.seed)
	return s
}

// Init loads persisted settings, persisting the seed when none are stored yet
func (s *settingsService) Init(ctx context.Context) error {
	stored, tiers, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return err
	}

	if stored == nil {
		seeded := model.ProgramSettings{
			PointsPerCurrencyUnit: s.seed.PointsPerCurrencyUnit,
			MinimumRedeemPoints:   s.seed.MinimumRedeemPoints,
		}
		return s.settingsRepo.Save(ctx, seeded, s.seed.Tiers.Tiers())
	}

	table, err := loyalty.NewTierTable(tiers)
	if err != nil {
		return err
	}

	snapshot, err := loyalty.NewSettings(stored.PointsPerCurrencyUnit, stored.MinimumRedeemPoints, table)
	if err != nil {
		return err
	}

	s.snapshot.Store(&snapshot)
	return nil
}

func (s *settingsService) Snapshot() loyalty.Settings {
	return *s.snapshot.Load()
}

func (s *settingsService) Update(ctx context.Context, settings model.ProgramSettings, tiers []loyalty.Tier) (loyalty.Settings, error) {
	table, err := loyalty.NewTierTable(tiers)
	if err != nil {
		return loyalty.Settings{}, apperrors.NewValidationErr("tiers", err.Error())
	}

	snapshot, err := loyalty.NewSettings(settings.PointsPerCurrencyUnit, settings.MinimumRedeemPoints, table)
	if err != nil {
		return loyalty.Settings{}, apperrors.NewValidationErr("settings", err.Error())
	}

	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	if err := s.settingsRepo.Save(ctx, settings, table.Tiers()); err != nil {
		return loyalty.Settings{}, err
	}

	s.snapshot.Store(&snapshot)
	return snapshot, nil
}
