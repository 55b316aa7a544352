package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/bizsuite/loyalty/internal/cache"
	"github.com/bizsuite/loyalty/internal/domain/loyalty"
	apperrors "github.com/bizsuite/loyalty/internal/errors"
	"github.com/bizsuite/loyalty/internal/model"
	"github.com/bizsuite/loyalty/internal/repository"
	"github.com/bizsuite/loyalty/pkg/db/transactor"
)

const (
	// attempts to enroll when the card number loses a commit race
	enrollMaxAttempts = 3
	// postgres unique_violation
	pgUniqueViolationCode = "23505"
)

// LoyaltyService is the points ledger - the only writer of customer
// points, level, last activity and total spent
type LoyaltyService interface {
	Enroll(context.Context, loyalty.Enrollment) (*model.Customer, error)
	AddPointsFromPurchase(context.Context, string, float64) (*model.Customer, error)
	AddPointsManual(context.Context, string, int) (*model.Customer, error)
	Redeem(context.Context, string, string) (*model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	DeleteByID(context.Context, string) error
	RecomputeLevels(context.Context) (int, error)
}

type loyaltyService struct {
	trx           transactor.Transactor
	customerRepo  repository.CustomerRepository
	rewardRepo    repository.RewardRepository
	eventRepo     repository.EventRepository
	customerCache cache.CustomerCacheRepository
	settings      SettingsProvider
	cardIssuer    *loyalty.CardIssuer
}

// NewLoyaltyService builds LoyaltyService
func NewLoyaltyService(
	trx transactor.Transactor,
	customerRepo repository.CustomerRepository,
	rewardRepo repository.RewardRepository,
	eventRepo repository.EventRepository,
	customerCache cache.CustomerCacheRepository,
	settings SettingsProvider,
	cardIssuer *loyalty.CardIssuer,
) LoyaltyService {
	return &loyaltyService{
		trx:           trx,
		customerRepo:  customerRepo,
		rewardRepo:    rewardRepo,
		eventRepo:     eventRepo,
		customerCache: customerCache,
		settings:      settings,
		cardIssuer:    cardIssuer,
	}
}

func (s *loyaltyService) Enroll(ctx context.Context, e loyalty.Enrollment) (*model.Customer, error) {
	if strings.TrimSpace(e.Name) == "" {
		return nil, apperrors.NewValidationErr("name", "name is required")
	}
	if strings.TrimSpace(e.Email) == "" {
		return nil, apperrors.NewValidationErr("email", "email is required")
	}
	if strings.TrimSpace(e.Phone) == "" {
		return nil, apperrors.NewValidationErr("phone", "phone is required")
	}
	if e.InitialPoints < 0 {
		return nil, apperrors.NewValidationErr("initialPoints", "initial points must not be negative")
	}

	settings := s.settings.Snapshot()

	var c *model.Customer
	var err error
	for attempt := 0; attempt < enrollMaxAttempts; attempt++ {
		c, err = s.createEnrolled(ctx, e, settings)
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	s.appendEvent(ctx, &model.PointsEvent{
		Type:         model.EventCustomerEnrolled,
		CustomerID:   c.ID,
		CustomerName: c.Name,
		Delta:        c.Points,
		Balance:      c.Points,
		Level:        c.Level,
		OccurredAt:   c.JoinDate,
	})
	return c, nil
}

// createEnrolled issues a card number and persists the customer in a
// single transaction, so the uniqueness probe and the insert observe
// the same state. A unique violation on insert means another enrollment
// committed the same number between probe and commit - the caller
// retries with a fresh number.
func (s *loyaltyService) createEnrolled(ctx context.Context, e loyalty.Enrollment, settings loyalty.Settings) (*model.Customer, error) {
	var c *model.Customer
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		cardNumber, err := s.cardIssuer.Issue(func(number string) bool {
			exists, err := s.customerRepo.CardNumberExists(ctx, number)
			if err != nil {
				// treated as collision, issuer gives up after bounded retries
				return true
			}
			return exists
		})
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		c = &model.Customer{
			ID:           uuid.NewString(),
			Name:         e.Name,
			Email:        e.Email,
			Phone:        e.Phone,
			Points:       e.InitialPoints,
			Level:        settings.Tiers.Classify(e.InitialPoints).ID,
			CardNumber:   cardNumber,
			CardColor:    e.CardColor,
			TextColor:    e.TextColor,
			JoinDate:     now,
			LastActivity: now,
			TotalSpent:   float64(e.InitialPoints),
		}
		return s.customerRepo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

func (s *loyaltyService) AddPointsFromPurchase(ctx context.Context, id string, amount float64) (*model.Customer, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationErr("amount", "purchase amount must be positive")
	}

	settings := s.settings.Snapshot()
	earned := settings.PointsForPurchase(amount)

	var updated *model.Customer
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.lockCustomer(ctx, id)
		if err != nil {
			return err
		}

		c.Points += earned
		c.Level = settings.Tiers.Classify(c.Points).ID
		c.TotalSpent += amount
		c.LastActivity = time.Now().UTC()

		if err := s.customerRepo.Update(ctx, c); err != nil {
			return err
		}

		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.evictFromCache(ctx, id)
	s.appendEvent(ctx, &model.PointsEvent{
		Type:         model.EventPointsGranted,
		CustomerID:   updated.ID,
		CustomerName: updated.Name,
		Delta:        earned,
		Balance:      updated.Points,
		Level:        updated.Level,
		OccurredAt:   updated.LastActivity,
	})
	return updated, nil
}

func (s *loyaltyService) AddPointsManual(ctx context.Context, id string, delta int) (*model.Customer, error) {
	settings := s.settings.Snapshot()

	var updated *model.Customer
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.lockCustomer(ctx, id)
		if err != nil {
			return err
		}

		if c.Points+delta < 0 {
			return apperrors.NewInsufficientPointsErr(
				fmt.Sprintf("customer %s has %d points, debit of %d is not possible", id, c.Points, -delta))
		}

		c.Points += delta
		c.Level = settings.Tiers.Classify(c.Points).ID
		c.LastActivity = time.Now().UTC()

		if err := s.customerRepo.Update(ctx, c); err != nil {
			return err
		}

		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.evictFromCache(ctx, id)
	s.appendEvent(ctx, &model.PointsEvent{
		Type:         eventTypeForDelta(delta),
		CustomerID:   updated.ID,
		CustomerName: updated.Name,
		Delta:        delta,
		Balance:      updated.Points,
		Level:        updated.Level,
		OccurredAt:   updated.LastActivity,
	})
	return updated, nil
}

func (s *loyaltyService) Redeem(ctx context.Context, id string, rewardID string) (*model.Customer, error) {
	settings := s.settings.Snapshot()

	var updated *model.Customer
	var redeemed *model.Reward
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.lockCustomer(ctx, id)
		if err != nil {
			return err
		}

		reward, err := s.rewardRepo.FindByID(ctx, rewardID)
		if err != nil {
			return err
		}
		if reward == nil {
			return apperrors.NewEntryNotFoundErr(fmt.Sprintf("reward with id %s doesn't exist", rewardID))
		}

		if !reward.Active {
			return apperrors.NewIneligibleRedemptionErr(fmt.Sprintf("reward %s is not active", reward.Title))
		}
		if c.Points < reward.PointsRequired {
			return apperrors.NewIneligibleRedemptionErr(
				fmt.Sprintf("reward %s requires %d points, customer has %d", reward.Title, reward.PointsRequired, c.Points))
		}

		c.Points -= reward.PointsRequired
		c.Level = settings.Tiers.Classify(c.Points).ID
		c.LastActivity = time.Now().UTC()

		if err := s.customerRepo.Update(ctx, c); err != nil {
			return err
		}

		updated = c
		redeemed = reward
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.evictFromCache(ctx, id)
	s.appendEvent(ctx, &model.PointsEvent{
		Type:         model.EventPointsRedeemed,
		CustomerID:   updated.ID,
		CustomerName: updated.Name,
		Delta:        -redeemed.PointsRequired,
		Balance:      updated.Points,
		Level:        updated.Level,
		RewardID:     redeemed.ID,
		OccurredAt:   updated.LastActivity,
	})
	return updated, nil
}

func (s *loyaltyService) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.customerCache.FindByID(ctx, id)
	if err != nil {
		logrus.Errorf("failed to read customer %s from cache - %v", id, err)
	}
	if c != nil {
		return c, nil
	}

	c, err = s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c != nil {
		if err := s.customerCache.Create(ctx, c); err != nil {
			logrus.Errorf("failed to cache customer %s - %v", id, err)
		}
	}
	return c, nil
}

func (s *loyaltyService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *loyaltyService) DeleteByID(ctx context.Context, id string) error {
	if err := s.customerCache.DeleteByID(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.DeleteByID(ctx, id)
}

// RecomputeLevels re-derives every customer level against the current
// tier table. Levels are otherwise recomputed lazily on the next
// points-affecting operation, this pass is for hosts wanting an eager
// sweep after a tier table change. Returns number of adjusted customers.
//
// The listing only supplies ids. Each customer is re-read under a row
// lock in its own short transaction and the level derived from the
// locked balance, so the sweep never writes back points or spend it
// observed before a concurrent ledger operation committed.
func (s *loyaltyService) RecomputeLevels(ctx context.Context) (int, error) {
	settings := s.settings.Snapshot()

	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	adjusted := 0
	for _, listed := range customers {
		err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
			c, err := s.customerRepo.FindByIDForUpdate(ctx, listed.ID)
			if err != nil {
				return err
			}
			if c == nil {
				// removed since the listing, nothing to adjust
				return nil
			}

			level := settings.Tiers.Classify(c.Points).ID
			if level == c.Level {
				return nil
			}

			c.Level = level
			if err := s.customerRepo.Update(ctx, c); err != nil {
				return err
			}

			s.evictFromCache(ctx, c.ID)
			adjusted++
			return nil
		})
		if err != nil {
			return adjusted, err
		}
	}
	return adjusted, nil
}

func (s *loyaltyService) lockCustomer(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.customerRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("customer with id %s doesn't exist", id))
	}
	return c, nil
}

// appendEvent writes to the activity log best-effort: the balance in
// postgres stays authoritative, a failed append must not fail the
// already committed operation
func (s *loyaltyService) appendEvent(ctx context.Context, e *model.PointsEvent) {
	e.ID = uuid.NewString()
	if err := s.eventRepo.Create(ctx, e); err != nil {
		logrus.Errorf("failed to append %s event for customer %s - %v", e.Type, e.CustomerID, err)
	}
}

func (s *loyaltyService) evictFromCache(ctx context.Context, id string) {
	if err := s.customerCache.DeleteByID(ctx, id); err != nil {
		logrus.Errorf("failed to evict customer %s from cache - %v", id, err)
	}
}

func eventTypeForDelta(delta int) model.EventType {
	if delta < 0 {
		return model.EventPointsRedeemed
	}
	return model.EventPointsGranted
}
