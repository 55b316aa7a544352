package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/bizsuite/loyalty/internal/errors"
	"github.com/bizsuite/loyalty/internal/model"
	"github.com/bizsuite/loyalty/internal/repository"
)

// RewardService is CRUD over reward catalog, independent of customer state
type RewardService interface {
	FindByID(context.Context, string) (*model.Reward, error)
	FindAll(context.Context, bool) ([]*model.Reward, error)
	Create(context.Context, *model.Reward) (*model.Reward, error)
	Update(context.Context, *model.Reward) (*model.Reward, error)
	DeleteByID(context.Context, string) error
}

type rewardService struct {
	rewardRepo repository.RewardRepository
}

// NewRewardService builds RewardService
func NewRewardService(rewardRepo repository.RewardRepository) RewardService {
	return &rewardService{rewardRepo: rewardRepo}
}

func (s *rewardService) FindByID(ctx context.Context, id string) (*model.Reward, error) {
	return s.rewardRepo.FindByID(ctx, id)
}

func (s *rewardService) FindAll(ctx context.Context, activeOnly bool) ([]*model.Reward, error) {
	return s.rewardRepo.FindAll(ctx, activeOnly)
}

func (s *rewardService) Create(ctx context.Context, r *model.Reward) (*model.Reward, error) {
	if err := validateReward(r); err != nil {
		return nil, err
	}

	r.ID = uuid.NewString()
	if err := s.rewardRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rewardService) Update(ctx context.Context, r *model.Reward) (*model.Reward, error) {
	if err := validateReward(r); err != nil {
		return nil, err
	}

	updated, err := s.rewardRepo.Update(ctx, r)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("reward with id %s doesn't exist", r.ID))
	}
	return r, nil
}

func (s *rewardService) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.rewardRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewEntryNotFoundErr(fmt.Sprintf("reward with id %s doesn't exist", id))
	}
	return nil
}

func validateReward(r *model.Reward) error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.NewValidationErr("title", "title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.NewValidationErr("description", "description is required")
	}
	if r.PointsRequired <= 0 {
		return apperrors.NewValidationErr("pointsRequired", "points required must be positive")
	}
	return nil
}
