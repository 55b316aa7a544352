package service

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/bizsuite/loyalty/internal/model"
	"github.com/bizsuite/loyalty/internal/repository"
	"github.com/bizsuite/loyalty/pkg/db/transactor"
)

// ReportService aggregates customer and reward state into program
// statistics. Read-only, never mutates anything.
type ReportService interface {
	GenerateReport(context.Context) (*model.ProgramReport, error)
}

type reportService struct {
	trx          transactor.Transactor
	customerRepo repository.CustomerRepository
	rewardRepo   repository.RewardRepository
	eventRepo    repository.EventRepository
	settings     SettingsProvider
	topCustomers int
	feedSize     int64
}

// NewReportService builds ReportService. topCustomers bounds the
// leaderboard, feedSize bounds the recent activity feed.
func NewReportService(
	trx transactor.Transactor,
	customerRepo repository.CustomerRepository,
	rewardRepo repository.RewardRepository,
	eventRepo repository.EventRepository,
	settings SettingsProvider,
	topCustomers int,
	feedSize int64,
) ReportService {
	return &reportService{
		trx:          trx,
		customerRepo: customerRepo,
		rewardRepo:   rewardRepo,
		eventRepo:    eventRepo,
		settings:     settings,
		topCustomers: topCustomers,
		feedSize:     feedSize,
	}
}

func (s *reportService) GenerateReport(ctx context.Context) (*model.ProgramReport, error) {
	var customers []*model.Customer
	var rewards []*model.Reward

	// single transaction gives a consistent customers/rewards snapshot
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if customers, err = s.customerRepo.FindAll(ctx); err != nil {
			return err
		}
		if rewards, err = s.rewardRepo.FindAll(ctx, true); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &model.ProgramReport{
		CustomerCount:     len(customers),
		ActiveRewardCount: len(rewards),
		TierDistribution:  s.tierDistribution(customers),
		TopCustomers:      s.leaderboard(customers),
	}

	for _, c := range customers {
		report.TotalPoints += c.Points
		report.TotalSpent += c.TotalSpent
	}

	if len(customers) > 0 {
		report.AveragePoints = float64(report.TotalPoints) / float64(len(customers))
	}

	events, err := s.eventRepo.FindRecent(ctx, s.feedSize)
	if err != nil {
		// activity feed is auxiliary, a report without it is still useful
		logrus.Errorf("failed to load recent activity - %v", err)
		events = make([]*model.PointsEvent, 0)
	}
	report.RecentActivity = events

	return report, nil
}

func (s *reportService) tierDistribution(customers []*model.Customer) []model.TierStat {
	tiers := s.settings.Snapshot().Tiers.Tiers()

	counts := make(map[string]int, len(tiers))
	for _, c := range customers {
		counts[c.Level]++
	}

	stats := make([]model.TierStat, 0, len(tiers))
	for _, t := range tiers {
		stat := model.TierStat{TierID: t.ID, DisplayName: t.DisplayName, Count: counts[t.ID]}
		if len(customers) > 0 {
			stat.Percentage = float64(stat.Count) / float64(len(customers)) * 100
		}
		stats = append(stats, stat)
	}
	return stats
}

// leaderboard returns top customers by points, ties broken by earliest join date
func (s *reportService) leaderboard(customers []*model.Customer) []*model.Customer {
	top := make([]*model.Customer, len(customers))
	copy(top, customers)

	sort.Slice(top, func(i, j int) bool {
		if top[i].Points != top[j].Points {
			return top[i].Points > top[j].Points
		}
		return top[i].JoinDate.Before(top[j].JoinDate)
	})

	if len(top) > s.topCustomers {
		top = top[:s.topCustomers]
	}
	return top
}
