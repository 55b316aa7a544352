package model

// TierStat is per-tier slice of the customer base
type TierStat struct {
	TierID      string  `json:"tierId"`
	DisplayName string  `json:"displayName"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

// ProgramReport is aggregated loyalty program statistics
type ProgramReport struct {
	CustomerCount     int            `json:"customerCount"`
	TotalPoints       int            `json:"totalPoints"`
	TotalSpent        float64        `json:"totalSpent"`
	ActiveRewardCount int            `json:"activeRewardCount"`
	AveragePoints     float64        `json:"averagePoints"`
	TierDistribution  []TierStat     `json:"tierDistribution"`
	TopCustomers      []*Customer    `json:"topCustomers"`
	RecentActivity    []*PointsEvent `json:"recentActivity"`
}
