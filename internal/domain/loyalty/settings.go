package loyalty

import (
	"errors"
	"math"
)

// Settings is an immutable snapshot of program configuration. Ledger
// operations receive the whole snapshot, so a classification never
// observes a half-updated conversion rate or tier table.
type Settings struct {
	PointsPerCurrencyUnit float64
	MinimumRedeemPoints   int
	Tiers                 TierTable
}

// NewSettings validates and builds a settings snapshot.
// MinimumRedeemPoints is advisory and is not enforced by any ledger path.
func NewSettings(pointsPerCurrencyUnit float64, minimumRedeemPoints int, tiers TierTable) (Settings, error) {
	if pointsPerCurrencyUnit <= 0 {
		return Settings{}, errors.New("points per currency unit must be positive")
	}

	if minimumRedeemPoints < 0 {
		return Settings{}, errors.New("minimum redeem points must not be negative")
	}

	return Settings{
		PointsPerCurrencyUnit: pointsPerCurrencyUnit,
		MinimumRedeemPoints:   minimumRedeemPoints,
		Tiers:                 tiers,
	}, nil
}

// PointsForPurchase converts purchase amount to points using the
// configured rate, rounding half-up for non-integer products
func (s Settings) PointsForPurchase(amount float64) int {
	return int(math.Floor(amount*s.PointsPerCurrencyUnit + 0.5))
}
