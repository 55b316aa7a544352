package loyalty

import (
	"errors"
	"fmt"
	"sort"
)

// Tier is a named bracket of customer point balance
type Tier struct {
	ID          string `json:"id"`
	MinPoints   int    `json:"minPoints"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
}

// TierTable is an ordered set of tiers, ascending by MinPoints.
// The table is immutable once built - administration swaps the whole
// table, never edits it in place.
type TierTable struct {
	tiers []Tier
}

// NewTierTable builds a table from the given tiers. The lowest tier must
// start at zero points, thresholds must be strictly increasing and tier
// ids must be unique.
func NewTierTable(tiers []Tier) (TierTable, error) {
	if len(tiers) == 0 {
		return TierTable{}, errors.New("tier table must contain at least one tier")
	}

	ordered := make([]Tier, len(tiers))
	copy(ordered, tiers)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].MinPoints < ordered[j].MinPoints
	})

	if ordered[0].MinPoints != 0 {
		return TierTable{}, fmt.Errorf("lowest tier %s must start at 0 points", ordered[0].ID)
	}

	ids := make(map[string]struct{}, len(ordered))
	for i, t := range ordered {
		if t.ID == "" {
			return TierTable{}, errors.New("tier id must not be empty")
		}
		if _, ok := ids[t.ID]; ok {
			return TierTable{}, fmt.Errorf("duplicated tier id %s", t.ID)
		}
		ids[t.ID] = struct{}{}

		if i > 0 && ordered[i-1].MinPoints == t.MinPoints {
			return TierTable{}, fmt.Errorf("tiers %s and %s share threshold %d", ordered[i-1].ID, t.ID, t.MinPoints)
		}
	}

	return TierTable{tiers: ordered}, nil
}

// DefaultTierTable returns the stock bronze/silver/gold/platinum table
func DefaultTierTable() TierTable {
	return TierTable{tiers: []Tier{
		{ID: "bronze", MinPoints: 0, DisplayName: "Bronze", Color: "#cd7f32"},
		{ID: "silver", MinPoints: 1000, DisplayName: "Silver", Color: "#c0c0c0"},
		{ID: "gold", MinPoints: 3000, DisplayName: "Gold", Color: "#ffd700"},
		{ID: "platinum", MinPoints: 10000, DisplayName: "Platinum", Color: "#e5e4e2"},
	}}
}

// Classify returns the tier for the provided balance. Tiers are scanned
// from the highest threshold down, lower boundary inclusive. Balances
// below every threshold fall back to the lowest tier.
func (t TierTable) Classify(points int) Tier {
	for i := len(t.tiers) - 1; i >= 0; i-- {
		if points >= t.tiers[i].MinPoints {
			return t.tiers[i]
		}
	}
	return t.tiers[0]
}

// Tiers returns a copy of the ordered tier list
func (t TierTable) Tiers() []Tier {
	tiers := make([]Tier, len(t.tiers))
	copy(tiers, t.tiers)
	return tiers
}
