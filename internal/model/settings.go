package model

// ProgramSettings is admin-editable loyalty program configuration.
// MinimumRedeemPoints is advisory only and is never read by ledger paths.
type ProgramSettings struct {
	PointsPerCurrencyUnit float64 `json:"pointsPerCurrencyUnit"`
	MinimumRedeemPoints   int     `json:"minimumRedeemPoints"`
}
