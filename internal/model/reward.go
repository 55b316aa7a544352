package model

// Reward is redeemable reward catalog entity
type Reward struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	PointsRequired int    `json:"pointsRequired"`
	Category       string `json:"category"`
	Image          string `json:"image"`
	Active         bool   `json:"active"`
}
