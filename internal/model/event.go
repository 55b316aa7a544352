package model

import "time"

// EventType denotes kind of points-affecting operation
type EventType string

const (
	// EventCustomerEnrolled is written once when customer joins the program
	EventCustomerEnrolled EventType = "customer_enrolled"
	// EventPointsGranted is written on purchase accrual and manual grants
	EventPointsGranted EventType = "points_granted"
	// EventPointsRedeemed is written on reward redemptions and manual debits
	EventPointsRedeemed EventType = "points_redeemed"
)

// PointsEvent is append-only record of a single balance change
type PointsEvent struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Type         EventType `json:"type" bson:"type"`
	CustomerID   string    `json:"customerId" bson:"customerId"`
	CustomerName string    `json:"customerName" bson:"customerName"`
	Delta        int       `json:"delta" bson:"delta"`
	Balance      int       `json:"balance" bson:"balance"`
	Level        string    `json:"level" bson:"level"`
	RewardID     string    `json:"rewardId,omitempty" bson:"rewardId,omitempty"`
	OccurredAt   time.Time `json:"occurredAt" bson:"occurredAt"`
}
