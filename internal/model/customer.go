package model

import "time"

// Customer is loyalty program member entity
type Customer struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	Points       int       `json:"points" bson:"points"`
	Level        string    `json:"level" bson:"level"`
	CardNumber   string    `json:"cardNumber" bson:"cardNumber"`
	CardColor    string    `json:"cardColor" bson:"cardColor"`
	TextColor    string    `json:"textColor" bson:"textColor"`
	JoinDate     time.Time `json:"joinDate" bson:"joinDate"`
	LastActivity time.Time `json:"lastActivity" bson:"lastActivity"`
	TotalSpent   float64   `json:"totalSpent" bson:"totalSpent"`
}
