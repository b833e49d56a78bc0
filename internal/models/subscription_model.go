package models

import "time"

// Plan describes what a subscription type grants.
type Plan struct {
	TokensLimit   int64   `json:"tokensLimit"`
	ProcessImages bool    `json:"processImages"`
	AccessGoogle  bool    `json:"accessGoogle"`
	Price         float64 `json:"price"`
}

// Subscription is a time-boxed purchase of a plan.
type Subscription struct {
	ID               string    `json:"id" firestore:"-"`
	OwnerID          string    `json:"ownerId" firestore:"ownerId"`
	SubscriptionType string    `json:"subscriptionType" firestore:"subscriptionType"`
	Price            float64   `json:"price" firestore:"price"`
	EndDate          time.Time `json:"endDate" firestore:"endDate"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	Active           bool      `json:"active" firestore:"-"`
}

// IsActive reports whether the subscription has not yet ended at now.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.EndDate.After(now)
}
