package core

import "time"

// SetSubscriptionClock replaces the clock of a service built by
// NewSubscriptionService.
func SetSubscriptionClock(svc SubscriptionService, now func() time.Time) {
	svc.(*subscriptionService).now = now
}
