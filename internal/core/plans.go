package core

import "gptsolver-backend-go/internal/models"

// subscriptionPeriodDays is how long a new subscription stays active.
const subscriptionPeriodDays = 30

var planCatalog = map[string]models.Plan{
	"basic": {TokensLimit: 50_000, ProcessImages: false, AccessGoogle: false, Price: 0},
	"plus":  {TokensLimit: 250_000, ProcessImages: true, AccessGoogle: false, Price: 19.9},
	"pro":   {TokensLimit: 1_000_000, ProcessImages: true, AccessGoogle: true, Price: 49.9},
}

// Plans returns a copy of the plan catalog.
func Plans() map[string]models.Plan {
	out := make(map[string]models.Plan, len(planCatalog))
	for name, plan := range planCatalog {
		out[name] = plan
	}
	return out
}
