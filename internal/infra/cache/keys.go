package cache

import (
	"github.com/google/uuid"
)

// Key names are hierarchical by convention, not mechanism: invalidating a
// team key does not cascade to item keys, so every mutation must enumerate
// all keys a reader could have populated for the touched resource type.

func TeamProductsKey(teamID uuid.UUID) string {
	return "products-from-teams:" + teamID.String()
}

func ProductKey(teamID, productID uuid.UUID) string {
	return "product:" + teamID.String() + ":" + productID.String()
}

func TeamMembersKey(teamID uuid.UUID) string {
	return "team_users:" + teamID.String()
}

func TeamBrandsKey(teamID uuid.UUID) string {
	return "team_brands:" + teamID.String()
}

func TeamSubscriptionKey(teamID uuid.UUID) string {
	return "team_subscription:" + teamID.String()
}
