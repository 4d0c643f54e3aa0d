package subscription

// Tier is a named subscription plan with a fixed member capacity.
type Tier struct {
	Name     string
	Capacity int
}

// Tiers lists every plan the billing provider can report, ascending by
// capacity. Resolution iterates this table instead of enumerating nine
// optional fields.
var Tiers = []Tier{
	{Name: "expirybusiness_monthly_default_1person", Capacity: 1},
	{Name: "expirybusiness_monthly_default_2people", Capacity: 2},
	{Name: "expirybusiness_monthly_default_3people", Capacity: 3},
	{Name: "expirybusiness_monthly_default_5people", Capacity: 5},
	{Name: "expirybusiness_monthly_default_10people", Capacity: 10},
	{Name: "expirybusiness_monthly_default_15people", Capacity: 15},
	{Name: "expiryteams_monthly_default_30people", Capacity: 30},
	{Name: "expiryteams_monthly_default_45people", Capacity: 45},
	{Name: "expiryteams_monthly_default_60people", Capacity: 60},
}
