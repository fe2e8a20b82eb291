package models

// All returns every persistence model, in dependency order, for schema
// auto-migration (tests and the seed path).
func All() []interface{} {
	return []interface{}{
		&IdentityModel{},
		&PersonModel{},
		&MembershipPlanModel{},
		&SubscriptionModel{},
		&ClassSlotModel{},
		&EnrollmentModel{},
	}
}
