package services

// EstimateDeliveryDays returns the estimated delivery time in days for a
// destination department and delivery speed tier. Unknown departments get
// three base days; unknown tiers get no offset. The estimate never drops
// below one day regardless of tier.
func EstimateDeliveryDays(departmentName, serviceType string) int {
	baseDays, ok := departmentBaseDays[departmentName]
	if !ok {
		baseDays = 3
	}

	days := baseDays + serviceDayModifiers[serviceType]
	if days < 1 {
		days = 1
	}
	return days
}
