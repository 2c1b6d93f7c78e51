package dto

type PackageTypeResponse struct {
	Code        string  `json:"code"`
	DisplayName string  `json:"displayName"`
	Description string  `json:"description"`
	MaxWeightKg float64 `json:"maxWeight"`
	BasePrice   float64 `json:"basePrice"`
	CostPerKg   float64 `json:"costPerKg"`
}

type ListPackageTypesResponse struct {
	PackageTypes []PackageTypeResponse `json:"packageTypes"`
}

type PaymentMethodResponse struct {
	Code                 string  `json:"code"`
	DisplayName          string  `json:"displayName"`
	Description          string  `json:"description"`
	ProcessingFeePercent float64 `json:"processingFeePercent"`
	FixedFee             float64 `json:"fixedFee"`
	RequiresCard         bool    `json:"requiresCard"`
}

type ListPaymentMethodsResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods"`
}

type DepartmentResponse struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Region           string   `json:"region"`
	ShippingZone     string   `json:"shippingZone"`
	DeliveryBaseCost *float64 `json:"deliveryBaseCost"`
}

type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

type ServiceTypeResponse struct {
	Code           string  `json:"code"`
	DisplayName    string  `json:"displayName"`
	Description    string  `json:"description"`
	CostMultiplier float64 `json:"costMultiplier"`
	DeliveryDays   int     `json:"deliveryDays"`
}

type ListServiceTypesResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"serviceTypes"`
}
