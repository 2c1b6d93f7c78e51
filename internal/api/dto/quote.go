package dto

import "time"

type QuoteRequest struct {
	PackageTypeID           string  `json:"packageTypeId"`
	Weight                  float64 `json:"weight"`
	DeclaredValue           float64 `json:"declaredValue"`
	DestinationDepartment   string  `json:"destinationDepartment"`
	DestinationMunicipality string  `json:"destinationMunicipality"`
	ServiceType             string  `json:"serviceType"`
	PaymentMethodID         string  `json:"paymentMethodId"`
}

type PriceBreakdownResponse struct {
	BasePrice      float64 `json:"basePrice"`
	WeightCharge   float64 `json:"weightCharge"`
	DistanceCharge float64 `json:"distanceCharge"`
	ServiceCharge  float64 `json:"serviceCharge"`
	PaymentFee     float64 `json:"paymentFee"`
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"taxAmount"`
	TotalAmount    float64 `json:"totalAmount"`
	Currency       string  `json:"currency"`
}

type QuoteDestinationResponse struct {
	Department   string `json:"department"`
	Municipality string `json:"municipality,omitempty"`
	ShippingZone string `json:"shippingZone,omitempty"`
}

type QuoteResponse struct {
	Pricing               PriceBreakdownResponse   `json:"pricing"`
	EstimatedDeliveryDays int                      `json:"estimatedDeliveryDays"`
	EstimatedDeliveryDate time.Time                `json:"estimatedDeliveryDate"`
	PackageType           PackageTypeResponse      `json:"packageType"`
	Destination           QuoteDestinationResponse `json:"destination"`
	ServiceType           string                   `json:"serviceType"`
}
