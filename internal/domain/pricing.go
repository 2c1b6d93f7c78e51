package domain

// Currency is a pass-through field on persisted records, never computed.
const Currency = "GTQ"

// Itemized shipping cost. All fields are rounded to two decimals;
// TotalAmount == Subtotal + TaxAmount and Subtotal is the sum of the five
// charge components.
type PriceBreakdown struct {
	BasePrice      float64
	WeightCharge   float64
	DistanceCharge float64
	ServiceCharge  float64
	PaymentFee     float64
	Subtotal       float64
	TaxAmount      float64
	TotalAmount    float64
}
