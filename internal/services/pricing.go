package services

import (
	"fmt"

	"shipment-service/internal/domain"

	"github.com/shopspring/decimal"
)

// Inputs for a single price calculation. PackageType is required;
// PaymentMethod and Department may be nil (no fees / fallback surcharge).
type PriceInput struct {
	PackageType   *domain.PackageType
	PaymentMethod *domain.PaymentMethod
	Department    *domain.Department
	WeightKg      float64
	DeclaredValue float64
	ServiceType   string
}

// CalculatePrice computes the itemized shipping cost for one shipment.
//
// The charge order is fixed: base price, weight overage, distance
// surcharge, service tier charge, payment processing fee, then 12% VAT on
// the subtotal. Intermediate math runs at full float precision; every
// returned field is rounded to the cent at the end.
//
// The service charge is relative to the base price only, not the running
// subtotal: a larger base price amplifies express/overnight charges while
// weight and distance charges are unaffected by tier.
func CalculatePrice(in PriceInput) (domain.PriceBreakdown, error) {
	if in.PackageType == nil {
		return domain.PriceBreakdown{}, fmt.Errorf("calculate price: %w", domain.ErrPackageTypeNotFound)
	}
	if in.WeightKg <= 0 {
		return domain.PriceBreakdown{}, domain.NewValidationError("weight", "must be greater than zero")
	}
	if in.DeclaredValue < 0 {
		return domain.PriceBreakdown{}, domain.NewValidationError("declaredValue", "must not be negative")
	}

	basePrice := in.PackageType.BasePrice

	weightCharge := 0.0
	if in.WeightKg > in.PackageType.MaxWeightKg {
		weightCharge = (in.WeightKg - in.PackageType.MaxWeightKg) * overageRatePerKg
	}

	distanceCharge := distanceChargeFor(in.Department)

	serviceCharge := basePrice * (serviceMultiplierFor(in.ServiceType) - 1.0)

	// Percent fee applies to the pre-fee subtotal; the fixed fee is added
	// afterward, not compounded.
	paymentFee := 0.0
	if in.PaymentMethod != nil {
		paymentFee = (basePrice + weightCharge + distanceCharge + serviceCharge) * (in.PaymentMethod.ProcessingFeePercent / 100)
		paymentFee += in.PaymentMethod.FixedFee
	}

	subtotal := basePrice + weightCharge + distanceCharge + serviceCharge + paymentFee
	taxAmount := subtotal * taxRate
	totalAmount := subtotal + taxAmount

	return domain.PriceBreakdown{
		BasePrice:      roundCents(basePrice),
		WeightCharge:   roundCents(weightCharge),
		DistanceCharge: roundCents(distanceCharge),
		ServiceCharge:  roundCents(serviceCharge),
		PaymentFee:     roundCents(paymentFee),
		Subtotal:       roundCents(subtotal),
		TaxAmount:      roundCents(taxAmount),
		TotalAmount:    roundCents(totalAmount),
	}, nil
}

// DefaultBreakdown is the known-good quote substituted when pricing fails
// unexpectedly and strict mode is off. Shipment creation must never block
// on a pricing failure under the default policy.
func DefaultBreakdown() domain.PriceBreakdown {
	return domain.PriceBreakdown{
		BasePrice:      25.00,
		WeightCharge:   0,
		DistanceCharge: 40.00,
		ServiceCharge:  0,
		PaymentFee:     0,
		Subtotal:       65.00,
		TaxAmount:      7.80,
		TotalAmount:    72.80,
	}
}

// roundCents rounds half away from zero at the cent.
func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
