package domain

import "fmt"

// Catalog entities are seeded reference data. They are read-only during
// quotation and shipment creation.

// Weight/size class of a shipment and its base shipping price.
type PackageType struct {
	Code        string
	DisplayName string
	Description string
	MaxWeightKg float64
	BasePrice   float64
	CostPerKg   float64
	Active      bool
}

func (p PackageType) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("package type: code must be non-empty")
	}
	if p.MaxWeightKg <= 0 {
		return fmt.Errorf("package type %q: max weight must be > 0, got %v", p.Code, p.MaxWeightKg)
	}
	if p.BasePrice < 0 {
		return fmt.Errorf("package type %q: base price must be >= 0, got %v", p.Code, p.BasePrice)
	}
	if p.CostPerKg < 0 {
		return fmt.Errorf("package type %q: cost per kg must be >= 0, got %v", p.Code, p.CostPerKg)
	}
	return nil
}

// How a customer pays for a shipment, with its processing fees.
type PaymentMethod struct {
	Code                 string
	DisplayName          string
	Description          string
	ProcessingFeePercent float64
	FixedFee             float64
	RequiresCard         bool
	Active               bool
}

func (m PaymentMethod) Validate() error {
	if m.Code == "" {
		return fmt.Errorf("payment method: code must be non-empty")
	}
	if m.ProcessingFeePercent < 0 || m.ProcessingFeePercent > 100 {
		return fmt.Errorf("payment method %q: processing fee percent must be in [0,100], got %v", m.Code, m.ProcessingFeePercent)
	}
	if m.FixedFee < 0 {
		return fmt.Errorf("payment method %q: fixed fee must be >= 0, got %v", m.Code, m.FixedFee)
	}
	return nil
}

// Destination zone. DeliveryBaseCost is nullable: when absent the pricing
// fallback surcharge table decides the distance charge.
type Department struct {
	Code             string
	Name             string
	Region           string
	ShippingZone     string
	DeliveryBaseCost *float64
	Active           bool
}

func (d Department) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("department: name must be non-empty")
	}
	if d.DeliveryBaseCost != nil && *d.DeliveryBaseCost < 0 {
		return fmt.Errorf("department %q: delivery base cost must be >= 0, got %v", d.Name, *d.DeliveryBaseCost)
	}
	return nil
}

// Delivery speed tier. The pricing calculator uses a fixed multiplier map
// keyed by tier code; this entity exists for catalog listings.
type ServiceType struct {
	Code           string
	DisplayName    string
	Description    string
	CostMultiplier float64
	DeliveryDays   int
	Active         bool
}

func (s ServiceType) Validate() error {
	if s.Code == "" {
		return fmt.Errorf("service type: code must be non-empty")
	}
	if s.CostMultiplier <= 0 {
		return fmt.Errorf("service type %q: cost multiplier must be > 0, got %v", s.Code, s.CostMultiplier)
	}
	if s.DeliveryDays < 1 {
		return fmt.Errorf("service type %q: delivery days must be >= 1, got %d", s.Code, s.DeliveryDays)
	}
	return nil
}
