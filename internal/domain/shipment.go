package domain

import "time"

// Shipment lifecycle statuses. Tracking history is append-only: a status
// change is recorded as a new TrackingEvent, never by rewriting one.
const (
	ShipmentStatusPending   = "pending"
	ShipmentStatusPickedUp  = "picked_up"
	ShipmentStatusInTransit = "in_transit"
	ShipmentStatusDelivered = "delivered"

	QuotationStatusAccepted = "accepted"
	OrderStatusConfirmed    = "confirmed"
	PaymentStatusPending    = "pending"
)

type Address struct {
	Department   string
	Municipality string
	Zone         string
	Street       string
	Reference    string
}

type Recipient struct {
	Name    string
	Email   string
	Phone   string
	Address Address
}

// Non-binding price estimate. Becomes an order/shipment once accepted.
type Quotation struct {
	ID                    int64
	QuotationNumber       string
	Status                string
	Destination           Address
	PackageTypeCode       string
	WeightKg              float64
	DeclaredValue         float64
	PackageDescription    string
	ServiceType           string
	EstimatedDeliveryDays int
	Pricing               PriceBreakdown
	Currency              string
	ValidityDate          time.Time
	Notes                 string
	CreatedAt             time.Time
}

type Order struct {
	ID                int64
	OrderNumber       string
	QuotationID       int64
	Status            string
	PaymentStatus     string
	PaymentMethodCode string
	PaymentDueDate    time.Time
	Recipient         Recipient
	TotalAmount       float64
	Currency          string
	CreatedAt         time.Time
}

type Shipment struct {
	ID                    int64
	TrackingNumber        string
	OrderID               int64
	QuotationID           int64
	Status                string
	Priority              string
	ServiceType           string
	Recipient             Recipient
	PackageTypeCode       string
	WeightKg              float64
	DeclaredValue         float64
	PackageDescription    string
	EstimatedDeliveryDate time.Time
	CreatedAt             time.Time
}

// One entry in a shipment's tracking history.
type TrackingEvent struct {
	ID               int64
	ShipmentID       int64
	TrackingNumber   string
	Status           string
	StatusDetail     string
	EventType        string
	EventDescription string
	Location         Address
	Facility         string
	OccurredAt       time.Time
}
