package ports

import (
	"context"

	"shipment-service/internal/domain"
)

// Port: persistence boundary for the quotation/order/shipment aggregate
// and its append-only tracking history.
type ShipmentRepository interface {
	// Create* methods assign the record's ID and return it.
	CreateQuotation(ctx context.Context, q *domain.Quotation) (int64, error)
	CreateOrder(ctx context.Context, o *domain.Order) (int64, error)
	CreateShipment(ctx context.Context, s *domain.Shipment) (int64, error)
	AppendTrackingEvent(ctx context.Context, ev *domain.TrackingEvent) (int64, error)

	// GetShipmentByTrackingNumber returns domain.ErrShipmentNotFound when
	// no shipment matches.
	GetShipmentByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	ListTrackingEvents(ctx context.Context, trackingNumber string) ([]*domain.TrackingEvent, error)
}
