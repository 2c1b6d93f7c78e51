package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipment-service/internal/domain"
)

// Postgres-backed implementation of the ShipmentRepository port.
type PostgresShipmentRepository struct{ DB *sql.DB }

func NewPostgresShipmentRepository(db *sql.DB) *PostgresShipmentRepository {
	return &PostgresShipmentRepository{DB: db}
}

func (r *PostgresShipmentRepository) CreateQuotation(ctx context.Context, q *domain.Quotation) (int64, error) {
	query := `
	INSERT INTO quotations (
		quotation_number, status,
		dest_department, dest_municipality, dest_zone, dest_street, dest_reference,
		package_type_code, weight_kg, declared_value, package_description,
		service_type, estimated_delivery_days,
		base_price, weight_charge, distance_charge, service_charge, payment_fee,
		subtotal, tax_amount, total_amount, currency,
		validity_date, notes, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	RETURNING id;
	`
	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		q.QuotationNumber, q.Status,
		q.Destination.Department, q.Destination.Municipality, q.Destination.Zone, q.Destination.Street, q.Destination.Reference,
		q.PackageTypeCode, q.WeightKg, q.DeclaredValue, q.PackageDescription,
		q.ServiceType, q.EstimatedDeliveryDays,
		q.Pricing.BasePrice, q.Pricing.WeightCharge, q.Pricing.DistanceCharge, q.Pricing.ServiceCharge, q.Pricing.PaymentFee,
		q.Pricing.Subtotal, q.Pricing.TaxAmount, q.Pricing.TotalAmount, q.Currency,
		q.ValidityDate, q.Notes, q.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create quotation %q: %w", q.QuotationNumber, err)
	}
	return id, nil
}

func (r *PostgresShipmentRepository) CreateOrder(ctx context.Context, o *domain.Order) (int64, error) {
	query := `
	INSERT INTO orders (
		order_number, quotation_id, status, payment_status,
		payment_method_code, payment_due_date,
		recipient_name, recipient_email, recipient_phone,
		total_amount, currency, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING id;
	`
	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		o.OrderNumber, o.QuotationID, o.Status, o.PaymentStatus,
		o.PaymentMethodCode, o.PaymentDueDate,
		o.Recipient.Name, o.Recipient.Email, o.Recipient.Phone,
		o.TotalAmount, o.Currency, o.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create order %q: %w", o.OrderNumber, err)
	}
	return id, nil
}

func (r *PostgresShipmentRepository) CreateShipment(ctx context.Context, s *domain.Shipment) (int64, error) {
	query := `
	INSERT INTO shipments (
		tracking_number, order_id, quotation_id, status, priority, service_type,
		recipient_name, recipient_email, recipient_phone,
		dest_department, dest_municipality, dest_zone, dest_street, dest_reference,
		package_type_code, weight_kg, declared_value, package_description,
		estimated_delivery_date, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	RETURNING id;
	`
	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		s.TrackingNumber, s.OrderID, s.QuotationID, s.Status, s.Priority, s.ServiceType,
		s.Recipient.Name, s.Recipient.Email, s.Recipient.Phone,
		s.Recipient.Address.Department, s.Recipient.Address.Municipality, s.Recipient.Address.Zone, s.Recipient.Address.Street, s.Recipient.Address.Reference,
		s.PackageTypeCode, s.WeightKg, s.DeclaredValue, s.PackageDescription,
		s.EstimatedDeliveryDate, s.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create shipment %q: %w", s.TrackingNumber, err)
	}
	return id, nil
}

func (r *PostgresShipmentRepository) AppendTrackingEvent(ctx context.Context, ev *domain.TrackingEvent) (int64, error) {
	query := `
	INSERT INTO tracking_events (
		shipment_id, tracking_number, status, status_detail,
		event_type, event_description,
		loc_department, loc_municipality, loc_zone, facility,
		occurred_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id;
	`
	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		ev.ShipmentID, ev.TrackingNumber, ev.Status, ev.StatusDetail,
		ev.EventType, ev.EventDescription,
		ev.Location.Department, ev.Location.Municipality, ev.Location.Zone, ev.Facility,
		ev.OccurredAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("append tracking event for %q: %w", ev.TrackingNumber, err)
	}
	return id, nil
}

func (r *PostgresShipmentRepository) GetShipmentByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	query := `
	SELECT id, tracking_number, order_id, quotation_id, status, priority, service_type,
		recipient_name, recipient_email, recipient_phone,
		dest_department, dest_municipality, dest_zone, dest_street, dest_reference,
		package_type_code, weight_kg, declared_value, package_description,
		estimated_delivery_date, created_at
	FROM shipments
	WHERE tracking_number = $1;
	`
	var s domain.Shipment
	err := r.DB.QueryRowContext(ctx, query, trackingNumber).Scan(
		&s.ID, &s.TrackingNumber, &s.OrderID, &s.QuotationID, &s.Status, &s.Priority, &s.ServiceType,
		&s.Recipient.Name, &s.Recipient.Email, &s.Recipient.Phone,
		&s.Recipient.Address.Department, &s.Recipient.Address.Municipality, &s.Recipient.Address.Zone, &s.Recipient.Address.Street, &s.Recipient.Address.Reference,
		&s.PackageTypeCode, &s.WeightKg, &s.DeclaredValue, &s.PackageDescription,
		&s.EstimatedDeliveryDate, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get shipment %q: %w", trackingNumber, err)
	}
	return &s, nil
}

func (r *PostgresShipmentRepository) ListTrackingEvents(ctx context.Context, trackingNumber string) ([]*domain.TrackingEvent, error) {
	query := `
	SELECT id, shipment_id, tracking_number, status, status_detail,
		event_type, event_description,
		loc_department, loc_municipality, loc_zone, facility,
		occurred_at
	FROM tracking_events
	WHERE tracking_number = $1
	ORDER BY occurred_at;
	`
	rows, err := r.DB.QueryContext(ctx, query, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("list tracking events for %q: %w", trackingNumber, err)
	}
	defer rows.Close()

	events := make([]*domain.TrackingEvent, 0, 8)
	for rows.Next() {
		var ev domain.TrackingEvent
		if err := rows.Scan(
			&ev.ID, &ev.ShipmentID, &ev.TrackingNumber, &ev.Status, &ev.StatusDetail,
			&ev.EventType, &ev.EventDescription,
			&ev.Location.Department, &ev.Location.Municipality, &ev.Location.Zone, &ev.Facility,
			&ev.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("list tracking events for %q: scan row: %w", trackingNumber, err)
		}
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tracking events for %q: row iteration: %w", trackingNumber, err)
	}
	return events, nil
}
