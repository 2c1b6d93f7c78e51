package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipment-service/internal/domain"
)

// Postgres-backed implementation of the CatalogRepository port.
type PostgresCatalogRepository struct{ DB *sql.DB }

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

func (r *PostgresCatalogRepository) GetPackageType(ctx context.Context, code string) (*domain.PackageType, error) {
	query := `
	SELECT code, display_name, description, max_weight_kg, base_price, cost_per_kg, active
	FROM package_types
	WHERE code = $1 AND active;
	`
	var p domain.PackageType
	err := r.DB.QueryRowContext(ctx, query, code).Scan(
		&p.Code, &p.DisplayName, &p.Description, &p.MaxWeightKg, &p.BasePrice, &p.CostPerKg, &p.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPackageTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get package type %q: %w", code, err)
	}
	return &p, nil
}

func (r *PostgresCatalogRepository) GetPaymentMethod(ctx context.Context, code string) (*domain.PaymentMethod, error) {
	query := `
	SELECT code, display_name, description, processing_fee_percent, fixed_fee, requires_card, active
	FROM payment_methods
	WHERE code = $1 AND active;
	`
	var m domain.PaymentMethod
	err := r.DB.QueryRowContext(ctx, query, code).Scan(
		&m.Code, &m.DisplayName, &m.Description, &m.ProcessingFeePercent, &m.FixedFee, &m.RequiresCard, &m.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPaymentMethodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get payment method %q: %w", code, err)
	}
	return &m, nil
}

func (r *PostgresCatalogRepository) GetDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	query := `
	SELECT code, name, region, shipping_zone, delivery_base_cost, active
	FROM departments
	WHERE name = $1 AND active;
	`
	var d domain.Department
	err := r.DB.QueryRowContext(ctx, query, name).Scan(
		&d.Code, &d.Name, &d.Region, &d.ShippingZone, &d.DeliveryBaseCost, &d.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get department %q: %w", name, err)
	}
	return &d, nil
}

func (r *PostgresCatalogRepository) ListPackageTypes(ctx context.Context) ([]*domain.PackageType, error) {
	query := `
	SELECT code, display_name, description, max_weight_kg, base_price, cost_per_kg, active
	FROM package_types
	WHERE active
	ORDER BY base_price;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list package types: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.PackageType, 0, 8)
	for rows.Next() {
		var p domain.PackageType
		if err := rows.Scan(&p.Code, &p.DisplayName, &p.Description, &p.MaxWeightKg, &p.BasePrice, &p.CostPerKg, &p.Active); err != nil {
			return nil, fmt.Errorf("list package types: scan row: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list package types: row iteration: %w", err)
	}
	return out, nil
}

func (r *PostgresCatalogRepository) ListPaymentMethods(ctx context.Context) ([]*domain.PaymentMethod, error) {
	query := `
	SELECT code, display_name, description, processing_fee_percent, fixed_fee, requires_card, active
	FROM payment_methods
	WHERE active
	ORDER BY code;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.PaymentMethod, 0, 8)
	for rows.Next() {
		var m domain.PaymentMethod
		if err := rows.Scan(&m.Code, &m.DisplayName, &m.Description, &m.ProcessingFeePercent, &m.FixedFee, &m.RequiresCard, &m.Active); err != nil {
			return nil, fmt.Errorf("list payment methods: scan row: %w", err)
		}
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list payment methods: row iteration: %w", err)
	}
	return out, nil
}

func (r *PostgresCatalogRepository) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	query := `
	SELECT code, name, region, shipping_zone, delivery_base_cost, active
	FROM departments
	WHERE active
	ORDER BY name;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Department, 0, 22)
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.Code, &d.Name, &d.Region, &d.ShippingZone, &d.DeliveryBaseCost, &d.Active); err != nil {
			return nil, fmt.Errorf("list departments: scan row: %w", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list departments: row iteration: %w", err)
	}
	return out, nil
}

func (r *PostgresCatalogRepository) ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	query := `
	SELECT code, display_name, description, cost_multiplier, delivery_days, active
	FROM service_types
	WHERE active
	ORDER BY cost_multiplier;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list service types: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.ServiceType, 0, 4)
	for rows.Next() {
		var s domain.ServiceType
		if err := rows.Scan(&s.Code, &s.DisplayName, &s.Description, &s.CostMultiplier, &s.DeliveryDays, &s.Active); err != nil {
			return nil, fmt.Errorf("list service types: scan row: %w", err)
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list service types: row iteration: %w", err)
	}
	return out, nil
}
