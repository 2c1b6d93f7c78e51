package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"shipment-service/internal/domain"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDepartments := `
	CREATE TABLE IF NOT EXISTS departments (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		region TEXT NOT NULL DEFAULT '',
		shipping_zone TEXT NOT NULL DEFAULT '',
		delivery_base_cost DOUBLE PRECISION,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createPackageTypes := `
	CREATE TABLE IF NOT EXISTS package_types (
		code TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		max_weight_kg DOUBLE PRECISION NOT NULL,
		base_price DOUBLE PRECISION NOT NULL,
		cost_per_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createPaymentMethods := `
	CREATE TABLE IF NOT EXISTS payment_methods (
		code TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		processing_fee_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		fixed_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
		requires_card BOOLEAN NOT NULL DEFAULT FALSE,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createServiceTypes := `
	CREATE TABLE IF NOT EXISTS service_types (
		code TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		cost_multiplier DOUBLE PRECISION NOT NULL,
		delivery_days INTEGER NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	createQuotations := `
	CREATE TABLE IF NOT EXISTS quotations (
		id BIGSERIAL PRIMARY KEY,
		quotation_number TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL,
		dest_department TEXT NOT NULL,
		dest_municipality TEXT NOT NULL DEFAULT '',
		dest_zone TEXT NOT NULL DEFAULT '',
		dest_street TEXT NOT NULL DEFAULT '',
		dest_reference TEXT NOT NULL DEFAULT '',
		package_type_code TEXT NOT NULL REFERENCES package_types(code),
		weight_kg DOUBLE PRECISION NOT NULL,
		declared_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		package_description TEXT NOT NULL DEFAULT '',
		service_type TEXT NOT NULL,
		estimated_delivery_days INTEGER NOT NULL,
		base_price DOUBLE PRECISION NOT NULL,
		weight_charge DOUBLE PRECISION NOT NULL,
		distance_charge DOUBLE PRECISION NOT NULL,
		service_charge DOUBLE PRECISION NOT NULL,
		payment_fee DOUBLE PRECISION NOT NULL,
		subtotal DOUBLE PRECISION NOT NULL,
		tax_amount DOUBLE PRECISION NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		currency TEXT NOT NULL,
		validity_date TIMESTAMPTZ NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createOrders := `
	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		order_number TEXT NOT NULL UNIQUE,
		quotation_id BIGINT NOT NULL REFERENCES quotations(id),
		status TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		payment_method_code TEXT NOT NULL REFERENCES payment_methods(code),
		payment_due_date TIMESTAMPTZ NOT NULL,
		recipient_name TEXT NOT NULL,
		recipient_email TEXT NOT NULL DEFAULT '',
		recipient_phone TEXT NOT NULL DEFAULT '',
		total_amount DOUBLE PRECISION NOT NULL,
		currency TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createShipments := `
	CREATE TABLE IF NOT EXISTS shipments (
		id BIGSERIAL PRIMARY KEY,
		tracking_number TEXT NOT NULL UNIQUE,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		quotation_id BIGINT NOT NULL REFERENCES quotations(id),
		status TEXT NOT NULL,
		priority TEXT NOT NULL DEFAULT 'normal',
		service_type TEXT NOT NULL,
		recipient_name TEXT NOT NULL,
		recipient_email TEXT NOT NULL DEFAULT '',
		recipient_phone TEXT NOT NULL DEFAULT '',
		dest_department TEXT NOT NULL,
		dest_municipality TEXT NOT NULL DEFAULT '',
		dest_zone TEXT NOT NULL DEFAULT '',
		dest_street TEXT NOT NULL DEFAULT '',
		dest_reference TEXT NOT NULL DEFAULT '',
		package_type_code TEXT NOT NULL REFERENCES package_types(code),
		weight_kg DOUBLE PRECISION NOT NULL,
		declared_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		package_description TEXT NOT NULL DEFAULT '',
		estimated_delivery_date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createTrackingEvents := `
	CREATE TABLE IF NOT EXISTS tracking_events (
		id BIGSERIAL PRIMARY KEY,
		shipment_id BIGINT NOT NULL REFERENCES shipments(id),
		tracking_number TEXT NOT NULL,
		status TEXT NOT NULL,
		status_detail TEXT NOT NULL DEFAULT '',
		event_type TEXT NOT NULL,
		event_description TEXT NOT NULL DEFAULT '',
		loc_department TEXT NOT NULL DEFAULT '',
		loc_municipality TEXT NOT NULL DEFAULT '',
		loc_zone TEXT NOT NULL DEFAULT '',
		facility TEXT NOT NULL DEFAULT '',
		occurred_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexes := `
	CREATE INDEX IF NOT EXISTS idx_tracking_events_tracking_number
	ON tracking_events(tracking_number, occurred_at);
	`

	statements := []string{
		createDepartments,
		createPackageTypes,
		createPaymentMethods,
		createServiceTypes,
		createQuotations,
		createOrders,
		createShipments,
		createTrackingEvents,
		createIndexes,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Catalog reference data as laid out in the seed file.
type CatalogSeed struct {
	Departments []struct {
		Code             string   `json:"code"`
		Name             string   `json:"name"`
		Region           string   `json:"region"`
		ShippingZone     string   `json:"shippingZone"`
		DeliveryBaseCost *float64 `json:"deliveryBaseCost"`
	} `json:"departments"`
	PackageTypes []struct {
		Code        string  `json:"code"`
		DisplayName string  `json:"displayName"`
		Description string  `json:"description"`
		MaxWeightKg float64 `json:"maxWeightKg"`
		BasePrice   float64 `json:"basePrice"`
		CostPerKg   float64 `json:"costPerKg"`
	} `json:"packageTypes"`
	PaymentMethods []struct {
		Code                 string  `json:"code"`
		DisplayName          string  `json:"displayName"`
		Description          string  `json:"description"`
		ProcessingFeePercent float64 `json:"processingFeePercent"`
		FixedFee             float64 `json:"fixedFee"`
		RequiresCard         bool    `json:"requiresCard"`
	} `json:"paymentMethods"`
	ServiceTypes []struct {
		Code           string  `json:"code"`
		DisplayName    string  `json:"displayName"`
		Description    string  `json:"description"`
		CostMultiplier float64 `json:"costMultiplier"`
		DeliveryDays   int     `json:"deliveryDays"`
	} `json:"serviceTypes"`
}

// Populate the catalog tables from a JSON seed file. Upserts by code, so
// reseeding an existing database is safe.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalog: read %q: %w", jsonPath, err)
	}

	var seed CatalogSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("seed catalog: parse json: %w", err)
	}

	if err := validateSeed(seed); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deptQuery := `
	INSERT INTO departments (code, name, region, shipping_zone, delivery_base_cost, active)
	VALUES ($1, $2, $3, $4, $5, TRUE)
	ON CONFLICT (code) DO UPDATE SET
		name = EXCLUDED.name,
		region = EXCLUDED.region,
		shipping_zone = EXCLUDED.shipping_zone,
		delivery_base_cost = EXCLUDED.delivery_base_cost,
		active = TRUE;
	`
	for _, d := range seed.Departments {
		if _, err := tx.Exec(deptQuery, d.Code, d.Name, d.Region, d.ShippingZone, d.DeliveryBaseCost); err != nil {
			return fmt.Errorf("seed catalog: insert department %q: %w", d.Name, err)
		}
	}

	pkgQuery := `
	INSERT INTO package_types (code, display_name, description, max_weight_kg, base_price, cost_per_kg, active)
	VALUES ($1, $2, $3, $4, $5, $6, TRUE)
	ON CONFLICT (code) DO UPDATE SET
		display_name = EXCLUDED.display_name,
		description = EXCLUDED.description,
		max_weight_kg = EXCLUDED.max_weight_kg,
		base_price = EXCLUDED.base_price,
		cost_per_kg = EXCLUDED.cost_per_kg,
		active = TRUE;
	`
	for _, p := range seed.PackageTypes {
		if _, err := tx.Exec(pkgQuery, p.Code, p.DisplayName, p.Description, p.MaxWeightKg, p.BasePrice, p.CostPerKg); err != nil {
			return fmt.Errorf("seed catalog: insert package type %q: %w", p.Code, err)
		}
	}

	payQuery := `
	INSERT INTO payment_methods (code, display_name, description, processing_fee_percent, fixed_fee, requires_card, active)
	VALUES ($1, $2, $3, $4, $5, $6, TRUE)
	ON CONFLICT (code) DO UPDATE SET
		display_name = EXCLUDED.display_name,
		description = EXCLUDED.description,
		processing_fee_percent = EXCLUDED.processing_fee_percent,
		fixed_fee = EXCLUDED.fixed_fee,
		requires_card = EXCLUDED.requires_card,
		active = TRUE;
	`
	for _, m := range seed.PaymentMethods {
		if _, err := tx.Exec(payQuery, m.Code, m.DisplayName, m.Description, m.ProcessingFeePercent, m.FixedFee, m.RequiresCard); err != nil {
			return fmt.Errorf("seed catalog: insert payment method %q: %w", m.Code, err)
		}
	}

	svcQuery := `
	INSERT INTO service_types (code, display_name, description, cost_multiplier, delivery_days, active)
	VALUES ($1, $2, $3, $4, $5, TRUE)
	ON CONFLICT (code) DO UPDATE SET
		display_name = EXCLUDED.display_name,
		description = EXCLUDED.description,
		cost_multiplier = EXCLUDED.cost_multiplier,
		delivery_days = EXCLUDED.delivery_days,
		active = TRUE;
	`
	for _, s := range seed.ServiceTypes {
		if _, err := tx.Exec(svcQuery, s.Code, s.DisplayName, s.Description, s.CostMultiplier, s.DeliveryDays); err != nil {
			return fmt.Errorf("seed catalog: insert service type %q: %w", s.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}

func validateSeed(seed CatalogSeed) error {
	for i, d := range seed.Departments {
		dept := domain.Department{
			Code:             d.Code,
			Name:             strings.TrimSpace(d.Name),
			Region:           d.Region,
			ShippingZone:     d.ShippingZone,
			DeliveryBaseCost: d.DeliveryBaseCost,
		}
		if err := dept.Validate(); err != nil {
			return fmt.Errorf("department at index %d: %w", i, err)
		}
	}
	for i, p := range seed.PackageTypes {
		pt := domain.PackageType{
			Code:        p.Code,
			DisplayName: p.DisplayName,
			MaxWeightKg: p.MaxWeightKg,
			BasePrice:   p.BasePrice,
			CostPerKg:   p.CostPerKg,
		}
		if err := pt.Validate(); err != nil {
			return fmt.Errorf("package type at index %d: %w", i, err)
		}
	}
	for i, m := range seed.PaymentMethods {
		pm := domain.PaymentMethod{
			Code:                 m.Code,
			DisplayName:          m.DisplayName,
			ProcessingFeePercent: m.ProcessingFeePercent,
			FixedFee:             m.FixedFee,
		}
		if err := pm.Validate(); err != nil {
			return fmt.Errorf("payment method at index %d: %w", i, err)
		}
	}
	for i, s := range seed.ServiceTypes {
		st := domain.ServiceType{
			Code:           s.Code,
			DisplayName:    s.DisplayName,
			CostMultiplier: s.CostMultiplier,
			DeliveryDays:   s.DeliveryDays,
		}
		if err := st.Validate(); err != nil {
			return fmt.Errorf("service type at index %d: %w", i, err)
		}
	}
	return nil
}
