package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shipment-service/internal/domain"
	"shipment-service/internal/ports"
)

// Fixed origin of every shipment: the company's operations center.
const (
	originDepartment   = "Guatemala"
	originMunicipality = "Guatemala"
	originZone         = "Zona 1"
	originFacility     = "Centro de Operaciones"
)

// How long a quotation stays valid, and how long the customer has to pay.
const (
	quotationValidity = 7 * 24 * time.Hour
	paymentDue        = 24 * time.Hour
)

// priceFn is the pricing entry point; indirected so the fallback policy
// below is testable against a forced failure.
var priceFn = CalculatePrice

type QuoteRequest struct {
	PackageTypeID           string
	WeightKg                float64
	DeclaredValue           float64
	DestinationDepartment   string
	DestinationMunicipality string
	ServiceType             string
	PaymentMethodID         string
}

type QuoteResult struct {
	Pricing               domain.PriceBreakdown
	EstimatedDeliveryDays int
	EstimatedDeliveryDate time.Time
	PackageType           *domain.PackageType
	Department            *domain.Department
	ServiceType           string
}

// Quote prices a prospective shipment without persisting anything.
// Unlike shipment creation there is no record to unblock, so pricing
// failures here are always loud.
func Quote(ctx context.Context, req QuoteRequest, catalog ports.CatalogRepository) (*QuoteResult, error) {
	if strings.TrimSpace(req.PackageTypeID) == "" {
		return nil, domain.NewValidationError("packageTypeId", "is required")
	}
	if req.WeightKg <= 0 {
		return nil, domain.NewValidationError("weight", "must be greater than zero")
	}
	if strings.TrimSpace(req.DestinationDepartment) == "" {
		return nil, domain.NewValidationError("destinationDepartment", "is required")
	}

	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = "standard"
	}

	pkgType, err := catalog.GetPackageType(ctx, req.PackageTypeID)
	if err != nil {
		return nil, fmt.Errorf("quote: resolve package type %q: %w", req.PackageTypeID, err)
	}

	dept, err := resolveDepartment(ctx, catalog, req.DestinationDepartment)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}

	// An unresolvable payment method quotes with zero fees rather than
	// failing: the quote is non-binding and the method is optional here.
	var method *domain.PaymentMethod
	if req.PaymentMethodID != "" {
		method, err = catalog.GetPaymentMethod(ctx, req.PaymentMethodID)
		if err != nil && !errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return nil, fmt.Errorf("quote: resolve payment method %q: %w", req.PaymentMethodID, err)
		}
	}

	pricing, err := priceFn(PriceInput{
		PackageType:   pkgType,
		PaymentMethod: method,
		Department:    dept,
		WeightKg:      req.WeightKg,
		DeclaredValue: req.DeclaredValue,
		ServiceType:   serviceType,
	})
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}

	days := EstimateDeliveryDays(req.DestinationDepartment, serviceType)

	return &QuoteResult{
		Pricing:               pricing,
		EstimatedDeliveryDays: days,
		EstimatedDeliveryDate: time.Now().Add(time.Duration(days) * 24 * time.Hour),
		PackageType:           pkgType,
		Department:            dept,
		ServiceType:           serviceType,
	}, nil
}

type CreateShipmentRequest struct {
	ReceiverName         string
	ReceiverEmail        string
	ReceiverPhone        string
	ReceiverReference    string
	ReceiverDepartment   string
	ReceiverMunicipality string
	ReceiverVillage      string
	ReceiverStreet       string

	PackageTypeID      string
	WeightKg           float64
	PackageDescription string
	DeclaredValue      float64

	PaymentMethodID string
	ServiceType     string
	Priority        string
	Notes           string
}

type CreateShipmentResult struct {
	Quotation             *domain.Quotation
	Order                 *domain.Order
	Shipment              *domain.Shipment
	Pricing               domain.PriceBreakdown
	EstimatedDeliveryDays int
	// PricingFallback is true when the default quote was substituted for
	// a failed calculation.
	PricingFallback bool
}

type CreateShipmentOptions struct {
	// StrictPricing fails shipment creation on a pricing error instead of
	// substituting the default quote.
	StrictPricing bool
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// CreateShipment runs the full intake flow: validate the request, resolve
// catalog references, price, estimate delivery, then persist the
// quotation, order, shipment and initial tracking event in order.
func CreateShipment(
	ctx context.Context,
	req CreateShipmentRequest,
	catalog ports.CatalogRepository,
	store ports.ShipmentRepository,
	opts CreateShipmentOptions,
) (*CreateShipmentResult, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	if opts.Now != nil {
		now = opts.Now()
	}

	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = "standard"
	}
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	pkgType, err := catalog.GetPackageType(ctx, req.PackageTypeID)
	if err != nil {
		return nil, fmt.Errorf("create shipment: resolve package type %q: %w", req.PackageTypeID, err)
	}

	method, err := catalog.GetPaymentMethod(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, fmt.Errorf("create shipment: resolve payment method %q: %w", req.PaymentMethodID, err)
	}

	dept, err := resolveDepartment(ctx, catalog, req.ReceiverDepartment)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	fallback := false
	pricing, err := priceFn(PriceInput{
		PackageType:   pkgType,
		PaymentMethod: method,
		Department:    dept,
		WeightKg:      req.WeightKg,
		DeclaredValue: req.DeclaredValue,
		ServiceType:   serviceType,
	})
	if err != nil {
		if opts.StrictPricing {
			return nil, fmt.Errorf("create shipment: price: %w", err)
		}
		// Never block intake on a pricing failure: substitute the known
		// default quote and continue.
		pricing = DefaultBreakdown()
		fallback = true
	}

	days := EstimateDeliveryDays(req.ReceiverDepartment, serviceType)
	estimatedDelivery := now.Add(time.Duration(days) * 24 * time.Hour)

	destination := domain.Address{
		Department:   req.ReceiverDepartment,
		Municipality: req.ReceiverMunicipality,
		Zone:         req.ReceiverVillage,
		Street:       req.ReceiverStreet,
		Reference:    req.ReceiverReference,
	}
	recipient := domain.Recipient{
		Name:    req.ReceiverName,
		Email:   req.ReceiverEmail,
		Phone:   req.ReceiverPhone,
		Address: destination,
	}

	quotation := &domain.Quotation{
		QuotationNumber:       NewQuotationNumber(now),
		Status:                domain.QuotationStatusAccepted,
		Destination:           destination,
		PackageTypeCode:       pkgType.Code,
		WeightKg:              req.WeightKg,
		DeclaredValue:         req.DeclaredValue,
		PackageDescription:    req.PackageDescription,
		ServiceType:           serviceType,
		EstimatedDeliveryDays: days,
		Pricing:               pricing,
		Currency:              domain.Currency,
		ValidityDate:          now.Add(quotationValidity),
		Notes:                 req.Notes,
		CreatedAt:             now,
	}
	quotation.ID, err = store.CreateQuotation(ctx, quotation)
	if err != nil {
		return nil, fmt.Errorf("create shipment: persist quotation: %w", err)
	}

	order := &domain.Order{
		OrderNumber:       NewOrderNumber(now),
		QuotationID:       quotation.ID,
		Status:            domain.OrderStatusConfirmed,
		PaymentStatus:     domain.PaymentStatusPending,
		PaymentMethodCode: method.Code,
		PaymentDueDate:    now.Add(paymentDue),
		Recipient:         recipient,
		TotalAmount:       pricing.TotalAmount,
		Currency:          domain.Currency,
		CreatedAt:         now,
	}
	order.ID, err = store.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create shipment: persist order: %w", err)
	}

	shipment := &domain.Shipment{
		TrackingNumber:        NewTrackingNumber(now),
		OrderID:               order.ID,
		QuotationID:           quotation.ID,
		Status:                domain.ShipmentStatusPending,
		Priority:              priority,
		ServiceType:           serviceType,
		Recipient:             recipient,
		PackageTypeCode:       pkgType.Code,
		WeightKg:              req.WeightKg,
		DeclaredValue:         req.DeclaredValue,
		PackageDescription:    req.PackageDescription,
		EstimatedDeliveryDate: estimatedDelivery,
		CreatedAt:             now,
	}
	shipment.ID, err = store.CreateShipment(ctx, shipment)
	if err != nil {
		return nil, fmt.Errorf("create shipment: persist shipment: %w", err)
	}

	event := &domain.TrackingEvent{
		ShipmentID:       shipment.ID,
		TrackingNumber:   shipment.TrackingNumber,
		Status:           domain.ShipmentStatusPending,
		StatusDetail:     "Envío registrado - Pendiente de recolección",
		EventType:        "created",
		EventDescription: "Envío creado y registrado en el sistema",
		Location: domain.Address{
			Department:   originDepartment,
			Municipality: originMunicipality,
			Zone:         originZone,
		},
		Facility:   originFacility,
		OccurredAt: now,
	}
	if _, err := store.AppendTrackingEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("create shipment: persist tracking event: %w", err)
	}

	return &CreateShipmentResult{
		Quotation:             quotation,
		Order:                 order,
		Shipment:              shipment,
		Pricing:               pricing,
		EstimatedDeliveryDays: days,
		PricingFallback:       fallback,
	}, nil
}

func validateCreateRequest(req CreateShipmentRequest) error {
	switch {
	case strings.TrimSpace(req.ReceiverName) == "":
		return domain.NewValidationError("receiverName", "is required")
	case strings.TrimSpace(req.ReceiverEmail) == "":
		return domain.NewValidationError("receiverEmail", "is required")
	case strings.TrimSpace(req.ReceiverPhone) == "":
		return domain.NewValidationError("receiverPhone", "is required")
	case strings.TrimSpace(req.ReceiverDepartment) == "":
		return domain.NewValidationError("receiverDepartment", "is required")
	case strings.TrimSpace(req.ReceiverMunicipality) == "":
		return domain.NewValidationError("receiverMunicipality", "is required")
	case strings.TrimSpace(req.PackageTypeID) == "":
		return domain.NewValidationError("packageTypeId", "is required")
	case req.WeightKg <= 0:
		return domain.NewValidationError("packageWeight", "must be greater than zero")
	case strings.TrimSpace(req.PackageDescription) == "":
		return domain.NewValidationError("packageDescription", "is required")
	case req.DeclaredValue < 0:
		return domain.NewValidationError("packageValue", "must not be negative")
	case strings.TrimSpace(req.PaymentMethodID) == "":
		return domain.NewValidationError("paymentMethodId", "is required")
	}
	return nil
}

// resolveDepartment treats an unknown destination as a soft miss: the
// calculator falls back to its surcharge table. Store failures still
// propagate.
func resolveDepartment(ctx context.Context, catalog ports.CatalogRepository, name string) (*domain.Department, error) {
	dept, err := catalog.GetDepartmentByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrDepartmentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve department %q: %w", name, err)
	}
	return dept, nil
}
