package handlers

import (
	"context"
	"time"

	"shipment-service/internal/domain"
	"shipment-service/internal/ports"
)

func floatPtr(v float64) *float64 { return &v }

type fakeCatalog struct {
	packageTypes   map[string]*domain.PackageType
	paymentMethods map[string]*domain.PaymentMethod
	departments    map[string]*domain.Department
	listErr        error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		packageTypes: map[string]*domain.PackageType{
			"paquete_pequeno": {
				Code:        "paquete_pequeno",
				DisplayName: "Paquete Pequeño",
				MaxWeightKg: 5.0,
				BasePrice:   25.00,
				CostPerKg:   3.00,
				Active:      true,
			},
		},
		paymentMethods: map[string]*domain.PaymentMethod{
			"efectivo_origen": {Code: "efectivo_origen", DisplayName: "Efectivo en Origen", Active: true},
		},
		departments: map[string]*domain.Department{
			"Guatemala": {
				Code: "01", Name: "Guatemala", ShippingZone: "A",
				DeliveryBaseCost: floatPtr(0), Active: true,
			},
		},
	}
}

func (f *fakeCatalog) GetPackageType(_ context.Context, code string) (*domain.PackageType, error) {
	if p, ok := f.packageTypes[code]; ok {
		return p, nil
	}
	return nil, domain.ErrPackageTypeNotFound
}

func (f *fakeCatalog) GetPaymentMethod(_ context.Context, code string) (*domain.PaymentMethod, error) {
	if m, ok := f.paymentMethods[code]; ok {
		return m, nil
	}
	return nil, domain.ErrPaymentMethodNotFound
}

func (f *fakeCatalog) GetDepartmentByName(_ context.Context, name string) (*domain.Department, error) {
	if d, ok := f.departments[name]; ok {
		return d, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (f *fakeCatalog) ListPackageTypes(context.Context) ([]*domain.PackageType, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.PackageType, 0, len(f.packageTypes))
	for _, p := range f.packageTypes {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCatalog) ListPaymentMethods(context.Context) ([]*domain.PaymentMethod, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.PaymentMethod, 0, len(f.paymentMethods))
	for _, m := range f.paymentMethods {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeCatalog) ListDepartments(context.Context) ([]*domain.Department, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Department, 0, len(f.departments))
	for _, d := range f.departments {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeCatalog) ListServiceTypes(context.Context) ([]*domain.ServiceType, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []*domain.ServiceType{
		{Code: "standard", DisplayName: "Envío Estándar", CostMultiplier: 1.0, DeliveryDays: 5, Active: true},
		{Code: "express", DisplayName: "Envío Express", CostMultiplier: 1.5, DeliveryDays: 2, Active: true},
	}, nil
}

type fakeStore struct {
	quotations []*domain.Quotation
	orders     []*domain.Order
	shipments  []*domain.Shipment
	events     []*domain.TrackingEvent
}

func (f *fakeStore) CreateQuotation(_ context.Context, q *domain.Quotation) (int64, error) {
	f.quotations = append(f.quotations, q)
	return int64(len(f.quotations)), nil
}

func (f *fakeStore) CreateOrder(_ context.Context, o *domain.Order) (int64, error) {
	f.orders = append(f.orders, o)
	return int64(len(f.orders)), nil
}

func (f *fakeStore) CreateShipment(_ context.Context, s *domain.Shipment) (int64, error) {
	f.shipments = append(f.shipments, s)
	return int64(len(f.shipments)), nil
}

func (f *fakeStore) AppendTrackingEvent(_ context.Context, ev *domain.TrackingEvent) (int64, error) {
	f.events = append(f.events, ev)
	return int64(len(f.events)), nil
}

func (f *fakeStore) GetShipmentByTrackingNumber(_ context.Context, trackingNumber string) (*domain.Shipment, error) {
	for _, s := range f.shipments {
		if s.TrackingNumber == trackingNumber {
			return s, nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

func (f *fakeStore) ListTrackingEvents(_ context.Context, trackingNumber string) ([]*domain.TrackingEvent, error) {
	var out []*domain.TrackingEvent
	for _, ev := range f.events {
		if ev.TrackingNumber == trackingNumber {
			out = append(out, ev)
		}
	}
	return out, nil
}

// memCache is an in-memory KVCache for handler tests.
type memCache struct {
	entries map[string][]byte
	sets    int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	return nil, ports.ErrCacheMiss
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	c.sets++
	return nil
}
