package ports

import (
	"context"

	"shipment-service/internal/domain"
)

// Port: a boundary for reading catalog reference data.
//
// Get* methods return the corresponding domain.Err*NotFound sentinel when
// no active entry matches. List* methods return only active entries.
type CatalogRepository interface {
	GetPackageType(ctx context.Context, code string) (*domain.PackageType, error)
	GetPaymentMethod(ctx context.Context, code string) (*domain.PaymentMethod, error)
	GetDepartmentByName(ctx context.Context, name string) (*domain.Department, error)

	ListPackageTypes(ctx context.Context) ([]*domain.PackageType, error)
	ListPaymentMethods(ctx context.Context) ([]*domain.PaymentMethod, error)
	ListDepartments(ctx context.Context) ([]*domain.Department, error)
	ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error)
}
