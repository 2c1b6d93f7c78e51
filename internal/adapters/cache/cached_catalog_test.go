package cache

import (
	"context"
	"testing"
	"time"

	"shipment-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingCatalog struct {
	listCalls int
	getCalls  int
	types     []*domain.PackageType
}

func (c *countingCatalog) GetPackageType(_ context.Context, code string) (*domain.PackageType, error) {
	c.getCalls++
	for _, p := range c.types {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, domain.ErrPackageTypeNotFound
}

func (c *countingCatalog) GetPaymentMethod(context.Context, string) (*domain.PaymentMethod, error) {
	c.getCalls++
	return nil, domain.ErrPaymentMethodNotFound
}

func (c *countingCatalog) GetDepartmentByName(context.Context, string) (*domain.Department, error) {
	c.getCalls++
	return nil, domain.ErrDepartmentNotFound
}

func (c *countingCatalog) ListPackageTypes(context.Context) ([]*domain.PackageType, error) {
	c.listCalls++
	return c.types, nil
}

func (c *countingCatalog) ListPaymentMethods(context.Context) ([]*domain.PaymentMethod, error) {
	c.listCalls++
	return nil, nil
}

func (c *countingCatalog) ListDepartments(context.Context) ([]*domain.Department, error) {
	c.listCalls++
	return nil, nil
}

func (c *countingCatalog) ListServiceTypes(context.Context) ([]*domain.ServiceType, error) {
	c.listCalls++
	return nil, nil
}

func newCachedCatalog(t *testing.T, inner *countingCatalog) *CachedCatalog {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCachedCatalog(inner, NewRedisCache(client, "catalog", zap.NewNop()), time.Minute)
}

func TestCachedCatalogListServedFromCache(t *testing.T) {
	inner := &countingCatalog{
		types: []*domain.PackageType{
			{Code: "documento", DisplayName: "Documento", MaxWeightKg: 0.5, BasePrice: 15, Active: true},
			{Code: "paquete_pequeno", DisplayName: "Paquete Pequeño", MaxWeightKg: 5, BasePrice: 25, Active: true},
		},
	}
	c := newCachedCatalog(t, inner)
	ctx := context.Background()

	first, err := c.ListPackageTypes(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, 1, inner.listCalls)

	second, err := c.ListPackageTypes(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, inner.listCalls, "second listing must be served from cache")
}

func TestCachedCatalogGetBypassesCache(t *testing.T) {
	inner := &countingCatalog{
		types: []*domain.PackageType{
			{Code: "documento", MaxWeightKg: 0.5, BasePrice: 15, Active: true},
		},
	}
	c := newCachedCatalog(t, inner)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.GetPackageType(ctx, "documento")
		require.NoError(t, err)
	}
	require.Equal(t, 3, inner.getCalls, "code lookups always hit the store")
}

func TestCachedCatalogSurvivesCacheOutage(t *testing.T) {
	inner := &countingCatalog{
		types: []*domain.PackageType{
			{Code: "documento", MaxWeightKg: 0.5, BasePrice: 15, Active: true},
		},
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	c := NewCachedCatalog(inner, NewRedisCache(client, "catalog", zap.NewNop()), time.Minute)

	mr.Close()

	got, err := c.ListPackageTypes(context.Background())
	require.NoError(t, err, "cache outage must degrade to the store")
	require.Len(t, got, 1)
	require.Equal(t, 1, inner.listCalls)
}

func TestCachedCatalogCorruptEntryIsIgnored(t *testing.T) {
	inner := &countingCatalog{
		types: []*domain.PackageType{
			{Code: "documento", MaxWeightKg: 0.5, BasePrice: 15, Active: true},
		},
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	c := NewCachedCatalog(inner, NewRedisCache(client, "catalog", zap.NewNop()), time.Minute)

	require.NoError(t, mr.Set("catalog:package-types", "not-json"))

	got, err := c.ListPackageTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 1, inner.listCalls)
}
