package cache

import (
	"context"
	"encoding/json"
	"time"

	"shipment-service/internal/domain"
	"shipment-service/internal/ports"
)

// CachedCatalog is a read-through decorator over a CatalogRepository.
// Catalog listings are hot and effectively static between reseeds, so
// they are served from the cache for a TTL. Lookups by code/name stay on
// the store: quotation correctness must not depend on cache freshness.
//
// Cache failures degrade to the inner repository, never to an error.
type CachedCatalog struct {
	Inner ports.CatalogRepository
	Cache ports.KVCache
	TTL   time.Duration
}

func NewCachedCatalog(inner ports.CatalogRepository, kv ports.KVCache, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{Inner: inner, Cache: kv, TTL: ttl}
}

func (c *CachedCatalog) GetPackageType(ctx context.Context, code string) (*domain.PackageType, error) {
	return c.Inner.GetPackageType(ctx, code)
}

func (c *CachedCatalog) GetPaymentMethod(ctx context.Context, code string) (*domain.PaymentMethod, error) {
	return c.Inner.GetPaymentMethod(ctx, code)
}

func (c *CachedCatalog) GetDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	return c.Inner.GetDepartmentByName(ctx, name)
}

func (c *CachedCatalog) ListPackageTypes(ctx context.Context) ([]*domain.PackageType, error) {
	return listThrough(ctx, c, "package-types", c.Inner.ListPackageTypes)
}

func (c *CachedCatalog) ListPaymentMethods(ctx context.Context) ([]*domain.PaymentMethod, error) {
	return listThrough(ctx, c, "payment-methods", c.Inner.ListPaymentMethods)
}

func (c *CachedCatalog) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	return listThrough(ctx, c, "departments", c.Inner.ListDepartments)
}

func (c *CachedCatalog) ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	return listThrough(ctx, c, "service-types", c.Inner.ListServiceTypes)
}

func listThrough[T any](
	ctx context.Context,
	c *CachedCatalog,
	key string,
	load func(context.Context) ([]*T, error),
) ([]*T, error) {
	if raw, err := c.Cache.Get(ctx, key); err == nil {
		var out []*T
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		// Corrupt entry: fall through and overwrite below.
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(out); err == nil {
		_ = c.Cache.Set(ctx, key, raw, c.TTL)
	}
	return out, nil
}
