package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipment-service/internal/api/dto"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogHandlerListDepartments(t *testing.T) {
	h := &CatalogHandler{Repo: newFakeCatalog(), Logger: zap.NewNop()}

	req := httptest.NewRequest(http.MethodGet, "/config/departments", nil)
	rec := httptest.NewRecorder()

	h.ListDepartments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res dto.ListDepartmentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Departments, 1)
	require.Equal(t, "Guatemala", res.Departments[0].Name)
	require.NotNil(t, res.Departments[0].DeliveryBaseCost)
	require.Equal(t, 0.0, *res.Departments[0].DeliveryBaseCost)
}

func TestCatalogHandlerListServiceTypes(t *testing.T) {
	h := &CatalogHandler{Repo: newFakeCatalog(), Logger: zap.NewNop()}

	req := httptest.NewRequest(http.MethodGet, "/config/service-types", nil)
	rec := httptest.NewRecorder()

	h.ListServiceTypes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListServiceTypesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.ServiceTypes, 2)
	require.Equal(t, "standard", res.ServiceTypes[0].Code)
	require.Equal(t, 1.5, res.ServiceTypes[1].CostMultiplier)
}

func TestCatalogHandlerStoreFailure(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.listErr = errors.New("db down")
	h := &CatalogHandler{Repo: catalog, Logger: zap.NewNop()}

	req := httptest.NewRequest(http.MethodGet, "/config/package-types", nil)
	rec := httptest.NewRecorder()

	h.ListPackageTypes(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
