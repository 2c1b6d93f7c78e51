package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shipment-service/internal/api/dto"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuoteHandler(t *testing.T) {
	h := &QuoteHandler{Catalog: newFakeCatalog(), Logger: zap.NewNop()}

	body := `{
		"packageTypeId": "paquete_pequeno",
		"weight": 7.0,
		"destinationDepartment": "Guatemala",
		"serviceType": "standard"
	}`
	req := httptest.NewRequest(http.MethodPost, "/config/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Quote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Equal(t, 35.00, res.Pricing.Subtotal)
	require.Equal(t, 4.20, res.Pricing.TaxAmount)
	require.Equal(t, 39.20, res.Pricing.TotalAmount)
	require.Equal(t, "GTQ", res.Pricing.Currency)
	require.Equal(t, 1, res.EstimatedDeliveryDays)
	require.Equal(t, "paquete_pequeno", res.PackageType.Code)
	require.Equal(t, "A", res.Destination.ShippingZone)
}

func TestQuoteHandlerValidation(t *testing.T) {
	h := &QuoteHandler{Catalog: newFakeCatalog(), Logger: zap.NewNop()}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"unknown field", `{"packageTypeId":"paquete_pequeno","weight":1,"destinationDepartment":"Guatemala","bogus":true}`, http.StatusBadRequest},
		{"two json objects", `{"packageTypeId":"paquete_pequeno","weight":1,"destinationDepartment":"Guatemala"}{}`, http.StatusBadRequest},
		{"missing package type", `{"weight":1,"destinationDepartment":"Guatemala"}`, http.StatusBadRequest},
		{"zero weight", `{"packageTypeId":"paquete_pequeno","destinationDepartment":"Guatemala"}`, http.StatusBadRequest},
		{"unknown package type", `{"packageTypeId":"caja_gigante","weight":1,"destinationDepartment":"Guatemala"}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/config/quote", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.Quote(rec, req)

			require.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestQuoteHandlerUnknownDepartmentStillQuotes(t *testing.T) {
	h := &QuoteHandler{Catalog: newFakeCatalog(), Logger: zap.NewNop()}

	body := `{"packageTypeId":"paquete_pequeno","weight":1,"destinationDepartment":"Petén"}`
	req := httptest.NewRequest(http.MethodPost, "/config/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Quote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 75.00, res.Pricing.DistanceCharge)
	require.Empty(t, res.Destination.ShippingZone)
}
