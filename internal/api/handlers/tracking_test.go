package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shipment-service/internal/api/dto"
	"shipment-service/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func trackingRouter(h *TrackingHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/tracking/{trackingNumber}", h.Get)
	return r
}

func seededStore(t *testing.T) *fakeStore {
	t.Helper()

	store := &fakeStore{}
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	shipment := &domain.Shipment{
		TrackingNumber: "DSE260315123456ABCD",
		Status:         domain.ShipmentStatusInTransit,
		ServiceType:    "express",
		Recipient: domain.Recipient{
			Name: "María López",
			Address: domain.Address{
				Department:   "Quetzaltenango",
				Municipality: "Quetzaltenango",
			},
		},
		EstimatedDeliveryDate: now.Add(48 * time.Hour),
	}
	var err error
	shipment.ID, err = store.CreateShipment(context.Background(), shipment)
	require.NoError(t, err)

	for _, ev := range []*domain.TrackingEvent{
		{
			ShipmentID:     shipment.ID,
			TrackingNumber: shipment.TrackingNumber,
			Status:         domain.ShipmentStatusPending,
			EventType:      "created",
			OccurredAt:     now,
		},
		{
			ShipmentID:     shipment.ID,
			TrackingNumber: shipment.TrackingNumber,
			Status:         domain.ShipmentStatusInTransit,
			EventType:      "status_change",
			OccurredAt:     now.Add(6 * time.Hour),
		},
	} {
		_, err := store.AppendTrackingEvent(context.Background(), ev)
		require.NoError(t, err)
	}
	return store
}

func TestTrackingHandlerGet(t *testing.T) {
	h := &TrackingHandler{Store: seededStore(t), TTL: time.Minute, Logger: zap.NewNop()}

	req := httptest.NewRequest(http.MethodGet, "/tracking/DSE260315123456ABCD", nil)
	rec := httptest.NewRecorder()

	trackingRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.TrackingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Equal(t, "DSE260315123456ABCD", res.TrackingNumber)
	require.Equal(t, domain.ShipmentStatusInTransit, res.Status)
	require.Equal(t, "María López", res.RecipientName)
	require.Equal(t, "Quetzaltenango", res.Destination.Department)
	require.Len(t, res.Events, 2)
	require.Equal(t, "created", res.Events[0].EventType)
	require.Equal(t, "status_change", res.Events[1].EventType)
}

func TestTrackingHandlerNotFound(t *testing.T) {
	h := &TrackingHandler{Store: &fakeStore{}, TTL: time.Minute, Logger: zap.NewNop()}

	req := httptest.NewRequest(http.MethodGet, "/tracking/DSE000000000000XXXX", nil)
	rec := httptest.NewRecorder()

	trackingRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrackingHandlerCachesResponses(t *testing.T) {
	store := seededStore(t)
	kv := newMemCache()
	h := &TrackingHandler{Store: store, Cache: kv, TTL: time.Minute, Logger: zap.NewNop()}
	router := trackingRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/tracking/DSE260315123456ABCD", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, kv.sets)

	// Mutate the store: the cached response must be served unchanged.
	store.shipments[0].Status = domain.ShipmentStatusDelivered

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracking/DSE260315123456ABCD", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.TrackingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, domain.ShipmentStatusInTransit, res.Status)
	require.Equal(t, 1, kv.sets, "cache hit must not rewrite the entry")
}
