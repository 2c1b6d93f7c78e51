package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shipment-service/internal/api/dto"
	"shipment-service/internal/domain"
	"shipment-service/internal/ports"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TrackingHandler serves shipment status lookups by tracking number.
// Responses are cached briefly: customers poll the same guide number
// repeatedly while a shipment is in transit.
type TrackingHandler struct {
	Store  ports.ShipmentRepository
	Cache  ports.KVCache
	TTL    time.Duration
	Logger *zap.Logger
}

func (h *TrackingHandler) Get(w http.ResponseWriter, r *http.Request) {
	trackingNumber := chi.URLParam(r, "trackingNumber")
	if trackingNumber == "" {
		writeError(w, http.StatusBadRequest, "tracking number is required")
		return
	}

	if h.Cache != nil {
		if raw, err := h.Cache.Get(r.Context(), trackingNumber); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(raw)
			return
		}
	}

	shipment, err := h.Store.GetShipmentByTrackingNumber(r.Context(), trackingNumber)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			writeError(w, http.StatusNotFound, "shipment not found")
			return
		}
		h.Logger.Error("tracking lookup failed",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	events, err := h.Store.ListTrackingEvents(r.Context(), trackingNumber)
	if err != nil {
		h.Logger.Error("tracking events lookup failed",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TrackingResponse{
		TrackingNumber: shipment.TrackingNumber,
		Status:         shipment.Status,
		ServiceType:    shipment.ServiceType,
		RecipientName:  shipment.Recipient.Name,
		Destination: dto.TrackingLocationResponse{
			Department:   shipment.Recipient.Address.Department,
			Municipality: shipment.Recipient.Address.Municipality,
			Zone:         shipment.Recipient.Address.Zone,
		},
		EstimatedDeliveryDate: shipment.EstimatedDeliveryDate,
		Events:                make([]dto.TrackingEventResponse, 0, len(events)),
	}
	for _, ev := range events {
		res.Events = append(res.Events, dto.TrackingEventResponse{
			Status:           ev.Status,
			StatusDetail:     ev.StatusDetail,
			EventType:        ev.EventType,
			EventDescription: ev.EventDescription,
			Location: dto.TrackingLocationResponse{
				Department:   ev.Location.Department,
				Municipality: ev.Location.Municipality,
				Zone:         ev.Location.Zone,
				Facility:     ev.Facility,
			},
			OccurredAt: ev.OccurredAt,
		})
	}

	if h.Cache != nil {
		if raw, err := json.Marshal(res); err == nil {
			_ = h.Cache.Set(r.Context(), trackingNumber, raw, h.TTL)
		}
	}

	writeJSON(w, http.StatusOK, res)
}
