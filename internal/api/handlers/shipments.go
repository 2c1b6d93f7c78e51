package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"shipment-service/internal/api/dto"
	"shipment-service/internal/domain"
	"shipment-service/internal/ports"
	"shipment-service/internal/services"

	"go.uber.org/zap"
)

// ShipmentHandler runs the shipment intake flow.
type ShipmentHandler struct {
	Catalog       ports.CatalogRepository
	Store         ports.ShipmentRepository
	StrictPricing bool
	Logger        *zap.Logger
}

func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShipmentRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	result, err := services.CreateShipment(r.Context(), services.CreateShipmentRequest{
		ReceiverName:         req.ReceiverName,
		ReceiverEmail:        req.ReceiverEmail,
		ReceiverPhone:        req.ReceiverPhone,
		ReceiverReference:    req.ReceiverReference,
		ReceiverDepartment:   req.ReceiverDepartment,
		ReceiverMunicipality: req.ReceiverMunicipality,
		ReceiverVillage:      req.ReceiverVillage,
		ReceiverStreet:       req.ReceiverStreet,
		PackageTypeID:        req.PackageTypeID,
		WeightKg:             req.PackageWeight,
		PackageDescription:   req.PackageDescription,
		DeclaredValue:        req.PackageValue,
		PaymentMethodID:      req.PaymentMethodID,
		ServiceType:          req.ServiceType,
		Priority:             req.Priority,
		Notes:                req.Notes,
	}, h.Catalog, h.Store, services.CreateShipmentOptions{
		StrictPricing: h.StrictPricing,
	})
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	if result.PricingFallback {
		h.Logger.Warn("pricing failed, default quote substituted",
			zap.String("tracking_number", result.Shipment.TrackingNumber),
		)
	}

	writeJSON(w, http.StatusCreated, dto.CreateShipmentResponse{
		Shipment: dto.CreatedShipmentResponse{
			ID:                result.Shipment.ID,
			TrackingNumber:    result.Shipment.TrackingNumber,
			Status:            result.Shipment.Status,
			EstimatedDelivery: result.Shipment.EstimatedDeliveryDate,
		},
		Order: dto.CreatedOrderResponse{
			ID:          result.Order.ID,
			OrderNumber: result.Order.OrderNumber,
			TotalAmount: result.Order.TotalAmount,
		},
		Quotation: dto.CreatedQuotationResponse{
			ID:              result.Quotation.ID,
			QuotationNumber: result.Quotation.QuotationNumber,
		},
		Pricing: toPricingResponse(result.Pricing),
	})
}

func (h *ShipmentHandler) writeCreateError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrPackageTypeNotFound):
		writeError(w, http.StatusBadRequest, "invalid package type")
	case errors.Is(err, domain.ErrPaymentMethodNotFound):
		writeError(w, http.StatusBadRequest, "invalid payment method")
	case domain.IsClientError(err):
		writeError(w, http.StatusBadRequest, "invalid request")
	default:
		h.Logger.Error("create shipment failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
