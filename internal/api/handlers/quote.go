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

// QuoteHandler prices prospective shipments without persisting anything.
type QuoteHandler struct {
	Catalog ports.CatalogRepository
	Logger  *zap.Logger
}

func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest

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

	result, err := services.Quote(r.Context(), services.QuoteRequest{
		PackageTypeID:           req.PackageTypeID,
		WeightKg:                req.Weight,
		DeclaredValue:           req.DeclaredValue,
		DestinationDepartment:   req.DestinationDepartment,
		DestinationMunicipality: req.DestinationMunicipality,
		ServiceType:             req.ServiceType,
		PaymentMethodID:         req.PaymentMethodID,
	}, h.Catalog)
	if err != nil {
		h.writeQuoteError(w, err)
		return
	}

	res := dto.QuoteResponse{
		Pricing:               toPricingResponse(result.Pricing),
		EstimatedDeliveryDays: result.EstimatedDeliveryDays,
		EstimatedDeliveryDate: result.EstimatedDeliveryDate,
		PackageType: dto.PackageTypeResponse{
			Code:        result.PackageType.Code,
			DisplayName: result.PackageType.DisplayName,
			Description: result.PackageType.Description,
			MaxWeightKg: result.PackageType.MaxWeightKg,
			BasePrice:   result.PackageType.BasePrice,
			CostPerKg:   result.PackageType.CostPerKg,
		},
		Destination: dto.QuoteDestinationResponse{
			Department:   req.DestinationDepartment,
			Municipality: req.DestinationMunicipality,
		},
		ServiceType: result.ServiceType,
	}
	if result.Department != nil {
		res.Destination.ShippingZone = result.Department.ShippingZone
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *QuoteHandler) writeQuoteError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrPackageTypeNotFound):
		writeError(w, http.StatusBadRequest, "invalid package type")
	case domain.IsClientError(err):
		writeError(w, http.StatusBadRequest, "invalid request")
	default:
		h.Logger.Error("quote failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toPricingResponse(p domain.PriceBreakdown) dto.PriceBreakdownResponse {
	return dto.PriceBreakdownResponse{
		BasePrice:      p.BasePrice,
		WeightCharge:   p.WeightCharge,
		DistanceCharge: p.DistanceCharge,
		ServiceCharge:  p.ServiceCharge,
		PaymentFee:     p.PaymentFee,
		Subtotal:       p.Subtotal,
		TaxAmount:      p.TaxAmount,
		TotalAmount:    p.TotalAmount,
		Currency:       domain.Currency,
	}
}
