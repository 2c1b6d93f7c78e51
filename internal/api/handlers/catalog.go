package handlers

import (
	"net/http"

	"shipment-service/internal/api/dto"
	"shipment-service/internal/ports"

	"go.uber.org/zap"
)

// CatalogHandler exposes read-only catalog listing endpoints.
type CatalogHandler struct {
	Repo   ports.CatalogRepository
	Logger *zap.Logger
}

func (h *CatalogHandler) ListPackageTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Repo.ListPackageTypes(r.Context())
	if err != nil {
		h.Logger.Error("list package types failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPackageTypesResponse{
		PackageTypes: make([]dto.PackageTypeResponse, 0, len(types)),
	}
	for _, t := range types {
		res.PackageTypes = append(res.PackageTypes, dto.PackageTypeResponse{
			Code:        t.Code,
			DisplayName: t.DisplayName,
			Description: t.Description,
			MaxWeightKg: t.MaxWeightKg,
			BasePrice:   t.BasePrice,
			CostPerKg:   t.CostPerKg,
		})
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.Repo.ListPaymentMethods(r.Context())
	if err != nil {
		h.Logger.Error("list payment methods failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPaymentMethodsResponse{
		PaymentMethods: make([]dto.PaymentMethodResponse, 0, len(methods)),
	}
	for _, m := range methods {
		res.PaymentMethods = append(res.PaymentMethods, dto.PaymentMethodResponse{
			Code:                 m.Code,
			DisplayName:          m.DisplayName,
			Description:          m.Description,
			ProcessingFeePercent: m.ProcessingFeePercent,
			FixedFee:             m.FixedFee,
			RequiresCard:         m.RequiresCard,
		})
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.Repo.ListDepartments(r.Context())
	if err != nil {
		h.Logger.Error("list departments failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDepartmentsResponse{
		Departments: make([]dto.DepartmentResponse, 0, len(depts)),
	}
	for _, d := range depts {
		res.Departments = append(res.Departments, dto.DepartmentResponse{
			Code:             d.Code,
			Name:             d.Name,
			Region:           d.Region,
			ShippingZone:     d.ShippingZone,
			DeliveryBaseCost: d.DeliveryBaseCost,
		})
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) ListServiceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Repo.ListServiceTypes(r.Context())
	if err != nil {
		h.Logger.Error("list service types failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListServiceTypesResponse{
		ServiceTypes: make([]dto.ServiceTypeResponse, 0, len(types)),
	}
	for _, s := range types {
		res.ServiceTypes = append(res.ServiceTypes, dto.ServiceTypeResponse{
			Code:           s.Code,
			DisplayName:    s.DisplayName,
			Description:    s.Description,
			CostMultiplier: s.CostMultiplier,
			DeliveryDays:   s.DeliveryDays,
		})
	}

	writeJSON(w, http.StatusOK, res)
}
