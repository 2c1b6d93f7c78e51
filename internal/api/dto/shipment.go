package dto

import "time"

type CreateShipmentRequest struct {
	ReceiverName         string `json:"receiverName"`
	ReceiverEmail        string `json:"receiverEmail"`
	ReceiverPhone        string `json:"receiverPhone"`
	ReceiverReference    string `json:"receiverReference"`
	ReceiverDepartment   string `json:"receiverDepartment"`
	ReceiverMunicipality string `json:"receiverMunicipality"`
	ReceiverVillage      string `json:"receiverVillage"`
	ReceiverStreet       string `json:"receiverStreet"`

	PackageTypeID      string  `json:"packageTypeId"`
	PackageWeight      float64 `json:"packageWeight"`
	PackageDescription string  `json:"packageDescription"`
	PackageValue       float64 `json:"packageValue"`

	PaymentMethodID string `json:"paymentMethodId"`
	ServiceType     string `json:"serviceType"`
	Priority        string `json:"priority"`
	Notes           string `json:"notes"`
}

type CreatedShipmentResponse struct {
	ID                int64     `json:"id"`
	TrackingNumber    string    `json:"trackingNumber"`
	Status            string    `json:"status"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

type CreatedOrderResponse struct {
	ID          int64   `json:"id"`
	OrderNumber string  `json:"orderNumber"`
	TotalAmount float64 `json:"totalAmount"`
}

type CreatedQuotationResponse struct {
	ID              int64  `json:"id"`
	QuotationNumber string `json:"quotationNumber"`
}

type CreateShipmentResponse struct {
	Shipment  CreatedShipmentResponse  `json:"shipment"`
	Order     CreatedOrderResponse     `json:"order"`
	Quotation CreatedQuotationResponse `json:"quotation"`
	Pricing   PriceBreakdownResponse   `json:"pricing"`
}
