package dto

import "time"

type TrackingLocationResponse struct {
	Department   string `json:"department,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Zone         string `json:"zone,omitempty"`
	Facility     string `json:"facility,omitempty"`
}

type TrackingEventResponse struct {
	Status           string                   `json:"status"`
	StatusDetail     string                   `json:"statusDetail"`
	EventType        string                   `json:"eventType"`
	EventDescription string                   `json:"eventDescription"`
	Location         TrackingLocationResponse `json:"location"`
	OccurredAt       time.Time                `json:"occurredAt"`
}

type TrackingResponse struct {
	TrackingNumber        string                   `json:"trackingNumber"`
	Status                string                   `json:"status"`
	ServiceType           string                   `json:"serviceType"`
	RecipientName         string                   `json:"recipientName"`
	Destination           TrackingLocationResponse `json:"destination"`
	EstimatedDeliveryDate time.Time                `json:"estimatedDeliveryDate"`
	Events                []TrackingEventResponse  `json:"events"`
}
