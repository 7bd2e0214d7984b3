// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/vault-finance/backend/internal/application/usecase/alert"
)

// AlertResponse represents one derived alert in API responses.
type AlertResponse struct {
	Kind     string `json:"kind"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// AlertListResponse represents the response for listing alerts.
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
}

// ToAlertListResponse converts derived alerts to a list response.
func ToAlertListResponse(alerts []alert.Alert) AlertListResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = AlertResponse{
			Kind:     string(a.Kind),
			Priority: string(a.Priority),
			Message:  a.Message,
		}
	}
	return AlertListResponse{Alerts: responses}
}
