package dto

import (
	"time"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
)

// CreateFiscalPeriodRequest defines a new, open accounting window.
type CreateFiscalPeriodRequest struct {
	Name      string    `json:"name" binding:"required,max=100"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
}

// UpdateFiscalPeriodStatusRequest opens, soft-closes or closes a period.
type UpdateFiscalPeriodStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN SOFT_CLOSE CLOSED"`
}

// FiscalPeriodResponse defines the data returned for a fiscal period.
type FiscalPeriodResponse struct {
	FiscalPeriodID string    `json:"fiscalPeriodID"`
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Status         string    `json:"status"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy  string    `json:"lastUpdatedBy"`
}

// ToFiscalPeriodResponse converts domain.FiscalPeriod to DTO.
func ToFiscalPeriodResponse(p *domain.FiscalPeriod) FiscalPeriodResponse {
	return FiscalPeriodResponse{
		FiscalPeriodID: p.FiscalPeriodID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Status:         string(p.Status),
		LastUpdatedAt:  p.LastUpdatedAt,
		LastUpdatedBy:  p.LastUpdatedBy,
	}
}

// ToListFiscalPeriodResponse converts periods to DTOs.
func ToListFiscalPeriodResponse(ps []domain.FiscalPeriod) []FiscalPeriodResponse {
	out := make([]FiscalPeriodResponse, len(ps))
	for i := range ps {
		out[i] = ToFiscalPeriodResponse(&ps[i])
	}
	return out
}
