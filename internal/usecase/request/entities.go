package request

import (
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/rifky200804/ez-request-web/internal/domain/request"
)

type CreateInput struct {
	SubmitterID   string
	Type          string
	Title         string
	Description   string
	Amount        *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	AttachmentURL string
	// Ignored for manager submitters; mandatory for staff.
	ManagerApproverID  *string
	DirectorApproverID *string
}

type RequestDTO struct {
	RequestID          string           `json:"request_id"`
	EmployeeID         string           `json:"employee_id"`
	Type               string           `json:"request_type"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	StartDate          *time.Time       `json:"start_date,omitempty"`
	EndDate            *time.Time       `json:"end_date,omitempty"`
	AttachmentURL      string           `json:"attachment_url,omitempty"`
	Status             string           `json:"status"`
	ManagerStatus      string           `json:"manager_status"`
	DirectorStatus     string           `json:"director_status"`
	ManagerApproverID  *string          `json:"manager_approver_id,omitempty"`
	DirectorApproverID *string          `json:"director_approver_id,omitempty"`
	Feedback           string           `json:"feedback,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func NewRequestDTO(sr *domain.ServiceRequest) *RequestDTO {
	return &RequestDTO{
		RequestID:          sr.RequestID,
		EmployeeID:         sr.EmployeeID,
		Type:               string(sr.Type),
		Title:              sr.Title,
		Description:        sr.Description,
		Amount:             sr.Amount,
		StartDate:          sr.StartDate,
		EndDate:            sr.EndDate,
		AttachmentURL:      sr.AttachmentURL,
		Status:             string(sr.Status),
		ManagerStatus:      string(sr.ManagerStatus),
		DirectorStatus:     string(sr.DirectorStatus),
		ManagerApproverID:  sr.ManagerApproverID,
		DirectorApproverID: sr.DirectorApproverID,
		Feedback:           sr.Feedback,
		CreatedAt:          sr.CreatedAt,
		UpdatedAt:          sr.UpdatedAt,
	}
}

func NewRequestDTOs(list []domain.ServiceRequest) []RequestDTO {
	out := make([]RequestDTO, 0, len(list))
	for i := range list {
		out = append(out, *NewRequestDTO(&list[i]))
	}
	return out
}
