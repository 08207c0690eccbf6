package employee

import (
	"time"

	domain "github.com/rifky200804/ez-request-web/internal/domain/employee"
)

type CreateInput struct {
	FullName   string
	Position   string
	Department string
	Phone      string
	Role       string
	DateHired  *time.Time
}

type UpdateInput struct {
	FullName   *string
	Position   *string
	Department *string
	Phone      *string
	Role       *string
}

type EmployeeDTO struct {
	EmployeeID string     `json:"employee_id"`
	FullName   string     `json:"full_name"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	Phone      string     `json:"phone"`
	Role       string     `json:"role"`
	DateHired  *time.Time `json:"date_hired,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewEmployeeDTO(e *domain.Employee) *EmployeeDTO {
	return &EmployeeDTO{
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Position:   e.Position,
		Department: e.Department,
		Phone:      e.Phone,
		Role:       string(e.Role),
		DateHired:  e.DateHired,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
